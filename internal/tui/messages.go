package tui

import (
	"noticelens/internal/api"
	"noticelens/internal/document"
)

// Messages resolved by async commands. All workflow transitions happen in
// Update in response to these; commands never mutate the model.

type authDoneMsg struct {
	user api.User
	err  error
}

type analyzeDoneMsg struct {
	summary api.Summary
	doc     *document.Handle
	err     error
}

// notifyExpireMsg carries the sequence number of the notification whose
// timer fired. A stale seq (the notification was replaced) is ignored.
type notifyExpireMsg struct {
	seq int
}

type clipboardDoneMsg struct {
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

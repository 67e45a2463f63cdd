// Package tui implements the workflow state machine behind the client:
// which screen is showing, the authenticated session, the in-flight
// analysis, the history cache, the active modal, and the transient
// notification. All mutation funnels through Update; async work runs as
// tea.Cmd closures resolving to the messages in messages.go.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"noticelens/internal/api"
	"noticelens/internal/document"
	"noticelens/internal/history"
	"noticelens/internal/notify"
)

// Service is the remote notice service as the workflow sees it.
type Service interface {
	Register(ctx context.Context, req api.RegisterRequest) (api.User, error)
	Login(ctx context.Context, creds api.Credentials) (api.User, error)
	Analyze(ctx context.Context, filename string, doc io.Reader) (api.Summary, error)
}

type screenState string

const (
	screenLogin     screenState = "login"
	screenRegister  screenState = "register"
	screenHome      screenState = "home"
	screenAnalyzing screenState = "analyzing"
	screenResult    screenState = "result"
)

type modalState string

const (
	modalNone      modalState = ""
	modalSummary   modalState = "summary"
	modalWhy       modalState = "why"
	modalBreakdown modalState = "breakdown"
	modalFix       modalState = "fix"
	modalPayment   modalState = "payment"
	modalEmail     modalState = "email"
	modalIRS       modalState = "irs"
	modalProfile   modalState = "profile"
)

// Model is the workflow state machine. It exclusively owns the session,
// the current screen, the displayed summary, the history cache, and the
// notification channel.
type Model struct {
	ctx  context.Context
	svc  Service
	docs *document.Store

	screen screenState
	modal  modalState

	user    *api.User
	summary *api.Summary
	doc     *document.Handle
	docView *os.File // open view over the displayed document copy

	past    *history.Cache
	notices notify.Channel

	form   authForm
	picker *dialPicker

	pathInput  textinput.Model
	histCursor int
	spin       spinner.Model

	width  int
	height int
}

// New builds the model in its initial state: the login screen, no session.
func New(ctx context.Context, svc Service, docs *document.Store) *Model {
	pathInput := textinput.New()
	pathInput.Placeholder = "Path to a PDF notice"
	pathInput.Prompt = "> "
	pathInput.Width = 48

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return &Model{
		ctx:       ctx,
		svc:       svc,
		docs:      docs,
		screen:    screenLogin,
		past:      history.New(history.DefaultCapacity),
		form:      newAuthForm(false),
		pathInput: pathInput,
		spin:      sp,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case notifyExpireMsg:
		m.notices.Expire(msg.seq)
		return m, nil
	case authDoneMsg:
		return m.handleAuthDone(msg)
	case analyzeDoneMsg:
		return m.handleAnalyzeDone(msg)
	case clipboardDoneMsg:
		if msg.err != nil {
			return m, m.raise("Failed to copy!", notify.KindError)
		}
		return m, m.raise("Copied to clipboard!", notify.KindSuccess)
	case exportDoneMsg:
		if msg.err != nil {
			slog.Warn("export failed", "err", msg.err)
			return m, m.raise("Failed to export the summary.", notify.KindError)
		}
		return m, m.raise("Exported to "+msg.path, notify.KindSuccess)
	case spinner.TickMsg:
		if m.screen != screenAnalyzing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Key dispatch
// ---------------------------------------------------------------------------

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.modal != modalNone {
		return m.handleModalKey(msg)
	}
	switch m.screen {
	case screenLogin, screenRegister:
		return m.handleAuthKey(msg)
	case screenHome:
		return m.handleHomeKey(msg)
	case screenAnalyzing:
		// The workflow is suspended until the analysis resolves.
		return m, nil
	case screenResult:
		return m.handleResultKey(msg)
	}
	return m, nil
}

func (m *Model) handleAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker != nil {
		return m.handlePickerKey(msg)
	}
	switch msg.String() {
	case "ctrl+t":
		// Local toggle between the two unauthenticated screens; clears
		// form state and the inline error, no I/O.
		m.form = newAuthForm(!m.form.register)
		if m.form.register {
			m.screen = screenRegister
		} else {
			m.screen = screenLogin
		}
		return m, nil
	case "ctrl+v":
		m.form.togglePassword()
		return m, nil
	case "tab", "down":
		m.form.cycleFocus(1)
		return m, nil
	case "shift+tab", "up":
		m.form.cycleFocus(-1)
		return m, nil
	case "enter":
		if m.form.register && m.form.focusedField() == fieldDialCode {
			m.picker = newDialPicker()
			return m, textinput.Blink
		}
		return m, m.submitAuth()
	}
	return m, m.form.update(msg)
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		// Close without changing the selection.
		m.picker = nil
		return m, nil
	}
	chosen, cmd := m.picker.update(msg)
	if chosen != nil {
		m.form.dialCode = chosen.DialCode
		m.form.inputs[fieldDialCode].SetValue(chosen.DialCode)
		m.picker = nil
	}
	return m, cmd
}

func (m *Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+p":
		m.modal = modalProfile
		return m, nil
	case "ctrl+l":
		m.logout()
		return m, nil
	case "up":
		if m.histCursor > 0 {
			m.histCursor--
		}
		return m, nil
	case "down":
		if m.histCursor < m.past.Len()-1 {
			m.histCursor++
		}
		return m, nil
	case "ctrl+o":
		return m, m.openHistoryAt(m.histCursor)
	case "enter":
		return m.submitUpload()
	}
	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m *Model) handleResultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "n":
		// Analyze another: back to home, dropping the displayed result.
		m.clearCurrent()
		m.screen = screenHome
		return m, nil
	case "up":
		if m.histCursor > 0 {
			m.histCursor--
		}
		return m, nil
	case "down":
		if m.histCursor < m.past.Len()-1 {
			m.histCursor++
		}
		return m, nil
	case "enter":
		return m, m.openHistoryAt(m.histCursor)
	case "s":
		m.modal = modalSummary
	case "w":
		m.modal = modalWhy
	case "b":
		m.modal = modalBreakdown
	case "f":
		m.modal = modalFix
	case "p":
		m.modal = modalPayment
	case "e":
		m.modal = modalEmail
	case "i":
		m.modal = modalIRS
	case "x":
		return m, m.exportCmd()
	}
	return m, nil
}

func (m *Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.modal = modalNone
		return m, nil
	case "s", "w", "b", "f", "p", "e", "i":
		// Opening another detail modal replaces the current one; the
		// stack never holds two.
		if m.summary != nil && m.modal != modalProfile {
			m.modal = map[string]modalState{
				"s": modalSummary, "w": modalWhy, "b": modalBreakdown,
				"f": modalFix, "p": modalPayment, "e": modalEmail, "i": modalIRS,
			}[msg.String()]
			return m, nil
		}
	case "c":
		// Copy the draft shown by the email/response modals. Modals have
		// no other side effects.
		switch m.modal {
		case modalEmail:
			if m.summary != nil {
				return m, copyCmd(emailDraft(*m.summary))
			}
		case modalIRS:
			if m.summary != nil {
				return m, copyCmd(irsDraft(*m.summary))
			}
		}
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Transitions
// ---------------------------------------------------------------------------

func (m *Model) submitAuth() tea.Cmd {
	if m.form.submitting {
		return nil
	}
	m.form.errMsg = ""
	if errMsg := m.form.validate(); errMsg != "" {
		// Validation failures never reach the network.
		m.form.errMsg = errMsg
		return nil
	}
	m.form.submitting = true
	if m.form.register {
		req := api.RegisterRequest{
			FirstName:    m.form.value(fieldFirstName),
			LastName:     m.form.value(fieldLastName),
			Email:        m.form.value(fieldEmail),
			Password:     m.form.value(fieldPassword),
			DOB:          m.form.value(fieldDOB),
			MobileNumber: m.form.fullMobile(),
		}
		return m.registerCmd(req)
	}
	creds := api.Credentials{
		Email:    m.form.value(fieldEmail),
		Password: m.form.value(fieldPassword),
	}
	return m.loginCmd(creds)
}

func (m *Model) loginCmd(creds api.Credentials) tea.Cmd {
	return func() tea.Msg {
		u, err := m.svc.Login(m.ctx, creds)
		return authDoneMsg{user: u, err: err}
	}
}

func (m *Model) registerCmd(req api.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		u, err := m.svc.Register(m.ctx, req)
		if err == nil {
			// The register response may carry only the id; the rest of
			// the session comes from what the user just entered.
			if u.FirstName == "" {
				u.FirstName = req.FirstName
			}
			if u.LastName == "" {
				u.LastName = req.LastName
			}
			if u.Email == "" {
				u.Email = req.Email
			}
			if u.DOB == "" {
				u.DOB = req.DOB
			}
			if u.MobileNumber == "" {
				u.MobileNumber = req.MobileNumber
			}
		}
		return authDoneMsg{user: u, err: err}
	}
}

func (m *Model) handleAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	m.form.submitting = false
	if msg.err != nil {
		// Stay on the form; the server message renders inline.
		m.form.errMsg = failureMessage(msg.err, "Authentication failed. Please try again.")
		return m, nil
	}
	u := msg.user
	m.user = &u
	m.screen = screenHome
	m.pathInput.SetValue("")
	m.pathInput.Focus()
	m.histCursor = 0
	slog.Info("session started", "user", u.Email)
	return m, nil
}

func (m *Model) logout() {
	slog.Info("session ended")
	m.user = nil
	m.clearCurrent()
	m.past.Clear()
	m.histCursor = 0
	m.picker = nil
	m.form = newAuthForm(false)
	m.screen = screenLogin
}

func (m *Model) submitUpload() (tea.Model, tea.Cmd) {
	path := strings.TrimSpace(m.pathInput.Value())
	if path == "" {
		return m, nil
	}
	h, err := m.docs.Import(path)
	if err != nil {
		if errors.Is(err, document.ErrNotPDF) {
			// Non-PDF selections are ignored without feedback.
			slog.Debug("ignored non-pdf selection", "path", path)
			return m, nil
		}
		slog.Warn("import failed", "path", path, "err", err)
		return m, m.raise("Could not read that file.", notify.KindError)
	}
	m.pathInput.SetValue("")
	m.screen = screenAnalyzing
	return m, tea.Batch(m.spin.Tick, m.analyzeCmd(h))
}

func (m *Model) analyzeCmd(h *document.Handle) tea.Cmd {
	return func() tea.Msg {
		f, err := h.Open()
		if err != nil {
			h.Release()
			return analyzeDoneMsg{err: err}
		}
		defer f.Close()
		summary, err := m.svc.Analyze(m.ctx, h.Name, f)
		if err != nil {
			h.Release()
			return analyzeDoneMsg{err: err}
		}
		return analyzeDoneMsg{summary: summary, doc: h}
	}
}

func (m *Model) handleAnalyzeDone(msg analyzeDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Never fatal: back to home, one error notification, history
		// untouched. The user can retry immediately.
		m.screen = screenHome
		return m, m.raise(failureMessage(msg.err, "Failed to analyze the document."), notify.KindError)
	}
	entry := m.past.Prepend(msg.summary, msg.doc)
	m.showEntry(entry)
	m.histCursor = 0
	m.screen = screenResult
	return m, nil
}

// openHistoryAt replays a cached entry on the result screen. No remote
// call is issued.
func (m *Model) openHistoryAt(idx int) tea.Cmd {
	entries := m.past.Entries()
	if idx < 0 || idx >= len(entries) {
		return nil
	}
	m.showEntry(entries[idx])
	m.screen = screenResult
	return nil
}

// showEntry swaps the displayed summary and document, releasing the view
// over the previously displayed one.
func (m *Model) showEntry(e history.Entry) {
	m.closeDocView()
	s := e.Summary
	m.summary = &s
	m.doc = e.Doc
	if f, err := e.Doc.Open(); err == nil {
		m.docView = f
	} else {
		slog.Warn("open document view", "err", err)
	}
}

// clearCurrent drops the displayed result. The document copy itself stays
// alive inside its history entry; only the per-view resources go.
func (m *Model) clearCurrent() {
	m.closeDocView()
	m.summary = nil
	m.doc = nil
	m.modal = modalNone
}

func (m *Model) closeDocView() {
	if m.docView != nil {
		_ = m.docView.Close()
		m.docView = nil
	}
}

// raise replaces the active notification and schedules its expiry. The
// tick carries the sequence number, so a tick belonging to a replaced
// notification finds Expire refusing it.
func (m *Model) raise(message string, kind notify.Kind) tea.Cmd {
	_, seq := m.notices.Raise(message, kind)
	return tea.Tick(notify.TTL, func(time.Time) tea.Msg {
		return notifyExpireMsg{seq: seq}
	})
}

func (m *Model) exportCmd() tea.Cmd {
	if m.summary == nil {
		return nil
	}
	s := *m.summary
	return func() tea.Msg {
		name := fmt.Sprintf("Tax_Notice_%s_Summary.txt", exportName(s.NoticeType))
		if err := os.WriteFile(name, []byte(exportText(s)), 0o644); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: name}
	}
}

func copyCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardDoneMsg{err: clipboard.WriteAll(text)}
	}
}

// failureMessage extracts the service's human-readable message, falling
// back to a generic one for transport-level faults.
func failureMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

package tui

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"noticelens/internal/api"
	"noticelens/internal/document"
	"noticelens/internal/notify"
)

type stubService struct {
	user       api.User
	summary    api.Summary
	authErr    error
	analyzeErr error

	logins    int
	registers int
	analyzes  int
}

func (s *stubService) Register(ctx context.Context, req api.RegisterRequest) (api.User, error) {
	s.registers++
	return s.user, s.authErr
}

func (s *stubService) Login(ctx context.Context, creds api.Credentials) (api.User, error) {
	s.logins++
	return s.user, s.authErr
}

func (s *stubService) Analyze(ctx context.Context, filename string, doc io.Reader) (api.Summary, error) {
	s.analyzes++
	if s.analyzeErr != nil {
		return api.Summary{}, s.analyzeErr
	}
	return s.summary, nil
}

func newTestModel(t *testing.T, svc *stubService) *Model {
	t.Helper()
	docs, err := document.NewStore()
	require.NoError(t, err)
	t.Cleanup(func() { _ = docs.Close() })
	return New(context.Background(), svc, docs)
}

func keyRune(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

// collectMsgs runs a command tree to completion, flattening batches.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func writePDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notice.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\n%%EOF\n"), 0o644))
	return path
}

func testSummary() api.Summary {
	return api.Summary{
		NoticeType:    "CP2000",
		AmountDue:     "$1,234.00",
		PayBy:         "2026-10-01",
		NoticeMeaning: "The IRS proposes changes to your return.",
		TaxpayerInfo:  api.TaxpayerInfo{Name: "Jane Doe", NoticeNumber: "CP2000-123", TaxYear: "2024"},
	}
}

// loginTo drives the model through a successful login.
func loginTo(t *testing.T, m *Model, svc *stubService) {
	t.Helper()
	m.form.inputs[fieldEmail].SetValue("jane@example.com")
	m.form.inputs[fieldPassword].SetValue("hunter22")
	_, cmd := m.Update(keyEnter)
	require.NotNil(t, cmd)
	for _, msg := range collectMsgs(cmd) {
		m.Update(msg)
	}
	require.Equal(t, screenHome, m.screen)
}

// analyzeTo drives an authenticated model through one successful analysis.
func analyzeTo(t *testing.T, m *Model, path string) {
	t.Helper()
	m.pathInput.SetValue(path)
	_, cmd := m.Update(keyEnter)
	require.Equal(t, screenAnalyzing, m.screen)
	for _, msg := range collectMsgs(cmd) {
		if done, ok := msg.(analyzeDoneMsg); ok {
			m.Update(done)
		}
	}
	require.Equal(t, screenResult, m.screen)
}

func TestLoginValidationNeverReachesNetwork(t *testing.T) {
	t.Parallel()

	svc := &stubService{}
	m := newTestModel(t, svc)

	_, cmd := m.Update(keyEnter)
	require.Nil(t, cmd)
	require.Equal(t, "Please enter your email and password.", m.form.errMsg)
	require.Equal(t, screenLogin, m.screen)
	require.Zero(t, svc.logins)
}

func TestRegisterPasswordMismatchNeverReachesNetwork(t *testing.T) {
	t.Parallel()

	svc := &stubService{}
	m := newTestModel(t, svc)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	require.Equal(t, screenRegister, m.screen)

	m.form.inputs[fieldFirstName].SetValue("Jane")
	m.form.inputs[fieldLastName].SetValue("Doe")
	m.form.inputs[fieldDOB].SetValue("1990-01-01")
	m.form.inputs[fieldMobile].SetValue("5551234567")
	m.form.inputs[fieldEmail].SetValue("jane@example.com")
	m.form.inputs[fieldPassword].SetValue("hunter22")
	m.form.inputs[fieldConfirm].SetValue("hunter23")

	_, cmd := m.Update(keyEnter)
	require.Nil(t, cmd)
	require.Equal(t, "Passwords do not match.", m.form.errMsg)
	require.Zero(t, svc.registers)
}

func TestLoginSuccessEntersHome(t *testing.T) {
	t.Parallel()

	svc := &stubService{user: api.User{ID: "u1", FirstName: "Jane", Email: "jane@example.com"}}
	m := newTestModel(t, svc)
	loginTo(t, m, svc)

	require.Equal(t, 1, svc.logins)
	require.NotNil(t, m.user)
	require.Equal(t, "Jane", m.user.FirstName)
}

func TestLoginFailureStaysOnFormWithMessage(t *testing.T) {
	t.Parallel()

	svc := &stubService{authErr: &api.Error{Message: "Invalid email or password."}}
	m := newTestModel(t, svc)
	m.form.inputs[fieldEmail].SetValue("jane@example.com")
	m.form.inputs[fieldPassword].SetValue("wrong")

	_, cmd := m.Update(keyEnter)
	for _, msg := range collectMsgs(cmd) {
		m.Update(msg)
	}
	require.Equal(t, screenLogin, m.screen)
	require.Nil(t, m.user)
	require.Equal(t, "Invalid email or password.", m.form.errMsg)
	require.False(t, m.form.submitting)
}

func TestRegisterBackfillsSessionFromForm(t *testing.T) {
	t.Parallel()

	// Server returns only the id; the session profile must still show
	// what the user just typed.
	svc := &stubService{user: api.User{ID: "u2"}}
	m := newTestModel(t, svc)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})

	m.form.inputs[fieldFirstName].SetValue("Jane")
	m.form.inputs[fieldLastName].SetValue("Doe")
	m.form.inputs[fieldDOB].SetValue("1990-01-01")
	m.form.inputs[fieldMobile].SetValue("5551234567")
	m.form.inputs[fieldEmail].SetValue("jane@example.com")
	m.form.inputs[fieldPassword].SetValue("hunter22")
	m.form.inputs[fieldConfirm].SetValue("hunter22")

	_, cmd := m.Update(keyEnter)
	for _, msg := range collectMsgs(cmd) {
		m.Update(msg)
	}
	require.Equal(t, 1, svc.registers)
	require.Equal(t, screenHome, m.screen)
	require.Equal(t, "Jane", m.user.FirstName)
	require.Equal(t, "+15551234567", m.user.MobileNumber)
}

func TestNonPDFSelectionIsSilentlyIgnored(t *testing.T) {
	t.Parallel()

	svc := &stubService{}
	m := newTestModel(t, svc)
	loginTo(t, m, svc)

	path := filepath.Join(t.TempDir(), "notes.pdf")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))
	m.pathInput.SetValue(path)

	_, cmd := m.Update(keyEnter)
	require.Nil(t, cmd)
	require.Equal(t, screenHome, m.screen)
	require.Zero(t, svc.analyzes)
	_, ok := m.notices.Active()
	require.False(t, ok, "no feedback for ignored selections")
}

func TestAnalyzeSuccessShowsResultAndRecordsHistory(t *testing.T) {
	t.Parallel()

	svc := &stubService{summary: testSummary()}
	m := newTestModel(t, svc)
	loginTo(t, m, svc)
	analyzeTo(t, m, writePDF(t))

	require.Equal(t, 1, svc.analyzes)
	require.Equal(t, 1, m.past.Len())
	require.NotNil(t, m.summary)
	require.Equal(t, "CP2000", m.summary.NoticeType)
	require.NotNil(t, m.doc)
}

func TestAnalyzeFailureReturnsHomeWithNotification(t *testing.T) {
	t.Parallel()

	svc := &stubService{analyzeErr: &api.Error{Message: "The document is not a tax notice."}}
	m := newTestModel(t, svc)
	loginTo(t, m, svc)

	m.pathInput.SetValue(writePDF(t))
	_, cmd := m.Update(keyEnter)
	require.Equal(t, screenAnalyzing, m.screen)
	for _, msg := range collectMsgs(cmd) {
		if done, ok := msg.(analyzeDoneMsg); ok {
			m.Update(done)
		}
	}

	require.Equal(t, screenHome, m.screen)
	require.Zero(t, m.past.Len(), "failed analyses never enter history")
	n, ok := m.notices.Active()
	require.True(t, ok)
	require.Equal(t, notify.KindError, n.Kind)
	require.Equal(t, "The document is not a tax notice.", n.Message)
}

func TestAnalyzeTransportFailureUsesGenericMessage(t *testing.T) {
	t.Parallel()

	svc := &stubService{analyzeErr: io.ErrUnexpectedEOF}
	m := newTestModel(t, svc)
	loginTo(t, m, svc)

	m.pathInput.SetValue(writePDF(t))
	_, cmd := m.Update(keyEnter)
	for _, msg := range collectMsgs(cmd) {
		if done, ok := msg.(analyzeDoneMsg); ok {
			m.Update(done)
		}
	}
	n, ok := m.notices.Active()
	require.True(t, ok)
	require.Equal(t, "Failed to analyze the document.", n.Message)
}

func TestHistoryReplayMakesNoRemoteCall(t *testing.T) {
	t.Parallel()

	svc := &stubService{summary: testSummary()}
	m := newTestModel(t, svc)
	loginTo(t, m, svc)
	analyzeTo(t, m, writePDF(t))

	m.Update(keyRune("n"))
	require.Equal(t, screenHome, m.screen)
	require.Nil(t, m.summary)
	require.Equal(t, 1, m.past.Len(), "analyze another keeps history")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	require.Equal(t, screenResult, m.screen)
	require.NotNil(t, m.summary)
	require.Equal(t, "CP2000", m.summary.NoticeType)
	require.Equal(t, 1, svc.analyzes, "replay is local")
}

func TestModalOpensAndReplaces(t *testing.T) {
	t.Parallel()

	svc := &stubService{summary: testSummary()}
	m := newTestModel(t, svc)
	loginTo(t, m, svc)
	analyzeTo(t, m, writePDF(t))

	m.Update(keyRune("w"))
	require.Equal(t, modalWhy, m.modal)

	// Opening another detail modal replaces, it does not stack.
	m.Update(keyRune("b"))
	require.Equal(t, modalBreakdown, m.modal)

	m.Update(keyEsc)
	require.Equal(t, modalNone, m.modal)
	require.Equal(t, screenResult, m.screen, "closing a modal stays on the result")
}

func TestModalSwallowsScreenKeys(t *testing.T) {
	t.Parallel()

	svc := &stubService{summary: testSummary()}
	m := newTestModel(t, svc)
	loginTo(t, m, svc)
	analyzeTo(t, m, writePDF(t))

	m.Update(keyRune("s"))
	require.Equal(t, modalSummary, m.modal)

	// "n" means analyze-another on the result screen; with a modal open
	// it must do nothing.
	m.Update(keyRune("n"))
	require.Equal(t, screenResult, m.screen)
	require.Equal(t, modalSummary, m.modal)
}

func TestLogoutClearsSessionAndHistory(t *testing.T) {
	t.Parallel()

	svc := &stubService{summary: testSummary()}
	m := newTestModel(t, svc)
	loginTo(t, m, svc)
	analyzeTo(t, m, writePDF(t))
	docPath := m.doc.Path

	m.Update(keyRune("n"))
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})

	require.Equal(t, screenLogin, m.screen)
	require.Nil(t, m.user)
	require.Zero(t, m.past.Len())
	_, err := os.Stat(docPath)
	require.True(t, os.IsNotExist(err), "logout releases cached document copies")
}

func TestStaleNotificationTickIsIgnored(t *testing.T) {
	t.Parallel()

	svc := &stubService{}
	m := newTestModel(t, svc)
	m.raise("first", notify.KindError)
	m.raise("second", notify.KindSuccess)

	m.Update(notifyExpireMsg{seq: 1})
	n, ok := m.notices.Active()
	require.True(t, ok)
	require.Equal(t, "second", n.Message)

	m.Update(notifyExpireMsg{seq: 2})
	_, ok = m.notices.Active()
	require.False(t, ok)
}

func TestScreenToggleResetsForm(t *testing.T) {
	t.Parallel()

	svc := &stubService{}
	m := newTestModel(t, svc)
	m.form.inputs[fieldEmail].SetValue("jane@example.com")
	m.form.errMsg = "Invalid email or password."

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	require.Equal(t, screenRegister, m.screen)
	require.Empty(t, m.form.value(fieldEmail))
	require.Empty(t, m.form.errMsg)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	require.Equal(t, screenLogin, m.screen)
}

func TestDialPickerSelectionAndDismissal(t *testing.T) {
	t.Parallel()

	svc := &stubService{}
	m := newTestModel(t, svc)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})

	// Focus the dial-code field, then open the selector.
	for m.form.focusedField() != fieldDialCode {
		m.form.cycleFocus(1)
	}
	m.Update(keyEnter)
	require.NotNil(t, m.picker)

	// Esc closes without changing the selection.
	m.Update(keyEsc)
	require.Nil(t, m.picker)
	require.Equal(t, "+1", m.form.dialCode)

	m.Update(keyEnter)
	require.NotNil(t, m.picker)
	for _, r := range "united kingdom" {
		m.Update(keyRune(string(r)))
	}
	m.Update(keyEnter)
	require.Nil(t, m.picker)
	require.Equal(t, "+44", m.form.dialCode)
}

func TestSubmitWhileSubmittingIsIgnored(t *testing.T) {
	t.Parallel()

	svc := &stubService{}
	m := newTestModel(t, svc)
	m.form.inputs[fieldEmail].SetValue("jane@example.com")
	m.form.inputs[fieldPassword].SetValue("pw")
	m.form.submitting = true

	_, cmd := m.Update(keyEnter)
	require.Nil(t, cmd)
	require.Zero(t, svc.logins)
}

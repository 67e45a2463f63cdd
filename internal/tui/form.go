package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"noticelens/internal/countries"
)

// Auth-form field indices. Login uses only the email/password slice of the
// register layout.
const (
	fieldFirstName = iota
	fieldLastName
	fieldDOB
	fieldDialCode
	fieldMobile
	fieldEmail
	fieldPassword
	fieldConfirm
	fieldCount
)

var loginFields = []int{fieldEmail, fieldPassword}

var registerFields = []int{
	fieldFirstName, fieldLastName, fieldDOB, fieldDialCode,
	fieldMobile, fieldEmail, fieldPassword, fieldConfirm,
}

// authForm holds the login/register inputs. The same form backs both
// screens; switching screens resets it.
type authForm struct {
	inputs     [fieldCount]textinput.Model
	dialCode   string
	focus      int // index into activeFields()
	errMsg     string
	submitting bool
	showPass   bool
	register   bool
}

func newAuthForm(register bool) authForm {
	f := authForm{dialCode: "+1", register: register}

	mk := func(placeholder string, width int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = ""
		ti.Width = width
		return ti
	}

	f.inputs[fieldFirstName] = mk("First Name", 24)
	f.inputs[fieldLastName] = mk("Last Name", 24)
	f.inputs[fieldDOB] = mk("Date of Birth (YYYY-MM-DD)", 24)
	f.inputs[fieldDialCode] = mk("", 8)
	f.inputs[fieldMobile] = mk("Mobile Number", 24)
	f.inputs[fieldEmail] = mk("Email Address", 32)
	f.inputs[fieldPassword] = mk("Password", 32)
	f.inputs[fieldConfirm] = mk("Confirm Password", 32)

	f.inputs[fieldDialCode].SetValue(f.dialCode)
	f.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	f.inputs[fieldConfirm].EchoMode = textinput.EchoPassword

	f.inputs[f.activeFields()[0]].Focus()
	return f
}

func (f *authForm) activeFields() []int {
	if f.register {
		return registerFields
	}
	return loginFields
}

func (f *authForm) focusedField() int {
	return f.activeFields()[f.focus]
}

func (f *authForm) value(field int) string {
	return strings.TrimSpace(f.inputs[field].Value())
}

// cycleFocus moves focus by delta, wrapping around.
func (f *authForm) cycleFocus(delta int) {
	fields := f.activeFields()
	f.inputs[f.focusedField()].Blur()
	f.focus = (f.focus + delta + len(fields)) % len(fields)
	f.inputs[f.focusedField()].Focus()
}

// togglePassword flips password visibility on both password inputs.
func (f *authForm) togglePassword() {
	f.showPass = !f.showPass
	mode := textinput.EchoPassword
	if f.showPass {
		mode = textinput.EchoNormal
	}
	f.inputs[fieldPassword].EchoMode = mode
	f.inputs[fieldConfirm].EchoMode = mode
}

// update forwards a key to the focused input. The dial-code field is
// read-only; it is set through the selector.
func (f *authForm) update(msg tea.KeyMsg) tea.Cmd {
	field := f.focusedField()
	if field == fieldDialCode {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[field], cmd = f.inputs[field].Update(msg)
	return cmd
}

// validate runs the client-side checks that must pass before any network
// call. Returns an inline error message, or "".
func (f *authForm) validate() string {
	if !f.register {
		if f.value(fieldEmail) == "" || f.value(fieldPassword) == "" {
			return "Please enter your email and password."
		}
		return ""
	}
	for _, field := range []int{fieldFirstName, fieldLastName, fieldDOB, fieldMobile, fieldEmail, fieldPassword} {
		if f.value(field) == "" {
			return "Please fill in all fields."
		}
	}
	if f.value(fieldPassword) != f.value(fieldConfirm) {
		return "Passwords do not match."
	}
	return ""
}

// fullMobile joins the selected dial code with the entered number.
func (f *authForm) fullMobile() string {
	return f.dialCode + f.value(fieldMobile)
}

// ---------------------------------------------------------------------------
// Country-dial-code selector
// ---------------------------------------------------------------------------

// dialPicker is the dropdown over the dial-code field. nil on the model
// means closed. Esc (the TUI stand-in for clicking outside) closes it
// without changing the selection.
type dialPicker struct {
	search   textinput.Model
	filtered []countries.Country
	cursor   int
}

func newDialPicker() *dialPicker {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = ""
	ti.Width = 32
	ti.Focus()
	return &dialPicker{search: ti, filtered: countries.Filter("")}
}

// update handles one keystroke, re-filtering on any input change. Returns
// the chosen entry when the user confirms.
func (p *dialPicker) update(msg tea.KeyMsg) (chosen *countries.Country, cmd tea.Cmd) {
	switch msg.String() {
	case "up":
		if p.cursor > 0 {
			p.cursor--
		}
		return nil, nil
	case "down":
		if p.cursor < len(p.filtered)-1 {
			p.cursor++
		}
		return nil, nil
	case "enter":
		if p.cursor < len(p.filtered) {
			c := p.filtered[p.cursor]
			return &c, nil
		}
		return nil, nil
	}

	before := p.search.Value()
	p.search, cmd = p.search.Update(msg)
	if p.search.Value() != before {
		p.filtered = countries.Filter(p.search.Value())
		p.cursor = 0
	}
	return nil, cmd
}

// ---------------------------------------------------------------------------
// Password strength
// ---------------------------------------------------------------------------

var strengthLabels = [5]string{"Too short", "Weak", "Fair", "Good", "Strong"}

// passwordStrength scores a password 0-4: length, uppercase, digit,
// symbol.
func passwordStrength(password string) int {
	if password == "" {
		return 0
	}
	score := 0
	if len(password) >= 8 {
		score++
	}
	if strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		score++
	}
	if strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		score++
	}
	if strings.ContainsFunc(password, func(r rune) bool {
		return !(r >= 'a' && r <= 'z') && !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9')
	}) {
		score++
	}
	return score
}

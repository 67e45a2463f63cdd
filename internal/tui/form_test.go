package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestPasswordStrength(t *testing.T) {
	t.Parallel()

	cases := []struct {
		password string
		want     int
	}{
		{"", 0},
		{"abc", 0},
		{"abcdefgh", 1},
		{"Abcdefgh", 2},
		{"Abcdefg1", 3},
		{"Abcdef1!", 4},
		{"A1!", 3}, // short but varied
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, passwordStrength(tc.password), "password %q", tc.password)
	}
}

func TestLoginValidation(t *testing.T) {
	t.Parallel()

	f := newAuthForm(false)
	require.Equal(t, "Please enter your email and password.", f.validate())

	f.inputs[fieldEmail].SetValue("jane@example.com")
	require.Equal(t, "Please enter your email and password.", f.validate())

	f.inputs[fieldPassword].SetValue("pw")
	require.Empty(t, f.validate())
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	f := newAuthForm(true)
	require.Equal(t, "Please fill in all fields.", f.validate())

	f.inputs[fieldFirstName].SetValue("Jane")
	f.inputs[fieldLastName].SetValue("Doe")
	f.inputs[fieldDOB].SetValue("1990-01-01")
	f.inputs[fieldMobile].SetValue("5551234567")
	f.inputs[fieldEmail].SetValue("jane@example.com")
	f.inputs[fieldPassword].SetValue("hunter22")
	f.inputs[fieldConfirm].SetValue("nope")
	require.Equal(t, "Passwords do not match.", f.validate())

	f.inputs[fieldConfirm].SetValue("hunter22")
	require.Empty(t, f.validate())
}

func TestFullMobilePrependsDialCode(t *testing.T) {
	t.Parallel()

	f := newAuthForm(true)
	f.dialCode = "+44"
	f.inputs[fieldMobile].SetValue("7700900000")
	require.Equal(t, "+447700900000", f.fullMobile())
}

func TestCycleFocusWraps(t *testing.T) {
	t.Parallel()

	f := newAuthForm(false)
	require.Equal(t, fieldEmail, f.focusedField())
	f.cycleFocus(1)
	require.Equal(t, fieldPassword, f.focusedField())
	f.cycleFocus(1)
	require.Equal(t, fieldEmail, f.focusedField())
	f.cycleFocus(-1)
	require.Equal(t, fieldPassword, f.focusedField())
}

func TestTogglePasswordVisibility(t *testing.T) {
	t.Parallel()

	f := newAuthForm(true)
	f.inputs[fieldPassword].SetValue("secret")
	require.NotContains(t, f.inputs[fieldPassword].View(), "secret")

	f.togglePassword()
	require.Contains(t, f.inputs[fieldPassword].View(), "secret")

	f.togglePassword()
	require.NotContains(t, f.inputs[fieldPassword].View(), "secret")
}

func TestDialPickerFiltersAndResetsCursor(t *testing.T) {
	t.Parallel()

	p := newDialPicker()
	require.NotEmpty(t, p.filtered)

	p.cursor = 5
	for _, r := range "germany" {
		chosen, _ := p.update(keyRune(string(r)))
		require.Nil(t, chosen)
	}
	require.Zero(t, p.cursor, "typing resets the cursor")
	require.Len(t, p.filtered, 1)

	chosen, _ := p.update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, chosen)
	require.Equal(t, "+49", chosen.DialCode)
}

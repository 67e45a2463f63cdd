package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"noticelens/internal/notify"
)

// ---------------------------------------------------------------------------
// Styles
// ---------------------------------------------------------------------------

var (
	titleStyle    = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	labelStyle    = lipgloss.NewStyle().Foreground(colorSubtext0)
	focusStyle    = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	valueStyle    = lipgloss.NewStyle().Foreground(colorText)
	dimStyle      = lipgloss.NewStyle().Foreground(colorOverlay1)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	successStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	warnStyle     = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	spinnerStyle  = lipgloss.NewStyle().Foreground(colorAccent)

	amountStyle  = lipgloss.NewStyle().Foreground(colorPeach).Bold(true)
	pastDueStyle = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	bannerStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface0).
			Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBrand).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorMantle).
			Padding(0, 1)
)

func (m *Model) View() string {
	var body, footer string
	switch m.screen {
	case screenLogin, screenRegister:
		body = m.renderAuth()
		footer = "enter submit · tab next · ctrl+v show password · ctrl+t switch · ctrl+c quit"
		if m.picker != nil {
			footer = "enter select · esc close · type to search"
		}
	case screenHome:
		body = m.renderHome()
		footer = "enter analyze · ctrl+o open entry · ctrl+p profile · ctrl+l log out · ctrl+c quit"
	case screenAnalyzing:
		body = m.renderAnalyzing()
		footer = "please wait"
	case screenResult:
		body = m.renderResult()
		footer = "s/w/b/f/p/e/i details · x export · n analyze another · enter history · q quit"
	}
	if m.modal != modalNone {
		footer = "esc close"
		if m.modal == modalEmail || m.modal == modalIRS {
			footer = "c copy · esc close"
		}
	}

	status := " "
	if n, ok := m.notices.Active(); ok {
		switch n.Kind {
		case notify.KindError:
			status = errorStyle.Render(n.Message)
		default:
			status = successStyle.Render(n.Message)
		}
	}

	base := m.place(body, status, footerStyle.Render(footer))
	if overlay := m.overlayView(); overlay != "" {
		return m.composeOverlay(base, overlay)
	}
	return base
}

// place pins the status line and footer to the bottom when the terminal
// size is known.
func (m *Model) place(body, status, footer string) string {
	if m.height == 0 {
		return body + "\n\n" + status + "\n" + footer
	}
	contentHeight := m.height - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	if lipgloss.Height(body) >= contentHeight {
		return body + "\n" + status + "\n" + footer
	}
	main := lipgloss.Place(m.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	lines := splitLines(main)
	for i, line := range lines {
		lines[i] = padRight(line, m.width)
	}
	return strings.Join(lines, "\n") + "\n" + status + "\n" + footer
}

func (m *Model) overlayView() string {
	if m.picker != nil {
		return m.renderPicker()
	}
	if m.modal != modalNone {
		return m.renderModal()
	}
	return ""
}

func (m *Model) composeOverlay(base, overlay string) string {
	modal := modalStyle.Render(overlay)
	if m.height == 0 || m.width == 0 {
		return base + "\n\n" + modal
	}
	lines := splitLines(modal)
	modalWidth := maxLineWidth(lines)
	targetHeight := m.height - 2
	if targetHeight < 1 {
		targetHeight = 1
	}
	x := (m.width - modalWidth) / 2
	if x < 0 {
		x = 0
	}
	y := (targetHeight - len(lines)) / 2
	if y < 0 {
		y = 0
	}
	return overlayAt(base, modal, x, y, m.width, targetHeight)
}

// ---------------------------------------------------------------------------
// Auth screens
// ---------------------------------------------------------------------------

var authLabels = [fieldCount]string{
	fieldFirstName: "First Name",
	fieldLastName:  "Last Name",
	fieldDOB:       "Date of Birth",
	fieldDialCode:  "Country Code",
	fieldMobile:    "Mobile Number",
	fieldEmail:     "Email",
	fieldPassword:  "Password",
	fieldConfirm:   "Confirm Password",
}

func (m *Model) renderAuth() string {
	var b strings.Builder
	if m.form.register {
		b.WriteString(titleStyle.Render("Create Account") + "\n")
		b.WriteString(subtitleStyle.Render("Register to start analyzing IRS notices") + "\n\n")
	} else {
		b.WriteString(titleStyle.Render("Welcome Back") + "\n")
		b.WriteString(subtitleStyle.Render("Sign in to your account") + "\n\n")
	}

	focused := m.form.focusedField()
	for _, field := range m.form.activeFields() {
		label := authLabels[field]
		if field == focused {
			b.WriteString(focusStyle.Render("▸ "+label) + "\n")
		} else {
			b.WriteString(labelStyle.Render("  "+label) + "\n")
		}
		b.WriteString("  " + m.form.inputs[field].View() + "\n")
		if field == fieldDialCode && field == focused {
			b.WriteString(dimStyle.Render("  enter to choose a country") + "\n")
		}
		if field == fieldPassword && m.form.register {
			b.WriteString("  " + renderStrength(m.form.value(fieldPassword)) + "\n")
		}
	}

	if m.form.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.form.errMsg) + "\n")
	}
	if m.form.submitting {
		b.WriteString("\n" + dimStyle.Render("Submitting...") + "\n")
	}
	if m.form.register {
		b.WriteString("\n" + dimStyle.Render("Already registered? ctrl+t to sign in"))
	} else {
		b.WriteString("\n" + dimStyle.Render("New here? ctrl+t to create an account"))
	}
	return b.String()
}

// renderStrength draws the password strength meter.
func renderStrength(password string) string {
	score := passwordStrength(password)
	if password == "" {
		return ""
	}
	style := errorStyle
	switch {
	case score >= 4:
		style = successStyle
	case score >= 2:
		style = warnStyle
	}
	bar := strings.Repeat("█", score) + strings.Repeat("░", 4-score)
	return style.Render(bar+" "+strengthLabels[score])
}

func (m *Model) renderPicker() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Select Country") + "\n")
	b.WriteString(m.picker.search.View() + "\n\n")
	const visible = 8
	top := 0
	if m.picker.cursor >= visible {
		top = m.picker.cursor - visible + 1
	}
	for i := top; i < len(m.picker.filtered) && i < top+visible; i++ {
		c := m.picker.filtered[i]
		line := fmt.Sprintf("%-28s %s", c.Name, c.DialCode)
		if i == m.picker.cursor {
			b.WriteString(focusStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	if len(m.picker.filtered) == 0 {
		b.WriteString(dimStyle.Render("  No matches"))
	}
	return strings.TrimRight(b.String(), "\n")
}

// ---------------------------------------------------------------------------
// Home
// ---------------------------------------------------------------------------

func (m *Model) renderHome() string {
	var b strings.Builder
	name := ""
	if m.user != nil {
		name = m.user.FirstName
	}
	b.WriteString(titleStyle.Render("Welcome, "+name) + "\n")
	b.WriteString(subtitleStyle.Render("Upload an IRS notice to get a plain-English summary") + "\n\n")

	upload := labelStyle.Render("Notice PDF") + "\n" + m.pathInput.View()
	b.WriteString(panelStyle.Render(upload) + "\n\n")

	b.WriteString(titleStyle.Render("Recent Notices") + "\n")
	b.WriteString(m.renderHistory())
	return b.String()
}

func (m *Model) renderHistory() string {
	entries := m.past.Entries()
	if len(entries) == 0 {
		return dimStyle.Render("  Nothing analyzed yet")
	}
	var b strings.Builder
	for i, e := range entries {
		line := fmt.Sprintf("%-10s %-14s %s",
			orNA(e.Summary.NoticeType),
			orNA(e.Summary.TaxpayerInfo.NoticeNumber),
			orNA(e.Summary.AmountDue))
		if i == m.histCursor {
			b.WriteString(focusStyle.Render("▸ "+line) + "\n")
		} else {
			b.WriteString("  " + valueStyle.Render(line) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// ---------------------------------------------------------------------------
// Analyzing
// ---------------------------------------------------------------------------

func (m *Model) renderAnalyzing() string {
	var b strings.Builder
	b.WriteString("\n " + m.spin.View() + titleStyle.Render("AI is analyzing your notice...") + "\n\n")
	b.WriteString(subtitleStyle.Render(" Extracting the notice type, amounts, and deadlines."))
	return b.String()
}

// ---------------------------------------------------------------------------
// Result
// ---------------------------------------------------------------------------

func (m *Model) renderResult() string {
	if m.summary == nil {
		return dimStyle.Render("No result to show.")
	}
	s := *m.summary
	var b strings.Builder

	b.WriteString(titleStyle.Render("Summary of Your IRS Notice") + "\n")
	b.WriteString(subtitleStyle.Render("Notice "+orNA(s.NoticeType)) + "\n\n")

	if needsImmediateAction(s) {
		b.WriteString(bannerStyle.Render("⚠ This notice requires immediate action") + "\n\n")
	}

	info := titleStyle.Render("Taxpayer Information") + "\n" +
		kv("Name", orNA(s.TaxpayerInfo.Name)) +
		kv("SSN", orNA(s.TaxpayerInfo.SSN)) +
		kv("Address", orNA(s.TaxpayerInfo.Address)) +
		kv("Notice #", orNA(s.TaxpayerInfo.NoticeNumber)) +
		kv("Tax Year", orNA(s.TaxpayerInfo.TaxYear))
	b.WriteString(panelStyle.Render(strings.TrimRight(info, "\n")) + "\n\n")

	payBy := orNA(s.PayBy)
	payByStyled := valueStyle.Render(payBy)
	if isPastDue(s.PayBy, time.Now()) {
		payByStyled = pastDueStyle.Render(payBy + "  PAST DUE")
	}
	due := labelStyle.Render("Amount Due  ") + amountStyle.Render(orNA(s.AmountDue)) + "\n" +
		labelStyle.Render("Pay By      ") + payByStyled
	b.WriteString(panelStyle.Render(due) + "\n\n")

	b.WriteString(titleStyle.Render("What This Notice Means") + "\n")
	b.WriteString(valueStyle.Render(orNA(s.NoticeMeaning)) + "\n")

	if m.doc != nil {
		b.WriteString("\n" + dimStyle.Render("Document: "+m.doc.Name) + "\n")
	}
	b.WriteString("\n" + titleStyle.Render("History") + "\n")
	b.WriteString(m.renderHistory())
	return b.String()
}

func kv(label, value string) string {
	return labelStyle.Render(fmt.Sprintf("%-10s", label)) + valueStyle.Render(value) + "\n"
}

// ---------------------------------------------------------------------------
// Modals
// ---------------------------------------------------------------------------

func (m *Model) renderModal() string {
	if m.modal == modalProfile {
		return m.renderProfile()
	}
	if m.summary == nil {
		return dimStyle.Render(notAvailable)
	}
	s := *m.summary
	switch m.modal {
	case modalSummary:
		return titleStyle.Render("Notice Summary") + "\n\n" +
			kv("Type", orNA(s.NoticeType)) +
			kv("Amount", orNA(s.AmountDue)) +
			kv("Pay By", orNA(s.PayBy)) + "\n" +
			valueStyle.Render(orNA(s.NoticeMeaning))
	case modalWhy:
		return titleStyle.Render("Why You Received This Notice") + "\n\n" +
			valueStyle.Render(orNA(s.WhyText))
	case modalBreakdown:
		var b strings.Builder
		b.WriteString(titleStyle.Render("Amount Breakdown") + "\n\n")
		if len(s.Breakdown) == 0 {
			b.WriteString(dimStyle.Render(notAvailable))
			return b.String()
		}
		for _, item := range s.Breakdown {
			b.WriteString(fmt.Sprintf("%-32s %s\n", valueStyle.Render(item.Item), amountStyle.Render(item.Amount)))
		}
		return strings.TrimRight(b.String(), "\n")
	case modalFix:
		return titleStyle.Render("How To Fix This") + "\n\n" +
			labelStyle.Render("If you agree") + "\n" + valueStyle.Render(orNA(s.FixSteps.Agree)) + "\n\n" +
			labelStyle.Render("If you disagree") + "\n" + valueStyle.Render(orNA(s.FixSteps.Disagree))
	case modalPayment:
		return titleStyle.Render("Payment Options") + "\n\n" +
			kv("Online", orNotSpecified(s.PaymentOptions.Online)) +
			kv("By Mail", orNotSpecified(s.PaymentOptions.Mail)) +
			strings.TrimRight(kv("Plan", orNotSpecified(s.PaymentOptions.Plan)), "\n")
	case modalEmail:
		return titleStyle.Render("Email Draft for the Taxpayer") + "\n\n" +
			valueStyle.Render(emailDraft(s))
	case modalIRS:
		return titleStyle.Render("Response Letter to the IRS") + "\n\n" +
			valueStyle.Render(irsDraft(s))
	}
	return ""
}

func (m *Model) renderProfile() string {
	if m.user == nil {
		return dimStyle.Render(notAvailable)
	}
	u := m.user
	return titleStyle.Render("Profile") + "\n\n" +
		kv("Name", strings.TrimSpace(u.FirstName+" "+u.LastName)) +
		kv("Email", orNA(u.Email)) +
		kv("DOB", orNA(u.DOB)) +
		strings.TrimRight(kv("Mobile", orNA(u.MobileNumber)), "\n")
}

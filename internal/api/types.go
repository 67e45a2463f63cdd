package api

import "strings"

// User is the authenticated profile returned by register/login. The app
// holds exactly one of these as the session; nil means unauthenticated.
type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	DOB          string `json:"dob,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the register request body. MobileNumber carries the
// country dial code already prepended.
type RegisterRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	DOB          string `json:"dob"`
	MobileNumber string `json:"mobileNumber"`
}

// TaxpayerInfo identifies the notice subject.
type TaxpayerInfo struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	SSN          string `json:"ssn"`
	NoticeNumber string `json:"noticeNumber"`
	TaxYear      string `json:"taxYear"`
}

// BreakdownItem is one line of the amount breakdown.
type BreakdownItem struct {
	Item   string `json:"item"`
	Amount string `json:"amount"`
}

// FixSteps holds remediation guidance for each stance.
type FixSteps struct {
	Agree    string `json:"agree"`
	Disagree string `json:"disagree"`
}

// PaymentOptions lists the payment channels a notice offers.
type PaymentOptions struct {
	Online string `json:"online"`
	Mail   string `json:"mail"`
	Plan   string `json:"plan"`
}

// Summary is the structured result of analyzing a notice. Monetary values
// arrive pre-formatted as currency strings. Any field may be empty; the UI
// renders placeholders, never blanks.
type Summary struct {
	NoticeType     string          `json:"noticeType"`
	AmountDue      string          `json:"amountDue"`
	PayBy          string          `json:"payBy"`
	NoticeMeaning  string          `json:"noticeMeaning"`
	WhyText        string          `json:"whyText"`
	TaxpayerInfo   TaxpayerInfo    `json:"taxpayerInfo"`
	Breakdown      []BreakdownItem `json:"breakdown"`
	FixSteps       FixSteps        `json:"fixSteps"`
	PaymentOptions PaymentOptions  `json:"paymentOptions"`
}

// Complete reports whether the summary carries the identity fields the
// result screen cannot do without. Anything less is treated as a failed
// analysis rather than rendered half-empty.
func (s Summary) Complete() bool {
	return strings.TrimSpace(s.TaxpayerInfo.Name) != "" &&
		strings.TrimSpace(s.TaxpayerInfo.NoticeNumber) != ""
}

// envelope is the uniform response shape of all three endpoints.
type envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    *User    `json:"user"`
	Summary *Summary `json:"summary"`
}

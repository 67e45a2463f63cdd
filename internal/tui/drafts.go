package tui

import (
	"fmt"
	"strings"
	"time"

	"noticelens/internal/api"
)

// Placeholder copy. Absent fields always render as explicit text, never as
// a blank.
const (
	notAvailable = "Not available"
	notSpecified = "Not specified"
)

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return s
}

// payBy date layouts seen from the service.
var payByLayouts = []string{"2006-01-02", "January 2, 2006", "01/02/2006"}

// isPastDue reports whether the notice's pay-by date is before today. An
// unparsable or absent date is not past due.
func isPastDue(payBy string, now time.Time) bool {
	payBy = strings.TrimSpace(payBy)
	if payBy == "" {
		return false
	}
	for _, layout := range payByLayouts {
		if due, err := time.Parse(layout, payBy); err == nil {
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
			return due.Before(today)
		}
	}
	return false
}

// needsImmediateAction mirrors the banner trigger: the notice meaning
// mentions immediate action.
func needsImmediateAction(s api.Summary) bool {
	return strings.Contains(strings.ToLower(s.NoticeMeaning), "immediate")
}

// exportName sanitizes the notice type for use in the export filename.
func exportName(noticeType string) string {
	t := strings.TrimSpace(noticeType)
	if t == "" {
		return "Notice"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, t)
}

// exportText renders the full summary as plain text.
func exportText(s api.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TAX NOTICE SUMMARY\n")
	fmt.Fprintf(&b, "==================\n\n")
	fmt.Fprintf(&b, "Notice Type: %s\n\n", orNA(s.NoticeType))
	fmt.Fprintf(&b, "Taxpayer Information\n")
	fmt.Fprintf(&b, "  Name:     %s\n", orNA(s.TaxpayerInfo.Name))
	fmt.Fprintf(&b, "  SSN:      %s\n", orNA(s.TaxpayerInfo.SSN))
	fmt.Fprintf(&b, "  Address:  %s\n", orNA(s.TaxpayerInfo.Address))
	fmt.Fprintf(&b, "  Notice #: %s\n", orNA(s.TaxpayerInfo.NoticeNumber))
	fmt.Fprintf(&b, "  Tax Year: %s\n\n", orNA(s.TaxpayerInfo.TaxYear))
	fmt.Fprintf(&b, "Amount Due: %s\n", orNA(s.AmountDue))
	fmt.Fprintf(&b, "Pay By:     %s\n\n", orNA(s.PayBy))
	fmt.Fprintf(&b, "What This Notice Means\n  %s\n\n", orNA(s.NoticeMeaning))
	fmt.Fprintf(&b, "Why You Received It\n  %s\n\n", orNA(s.WhyText))
	fmt.Fprintf(&b, "Amount Breakdown\n")
	if len(s.Breakdown) == 0 {
		fmt.Fprintf(&b, "  %s\n", notAvailable)
	} else {
		for _, item := range s.Breakdown {
			fmt.Fprintf(&b, "  %-36s %s\n", item.Item, item.Amount)
		}
	}
	fmt.Fprintf(&b, "\nHow To Fix This\n")
	fmt.Fprintf(&b, "  If you agree:    %s\n", orNA(s.FixSteps.Agree))
	fmt.Fprintf(&b, "  If you disagree: %s\n\n", orNA(s.FixSteps.Disagree))
	fmt.Fprintf(&b, "Payment Options\n")
	fmt.Fprintf(&b, "  Online:       %s\n", orNotSpecified(s.PaymentOptions.Online))
	fmt.Fprintf(&b, "  By Mail:      %s\n", orNotSpecified(s.PaymentOptions.Mail))
	fmt.Fprintf(&b, "  Payment Plan: %s\n", orNotSpecified(s.PaymentOptions.Plan))
	return b.String()
}

// emailDraft is the message a preparer would forward to the taxpayer.
func emailDraft(s api.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: Important: IRS Notice %s - Action Required\n\n", orNA(s.NoticeType))
	fmt.Fprintf(&b, "Hello %s,\n\n", orNA(s.TaxpayerInfo.Name))
	fmt.Fprintf(&b, "You have received IRS notice %s (notice number %s).\n\n",
		orNA(s.NoticeType), orNA(s.TaxpayerInfo.NoticeNumber))
	fmt.Fprintf(&b, "What it means: %s\n\n", orNA(s.NoticeMeaning))
	fmt.Fprintf(&b, "Amount due: %s\nPay by: %s\n\n", orNA(s.AmountDue), orNA(s.PayBy))
	fmt.Fprintf(&b, "If you agree: %s\n", orNA(s.FixSteps.Agree))
	fmt.Fprintf(&b, "If you disagree: %s\n\n", orNA(s.FixSteps.Disagree))
	fmt.Fprintf(&b, "Please reach out if you would like help responding.\n")
	return b.String()
}

// irsDraft is a response letter skeleton addressed to the IRS.
func irsDraft(s api.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[Your Name/Company Name]\n[Your Address]\n\n")
	fmt.Fprintf(&b, "Internal Revenue Service\n\n")
	fmt.Fprintf(&b, "Re: Notice %s, Notice Number %s, Tax Year %s\n\n",
		orNA(s.NoticeType), orNA(s.TaxpayerInfo.NoticeNumber), orNA(s.TaxpayerInfo.TaxYear))
	fmt.Fprintf(&b, "To Whom It May Concern:\n\n")
	fmt.Fprintf(&b, "I am writing in response to the above-referenced notice regarding %s.\n\n",
		orNA(s.TaxpayerInfo.Name))
	fmt.Fprintf(&b, "[State whether you agree or disagree with the proposed changes and\n")
	fmt.Fprintf(&b, "attach any supporting documentation.]\n\n")
	fmt.Fprintf(&b, "Sincerely,\n\n[Signature]\n")
	return b.String()
}

package notifications

import (
	"strconv"
	"strings"
	"text/template"

	"badminton-club/internal/pkg/errs"
)

const (
	SubjectBookingConfirmation = "Booking Confirmation - Badminton Club"
	SubjectWelcome             = "Welcome to the Badminton Club"
)

var bookingConfirmationTmpl = template.Must(template.New("booking").Parse(`Dear {{.FirstName}} {{.LastName}},

Your booking has been confirmed!

Court: {{.CourtName}}
Date: {{.Date}}
Time: {{.StartTime}} - {{.EndTime}}
Amount: ${{.Amount}}

Thank you for choosing our badminton club!
`))

var welcomeTmpl = template.Must(template.New("welcome").Parse(`Dear {{.FirstName}} {{.LastName}},

Welcome to the club! Your {{.MembershipType}} membership is active for one year.

See you on court!
`))

type bookingConfirmation struct {
	FirstName string
	LastName  string
	CourtName string
	Date      string
	StartTime string
	EndTime   string
	Amount    string
}

type welcome struct {
	FirstName      string
	LastName       string
	MembershipType string
}

func renderBookingConfirmation(data bookingConfirmation) (string, error) {
	var sb strings.Builder
	if err := bookingConfirmationTmpl.Execute(&sb, data); err != nil {
		return "", errs.Wrap(err, "rendering booking confirmation")
	}
	return sb.String(), nil
}

func renderWelcome(data welcome) (string, error) {
	var sb strings.Builder
	if err := welcomeTmpl.Execute(&sb, data); err != nil {
		return "", errs.Wrap(err, "rendering welcome")
	}
	return sb.String(), nil
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

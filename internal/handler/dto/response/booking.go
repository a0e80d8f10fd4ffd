package response

import (
	"time"

	"badminton-club/internal/usecase/queries"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	CourtID       string    `json:"courtId"`
	UserID        string    `json:"userId"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	TotalAmount   float64   `json:"totalAmount"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

func FromBookingView(v *queries.BookingView) BookingResponse {
	var out BookingResponse
	copyView(&out, v)
	return out
}

func FromBookingViews(vs []*queries.BookingView) []BookingResponse {
	out := make([]BookingResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromBookingView(v))
	}
	return out
}

func FromAvailabilityView(v *queries.AvailabilityView) AvailabilityResponse {
	return AvailabilityResponse{Available: v.Available}
}

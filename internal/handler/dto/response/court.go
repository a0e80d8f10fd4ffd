package response

import (
	"time"

	"badminton-club/internal/usecase/queries"
)

type CourtResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	HourlyRate  float64   `json:"hourlyRate"`
	IsActive    bool      `json:"isActive"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromCourtView(v *queries.CourtView) CourtResponse {
	var out CourtResponse
	copyView(&out, v)
	return out
}

func FromCourtViews(vs []*queries.CourtView) []CourtResponse {
	out := make([]CourtResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromCourtView(v))
	}
	return out
}

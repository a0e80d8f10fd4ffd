package request

import (
	"time"

	"badminton-club/internal/domain/court"
	"badminton-club/internal/domain/money"

	"github.com/google/uuid"
)

type CreateCourtRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=indoor outdoor"`
	HourlyRate  float64 `json:"hourlyRate" binding:"required,gt=0,lte=1000000"`
	Description *string `json:"description,omitempty"`
}

func (r *CreateCourtRequest) ToDomain(id uuid.UUID, now time.Time) (*court.Court, error) {
	category, err := court.NewCategory(r.Type)
	if err != nil {
		return nil, err
	}
	rate, err := money.FromDecimal(r.HourlyRate)
	if err != nil {
		return nil, err
	}
	return court.NewCourt(id, r.Name, category, rate, r.Description, now)
}

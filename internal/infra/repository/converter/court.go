package converter

import (
	"fmt"

	"badminton-club/internal/domain/court"
	"badminton-club/internal/domain/money"
	"badminton-club/internal/infra/kvstore"
	"badminton-club/internal/infra/repository/record"

	"github.com/google/uuid"
)

func CourtToRecord(c *court.Court) record.Court {
	key := record.CourtKey(c.ID())
	return record.Court{
		Keys:            kvstore.Keys{PK: key, SK: key},
		EntityType:      record.EntityCourt,
		ID:              c.ID().String(),
		Name:            c.Name(),
		Type:            c.Category().String(),
		HourlyRateCents: c.HourlyRate().Cents(),
		IsActive:        c.IsActive(),
		Description:     c.Description(),
		CreatedAt:       c.CreatedAt(),
		UpdatedAt:       c.UpdatedAt(),
	}
}

func CourtToDomain(r record.Court) (*court.Court, error) {
	id, err := uuid.Parse(r.ID)
	if err != nil {
		return nil, fmt.Errorf("court id %q: %w", r.ID, err)
	}
	category, err := court.NewCategory(r.Type)
	if err != nil {
		return nil, fmt.Errorf("court %s: %w", r.ID, err)
	}
	rate, err := money.FromCents(r.HourlyRateCents)
	if err != nil {
		return nil, fmt.Errorf("court %s: %w", r.ID, err)
	}
	return court.ReconstructCourt(id, r.Name, category, rate, r.IsActive, r.Description, r.CreatedAt, r.UpdatedAt), nil
}

//go:build unit || e2e

package builder

import (
	"badminton-club/internal/domain/court"
	"badminton-club/internal/domain/money"
	reqdto "badminton-club/internal/handler/dto/request"
	"badminton-club/internal/usecase/queries"

	"github.com/google/uuid"
)

type CourtBuilder struct {
	ID          uuid.UUID
	Name        string
	Type        string
	HourlyRate  float64
	IsActive    bool
	Description *string
}

func NewCourtBuilder() *CourtBuilder {
	return &CourtBuilder{
		ID:         uuid.New(),
		Name:       "Court 1",
		Type:       "indoor",
		HourlyRate: 50,
		IsActive:   true,
	}
}

func (c *CourtBuilder) With(mutate func(*CourtBuilder)) *CourtBuilder {
	mutate(c)
	return c
}

func (c *CourtBuilder) BuildDomain() *court.Court {
	rate, err := money.FromDecimal(c.HourlyRate)
	if err != nil {
		panic(err)
	}
	desc := court.DefaultDescription
	if c.Description != nil {
		desc = *c.Description
	}
	return court.ReconstructCourt(
		c.ID, c.Name, court.Category(c.Type), rate, c.IsActive, desc, fixedTime, fixedTime,
	)
}

func (c *CourtBuilder) BuildView() *queries.CourtView {
	return queries.NewCourtView(c.BuildDomain())
}

func (c *CourtBuilder) BuildDTO() reqdto.CreateCourtRequest {
	return reqdto.CreateCourtRequest{
		Name:        c.Name,
		Type:        c.Type,
		HourlyRate:  c.HourlyRate,
		Description: c.Description,
	}
}

func (c *CourtBuilder) WithID(id uuid.UUID) *CourtBuilder {
	c.ID = id
	return c
}

func (c *CourtBuilder) WithName(name string) *CourtBuilder {
	c.Name = name
	return c
}

func (c *CourtBuilder) WithHourlyRate(rate float64) *CourtBuilder {
	c.HourlyRate = rate
	return c
}

func (c *CourtBuilder) WithDescription(desc string) *CourtBuilder {
	c.Description = &desc
	return c
}

func (c *CourtBuilder) AsInactive() *CourtBuilder {
	c.IsActive = false
	return c
}

package court

import (
	"errors"
	"strings"
	"time"

	"badminton-club/internal/domain/money"

	"github.com/google/uuid"
)

var (
	ErrEmptyCourtName    = errors.New("court name cannot be empty")
	ErrCourtNameTooLong  = errors.New("court name is too long (max 255 characters)")
	ErrInvalidCategory   = errors.New("court type must be indoor or outdoor")
	ErrNonPositiveRate   = errors.New("hourly rate must be positive")
	ErrDescriptionTooBig = errors.New("description is too long (max 1000 characters)")
)

const (
	MaxCourtNameLength   = 255
	MaxDescriptionLength = 1000

	DefaultDescription = "Court 8"
)

type Category string

const (
	CategoryIndoor  Category = "indoor"
	CategoryOutdoor Category = "outdoor"
)

func NewCategory(s string) (Category, error) {
	c := Category(s)
	switch c {
	case CategoryIndoor, CategoryOutdoor:
		return c, nil
	default:
		return "", ErrInvalidCategory
	}
}

func (c Category) String() string {
	return string(c)
}

type Court struct {
	id          uuid.UUID
	name        string
	category    Category
	hourlyRate  money.Money
	isActive    bool
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCourt(id uuid.UUID, name string, category Category, hourlyRate money.Money, description *string, now time.Time) (*Court, error) {
	if err := validateCourtName(name); err != nil {
		return nil, err
	}
	if hourlyRate.Cents() <= 0 {
		return nil, ErrNonPositiveRate
	}

	desc := DefaultDescription
	if description != nil {
		desc = strings.TrimSpace(*description)
		if len(desc) > MaxDescriptionLength {
			return nil, ErrDescriptionTooBig
		}
	}

	return &Court{
		id:          id,
		name:        strings.TrimSpace(name),
		category:    category,
		hourlyRate:  hourlyRate,
		isActive:    true,
		description: desc,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructCourt(
	id uuid.UUID,
	name string,
	category Category,
	hourlyRate money.Money,
	isActive bool,
	description string,
	createdAt, updatedAt time.Time,
) *Court {
	return &Court{
		id:          id,
		name:        name,
		category:    category,
		hourlyRate:  hourlyRate,
		isActive:    isActive,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// IsBookable reports whether new reservations may reference the court.
func (c *Court) IsBookable() bool {
	return c.isActive
}

func validateCourtName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyCourtName
	}
	if len(name) > MaxCourtNameLength {
		return ErrCourtNameTooLong
	}
	return nil
}

func (c *Court) ID() uuid.UUID           { return c.id }
func (c *Court) Name() string            { return c.name }
func (c *Court) Category() Category      { return c.category }
func (c *Court) HourlyRate() money.Money { return c.hourlyRate }
func (c *Court) IsActive() bool          { return c.isActive }
func (c *Court) Description() string     { return c.description }
func (c *Court) CreatedAt() time.Time    { return c.createdAt }
func (c *Court) UpdatedAt() time.Time    { return c.updatedAt }

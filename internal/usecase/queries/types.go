package queries

import (
	"time"

	"badminton-club/internal/domain/booking"
	"badminton-club/internal/domain/court"
	"badminton-club/internal/domain/user"

	"github.com/google/uuid"
)

type CourtView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	HourlyRate  float64   `json:"hourlyRate"`
	IsActive    bool      `json:"isActive"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type BookingView struct {
	ID            uuid.UUID `json:"id"`
	CourtID       uuid.UUID `json:"courtId"`
	UserID        uuid.UUID `json:"userId"`
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

// UserView never carries the password hash.
type UserView struct {
	ID               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Phone            string    `json:"phone"`
	Role             string    `json:"role"`
	MembershipType   string    `json:"membershipType"`
	MembershipExpiry time.Time `json:"membershipExpiry"`
	SkillLevel       string    `json:"skillLevel"`
	IsActive         bool      `json:"isActive"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type AvailabilityView struct {
	Available bool       `json:"available"`
	Conflicts []SlotView `json:"conflicts,omitempty"`
}

type SlotView struct {
	BookingID uuid.UUID `json:"bookingId"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
}

func NewCourtView(c *court.Court) *CourtView {
	return &CourtView{
		ID:          c.ID(),
		Name:        c.Name(),
		Type:        c.Category().String(),
		HourlyRate:  c.HourlyRate().Decimal(),
		IsActive:    c.IsActive(),
		Description: c.Description(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func NewBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:            b.ID(),
		CourtID:       b.CourtID(),
		UserID:        b.UserID(),
		Date:          b.Date().String(),
		StartTime:     b.Slot().Start().String(),
		EndTime:       b.Slot().End().String(),
		TotalAmount:   b.TotalAmount().Decimal(),
		Status:        b.Status().String(),
		PaymentStatus: b.PaymentStatus().String(),
		Notes:         b.Note().String(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
}

func NewUserView(u *user.User) *UserView {
	return &UserView{
		ID:               u.ID(),
		Email:            u.Email().Value(),
		FirstName:        u.Name().First(),
		LastName:         u.Name().Last(),
		Phone:            u.Phone().Value(),
		Role:             u.Role().String(),
		MembershipType:   u.MembershipType().String(),
		MembershipExpiry: u.MembershipExpiry(),
		SkillLevel:       u.SkillLevel().String(),
		IsActive:         u.IsActive(),
		CreatedAt:        u.CreatedAt(),
		UpdatedAt:        u.UpdatedAt(),
	}
}

func NewAvailabilityView(a booking.Availability) *AvailabilityView {
	view := &AvailabilityView{Available: a.Available}
	for _, b := range a.Conflicts {
		view.Conflicts = append(view.Conflicts, SlotView{
			BookingID: b.ID(),
			StartTime: b.Slot().Start().String(),
			EndTime:   b.Slot().End().String(),
		})
	}
	return view
}

package record

import (
	"time"

	"badminton-club/internal/infra/kvstore"
)

type Court struct {
	kvstore.Keys
	EntityType      string    `json:"entityType" dynamodbav:"entityType"`
	ID              string    `json:"id" dynamodbav:"id"`
	Name            string    `json:"name" dynamodbav:"name"`
	Type            string    `json:"type" dynamodbav:"type"`
	HourlyRateCents int64     `json:"hourlyRateCents" dynamodbav:"hourlyRateCents"`
	IsActive        bool      `json:"isActive" dynamodbav:"isActive"`
	Description     string    `json:"description" dynamodbav:"description"`
	CreatedAt       time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
}

type Booking struct {
	kvstore.Keys
	EntityType       string    `json:"entityType" dynamodbav:"entityType"`
	ID               string    `json:"id" dynamodbav:"id"`
	CourtID          string    `json:"courtId" dynamodbav:"courtId"`
	UserID           string    `json:"userId" dynamodbav:"userId"`
	Date             string    `json:"date" dynamodbav:"date"`
	StartTime        string    `json:"startTime" dynamodbav:"startTime"`
	EndTime          string    `json:"endTime" dynamodbav:"endTime"`
	TotalAmountCents int64     `json:"totalAmountCents" dynamodbav:"totalAmountCents"`
	Status           string    `json:"status" dynamodbav:"status"`
	PaymentStatus    string    `json:"paymentStatus" dynamodbav:"paymentStatus"`
	Notes            string    `json:"notes" dynamodbav:"notes"`
	CreatedAt        time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
}

type User struct {
	kvstore.Keys
	EntityType       string    `json:"entityType" dynamodbav:"entityType"`
	ID               string    `json:"id" dynamodbav:"id"`
	Email            string    `json:"email" dynamodbav:"email"`
	PasswordHash     string    `json:"passwordHash" dynamodbav:"passwordHash"`
	FirstName        string    `json:"firstName" dynamodbav:"firstName"`
	LastName         string    `json:"lastName" dynamodbav:"lastName"`
	Phone            string    `json:"phone" dynamodbav:"phone"`
	Role             string    `json:"role" dynamodbav:"role"`
	MembershipType   string    `json:"membershipType" dynamodbav:"membershipType"`
	MembershipExpiry time.Time `json:"membershipExpiry" dynamodbav:"membershipExpiry"`
	SkillLevel       string    `json:"skillLevel" dynamodbav:"skillLevel"`
	IsActive         bool      `json:"isActive" dynamodbav:"isActive"`
	CreatedAt        time.Time `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
}

// EmailClaim reserves an address for one user.
type EmailClaim struct {
	kvstore.Keys
	EntityType string `json:"entityType" dynamodbav:"entityType"`
	UserID     string `json:"userId" dynamodbav:"userId"`
}

// Schedule is the admission counter for one court and date.
type Schedule struct {
	kvstore.Keys
	EntityType string    `json:"entityType" dynamodbav:"entityType"`
	CourtID    string    `json:"courtId" dynamodbav:"courtId"`
	Date       string    `json:"date" dynamodbav:"date"`
	Version    int64     `json:"version" dynamodbav:"version"`
	UpdatedAt  time.Time `json:"updatedAt" dynamodbav:"updatedAt"`
}

// Package record holds the stored shape of every item in the main table and
// the key layout shared by the Postgres and DynamoDB backends.
package record

import (
	"github.com/google/uuid"
)

const (
	EntityCourt      = "court"
	EntityBooking    = "booking"
	EntityUser       = "user"
	EntityEmailClaim = "email_claim"
	EntitySchedule   = "schedule"
)

func CourtKey(id uuid.UUID) string   { return "COURT#" + id.String() }
func BookingKey(id uuid.UUID) string { return "BOOKING#" + id.String() }
func UserKey(id uuid.UUID) string    { return "USER#" + id.String() }
func EmailKey(email string) string   { return "EMAIL#" + email }

const UserProfileSK = "PROFILE"

// ScheduleSK addresses the per-day admission counter under a court.
func ScheduleSK(date string) string { return "SCHEDULE#" + date }

// BookingDayPrefix matches every booking sort key on one date.
func BookingDayPrefix(date string) string { return "BOOKING#" + date + "#" }

// BookingSlotSK orders bookings by date then start time.
func BookingSlotSK(date, startTime string) string {
	return BookingDayPrefix(date) + startTime
}

const BookingPrefix = "BOOKING#"

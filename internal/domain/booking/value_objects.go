package booking

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDate      = errors.New("date must be a calendar date in YYYY-MM-DD format")
	ErrInvalidTimeOfDay = errors.New("time must be in HH:MM 24-hour format")
	ErrInvalidTimeSlot  = errors.New("end time must be after start time")
)

var (
	datePattern      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeOfDayPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

// Date is an ISO calendar date kept in its string form; it is only ever used as a key component.
type Date struct {
	value string
}

func NewDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if !datePattern.MatchString(s) {
		return Date{}, ErrInvalidDate
	}
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{value: s}, nil
}

func (d Date) String() string {
	return d.value
}

// TimeOfDay is a wall-clock time as minutes since midnight.
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if !timeOfDayPattern.MatchString(s) {
		return 0, ErrInvalidTimeOfDay
	}
	hh, mm, _ := strings.Cut(s, ":")
	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(hours*60 + minutes), nil
}

func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// String renders the zero-padded HH:MM form used in index keys.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Slot is the half-open interval [start, end) within one day.
type Slot struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewSlot(start, end TimeOfDay) (Slot, error) {
	if end <= start {
		return Slot{}, ErrInvalidTimeSlot
	}
	return Slot{start: start, end: end}, nil
}

func ParseSlot(start, end string) (Slot, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Slot{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Slot{}, err
	}
	return NewSlot(s, e)
}

func (s Slot) Start() TimeOfDay { return s.start }
func (s Slot) End() TimeOfDay   { return s.end }

func (s Slot) Duration() time.Duration {
	return time.Duration(s.end-s.start) * time.Minute
}

// Overlaps uses half-open semantics: touching slots do not overlap.
func (s Slot) Overlaps(other Slot) bool {
	return s.start < other.end && s.end > other.start
}

func (s Slot) String() string {
	return s.start.String() + "-" + s.end.String()
}

type Note struct {
	value string
}

const DefaultNote = "No notes provided."

// NewNote applies the placeholder when the caller sent no note at all.
func NewNote(value *string) Note {
	if value == nil {
		return Note{value: DefaultNote}
	}
	return Note{value: strings.TrimSpace(*value)}
}

func (n Note) String() string {
	return n.value
}

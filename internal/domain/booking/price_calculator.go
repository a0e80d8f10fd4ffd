package booking

import (
	"fmt"
	"time"

	"badminton-club/internal/domain/money"
)

// DurationPolicy decides how much of a slot is billable.
type DurationPolicy func(slot Slot) time.Duration

// WholeHourDuration bills the difference of the hour components only, so 09:15-09:45
// is free and 09:30-11:00 bills two hours. Kept as the default until the billing rule
// for fractional hours is settled.
func WholeHourDuration(slot Slot) time.Duration {
	hours := slot.End().Hour() - slot.Start().Hour()
	return time.Duration(hours) * time.Hour
}

// ExactDuration bills the wall-clock length of the slot.
func ExactDuration(slot Slot) time.Duration {
	return slot.Duration()
}

const (
	DurationPolicyWholeHour = "whole_hour"
	DurationPolicyExact     = "exact"
)

func DurationPolicyByName(name string) (DurationPolicy, error) {
	switch name {
	case "", DurationPolicyWholeHour:
		return WholeHourDuration, nil
	case DurationPolicyExact:
		return ExactDuration, nil
	default:
		return nil, fmt.Errorf("unknown booking duration policy %q", name)
	}
}

type PriceCalculator interface {
	TotalAmount(hourlyRate money.Money, slot Slot) money.Money
}

type DefaultPriceCalculator struct {
	Policy DurationPolicy
}

func NewDefaultPriceCalculator(policy DurationPolicy) *DefaultPriceCalculator {
	if policy == nil {
		policy = WholeHourDuration
	}
	return &DefaultPriceCalculator{Policy: policy}
}

func (pc *DefaultPriceCalculator) TotalAmount(hourlyRate money.Money, slot Slot) money.Money {
	return hourlyRate.PerHour(pc.Policy(slot))
}

package domain

import "time"

// StandingStatus is a subscriber's derived account health.
type StandingStatus string

const (
	StandingGood     StandingStatus = "good"
	StandingDefault  StandingStatus = "default"
	StandingInactive StandingStatus = "inactive"
)

// Day bands for standing classification, inclusive on the lower side:
// up to 30 days is good, up to 60 is default, beyond that inactive.
const (
	goodThresholdDays    = 30
	defaultThresholdDays = 60
)

// Standing is the derived payment standing of one subscriber. It is
// recomputed on every read and never persisted.
type Standing struct {
	LastPaymentDate time.Time      `json:"last_payment_date"`
	DaysSince       int            `json:"days_since"`
	Status          StandingStatus `json:"status"`
}

// ClassifyStanding derives a subscriber's standing from its payment history.
// Only confirmed payments count; the most recent one by DateOfPayment is
// selected. Returns nil when no confirmed payment exists.
//
// The day difference is truncated to whole days. A future-dated payment
// yields a negative difference and classifies as good.
func ClassifyStanding(payments []Payment, now time.Time) *Standing {
	var latest *Payment
	for i := range payments {
		p := &payments[i]
		if !p.Confirmed {
			continue
		}
		if latest == nil || p.DateOfPayment.After(latest.DateOfPayment) {
			latest = p
		}
	}
	if latest == nil {
		return nil
	}

	days := int(now.Sub(latest.DateOfPayment).Hours() / 24)

	status := StandingInactive
	switch {
	case days <= goodThresholdDays:
		status = StandingGood
	case days <= defaultThresholdDays:
		status = StandingDefault
	}

	return &Standing{
		LastPaymentDate: latest.DateOfPayment,
		DaysSince:       days,
		Status:          status,
	}
}

package models

import (
	"math"
	"time"
)

// assumedDuration is the window progress is measured against
const assumedDuration = 7 * 24 * time.Hour

// Countdown breaks the time left on an auction into display units
type Countdown struct {
	Days     int     `json:"days"`
	Hours    int     `json:"hours"`
	Minutes  int     `json:"minutes"`
	Seconds  int     `json:"seconds"`
	Expired  bool    `json:"expired"`
	Progress float64 `json:"progress"` // 0 to 100
}

// Remaining computes the countdown to end as seen at now
func Remaining(end, now time.Time) Countdown {
	left := end.Sub(now)
	if left <= 0 {
		return Countdown{Expired: true, Progress: 100}
	}

	elapsed := now.Sub(end.Add(-assumedDuration))
	progress := math.Min(100, math.Max(0, float64(elapsed)/float64(assumedDuration)*100))

	return Countdown{
		Days:     int(left / (24 * time.Hour)),
		Hours:    int(left % (24 * time.Hour) / time.Hour),
		Minutes:  int(left % time.Hour / time.Minute),
		Seconds:  int(left % time.Minute / time.Second),
		Progress: progress,
	}
}

package domain

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Color is the visual semantic attached to a status badge
type Color string

const (
	ColorSuccess Color = "success"
	ColorLoss    Color = "loss"
	ColorWarning Color = "warning"
	ColorPending Color = "pending"
)

var statusColors = map[Status]Color{
	StatusFullyPaid:   ColorSuccess,
	StatusJustStarted: ColorLoss,
	StatusInProgress:  ColorWarning,
	StatusAlmostDone:  ColorPending,
}

// StatusColor maps a status to its badge color
func StatusColor(s Status) Color {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return ColorPending
}

// ProgressBarWidth caps the percentage for a bounded-width bar
func ProgressBarWidth(p float64) float64 {
	return math.Min(p, 100)
}

// FormatProgress renders a percentage with one decimal place
func FormatProgress(p float64) string {
	switch {
	case math.IsNaN(p):
		return "NaN"
	case math.IsInf(p, 1):
		return "Infinity"
	case math.IsInf(p, -1):
		return "-Infinity"
	}
	return decimal.NewFromFloat(p).StringFixed(1)
}

// MonthLabel renders a month key as "January 2025"
func MonthLabel(k MonthKey) string {
	return time.Date(k.Year, k.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}

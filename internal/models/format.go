package models

import (
	"fmt"
	"time"
)

// FormatCurrency renders an amount in rand.
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("R%.2f", amount)
}

// FormatChange renders a week-over-week percentage change.
func FormatChange(change float64) string {
	if change < 0 {
		change = -change
	}
	return fmt.Sprintf("%.1f%% from week", change)
}

// YesNo renders a flag for table cells.
func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// FormatDate renders a timestamp in local time, or "N/A" when it is unset.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Local().Format("2006-01-02 15:04")
}

// Package view formats derived statistics for presentation. Values cross
// this boundary as stored text or calendar values and leave as display
// strings; nothing here is ever written back.
package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/statchomper/statchomper/internal/boxscore"
)

// formLayout is the edit-form rendering of a game date ("12/20/2025").
const formLayout = "01/02/2006"

// FormatPercentage renders a stored percentage value for display. The "n/a"
// sentinel passes through unchanged, as does text that already carries a
// '%'. Numeric text is rendered with exactly one decimal place and a '%'.
func FormatPercentage(value string) string {
	if value == boxscore.NotApplicable {
		return value
	}
	if strings.Contains(value, "%") {
		return value
	}
	if v, err := strconv.ParseFloat(value, 64); err == nil {
		return strconv.FormatFloat(v, 'f', 1, 64) + "%"
	}
	return value + "%"
}

// FormatDate renders the canonical display form of a game date, e.g.
// "Dec 20, 2025".
func FormatDate(t time.Time) string {
	return t.Format(boxscore.DisplayDateLayout)
}

// FormatFormDate renders the edit-form display of a game date, e.g.
// "12/20/2025". Both forms derive from the same calendar value.
func FormatFormDate(t time.Time) string {
	return t.Format(formLayout)
}

// FormatShootingLine renders a category summary, e.g. "8 for 14, 57.1%".
func FormatShootingLine(line boxscore.ShootingLine) string {
	return fmt.Sprintf("%d for %d, %s", line.Made, line.Attempts, FormatPercentage(line.Percentage.String()))
}

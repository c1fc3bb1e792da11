package boxscore

import (
	"fmt"
	"strings"
)

// ValidationError reports input that must not reach the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ValidateInput checks a game input before create or update. The store
// itself does not enforce these rules; callers at the boundary must.
func ValidateInput(in GameInput) error {
	if strings.TrimSpace(in.Player) == "" {
		return &ValidationError{Field: "player", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.Opponent) == "" {
		return &ValidationError{Field: "opponent", Reason: "must not be empty"}
	}
	if in.DatePlayed.IsZero() {
		return &ValidationError{Field: "datePlayed", Reason: "must be set"}
	}

	counts := map[string]int{
		"twoPointMade":       in.TwoPointMade,
		"twoPointAttempts":   in.TwoPointAttempts,
		"threePointMade":     in.ThreePointMade,
		"threePointAttempts": in.ThreePointAttempts,
		"freeThrowMade":      in.FreeThrowMade,
		"freeThrowAttempts":  in.FreeThrowAttempts,
		"rebounds":           in.Rebounds,
		"assists":            in.Assists,
		"steals":             in.Steals,
		"blocks":             in.Blocks,
		"turnovers":          in.Turnovers,
		"fouls":              in.Fouls,
	}
	for field, v := range counts {
		if v < 0 {
			return &ValidationError{Field: field, Reason: "must not be negative"}
		}
	}

	if in.TwoPointMade > in.TwoPointAttempts {
		return &ValidationError{Field: "twoPointMade", Reason: "exceeds attempts"}
	}
	if in.ThreePointMade > in.ThreePointAttempts {
		return &ValidationError{Field: "threePointMade", Reason: "exceeds attempts"}
	}
	if in.FreeThrowMade > in.FreeThrowAttempts {
		return &ValidationError{Field: "freeThrowMade", Reason: "exceeds attempts"}
	}
	return nil
}

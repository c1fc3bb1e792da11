package boxscore

import "math"

// ComputePoints returns total points from made shots: two-pointers count
// double, three-pointers triple, free throws single.
func ComputePoints(twoMade, threeMade, ftMade int) int {
	return twoMade*2 + threeMade*3 + ftMade
}

// ComputePercentage returns the shooting percentage for a category, rounded
// to one decimal place. Zero attempts yields the not-applicable sentinel;
// the division only happens once attempts is known to be positive.
func ComputePercentage(made, attempts int) Percentage {
	if attempts == 0 {
		return Percentage{}
	}
	pct := float64(made) / float64(attempts) * 100
	return Percentage{Applicable: true, Value: math.Round(pct*10) / 10}
}

// Derive builds a full box score from raw input, recomputing every derived
// field. It is the single derivation point shared by the store's create and
// update paths, so points and percentages can never drift from the makes.
func Derive(in GameInput) BoxScore {
	return BoxScore{
		Points: ComputePoints(in.TwoPointMade, in.ThreePointMade, in.FreeThrowMade),
		TwoPoint: ShootingLine{
			Made:       in.TwoPointMade,
			Attempts:   in.TwoPointAttempts,
			Percentage: ComputePercentage(in.TwoPointMade, in.TwoPointAttempts),
		},
		ThreePoint: ShootingLine{
			Made:       in.ThreePointMade,
			Attempts:   in.ThreePointAttempts,
			Percentage: ComputePercentage(in.ThreePointMade, in.ThreePointAttempts),
		},
		FreeThrow: ShootingLine{
			Made:       in.FreeThrowMade,
			Attempts:   in.FreeThrowAttempts,
			Percentage: ComputePercentage(in.FreeThrowMade, in.FreeThrowAttempts),
		},
		Rebounds:  in.Rebounds,
		Assists:   in.Assists,
		Steals:    in.Steals,
		Blocks:    in.Blocks,
		Turnovers: in.Turnovers,
		Fouls:     in.Fouls,
	}
}

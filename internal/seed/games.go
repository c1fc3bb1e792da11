// Package seed holds the fixed bootstrap data set. It is read-only and only
// ever applied through the store's SeedIfEmpty, so an already-populated
// database is never touched. Derived fields are recomputed at insert time;
// the literals carry raw counts only.
package seed

import (
	"time"

	"github.com/statchomper/statchomper/internal/boxscore"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Games is the ordered seed set: 28 games across 13 players.
var Games = []boxscore.GameInput{
	{
		Player: "LeBron James", DatePlayed: day(2025, time.December, 20), Opponent: "Warriors",
		TwoPointMade: 8, TwoPointAttempts: 14, ThreePointMade: 3, ThreePointAttempts: 7,
		FreeThrowMade: 3, FreeThrowAttempts: 4,
		Rebounds: 12, Assists: 8, Steals: 2, Blocks: 1, Turnovers: 3, Fouls: 2,
	},
	{
		Player: "LeBron James", DatePlayed: day(2025, time.December, 18), Opponent: "Celtics",
		TwoPointMade: 10, TwoPointAttempts: 16, ThreePointMade: 4, ThreePointAttempts: 9,
		FreeThrowMade: 0, FreeThrowAttempts: 0,
		Rebounds: 7, Assists: 11, Steals: 1, Blocks: 2, Turnovers: 2, Fouls: 1,
	},
	{
		Player: "LeBron James", DatePlayed: day(2025, time.December, 15), Opponent: "Nets",
		TwoPointMade: 9, TwoPointAttempts: 15, ThreePointMade: 2, ThreePointAttempts: 5,
		FreeThrowMade: 1, FreeThrowAttempts: 2,
		Rebounds: 9, Assists: 6, Steals: 3, Blocks: 0, Turnovers: 4, Fouls: 3,
	},
	{
		Player: "Stephen Curry", DatePlayed: day(2025, time.December, 22), Opponent: "Lakers",
		TwoPointMade: 5, TwoPointAttempts: 8, ThreePointMade: 7, ThreePointAttempts: 15,
		FreeThrowMade: 6, FreeThrowAttempts: 6,
		Rebounds: 4, Assists: 7, Steals: 2, Blocks: 0, Turnovers: 2, Fouls: 2,
	},
	{
		Player: "Stephen Curry", DatePlayed: day(2025, time.December, 19), Opponent: "Mavericks",
		TwoPointMade: 6, TwoPointAttempts: 10, ThreePointMade: 9, ThreePointAttempts: 18,
		FreeThrowMade: 2, FreeThrowAttempts: 2,
		Rebounds: 5, Assists: 4, Steals: 1, Blocks: 0, Turnovers: 1, Fouls: 1,
	},
	{
		Player: "Giannis Antetokounmpo", DatePlayed: day(2025, time.December, 21), Opponent: "Heat",
		TwoPointMade: 15, TwoPointAttempts: 22, ThreePointMade: 1, ThreePointAttempts: 3,
		FreeThrowMade: 5, FreeThrowAttempts: 8,
		Rebounds: 15, Assists: 5, Steals: 2, Blocks: 3, Turnovers: 3, Fouls: 4,
	},
	{
		Player: "Giannis Antetokounmpo", DatePlayed: day(2025, time.December, 17), Opponent: "Bucks",
		TwoPointMade: 17, TwoPointAttempts: 25, ThreePointMade: 0, ThreePointAttempts: 2,
		FreeThrowMade: 8, FreeThrowAttempts: 12,
		Rebounds: 18, Assists: 3, Steals: 1, Blocks: 4, Turnovers: 2, Fouls: 3,
	},
	{
		Player: "Giannis Antetokounmpo", DatePlayed: day(2025, time.December, 14), Opponent: "Pacers",
		TwoPointMade: 12, TwoPointAttempts: 19, ThreePointMade: 1, ThreePointAttempts: 4,
		FreeThrowMade: 4, FreeThrowAttempts: 7,
		Rebounds: 13, Assists: 6, Steals: 2, Blocks: 2, Turnovers: 4, Fouls: 2,
	},
	{
		Player: "Kevin Durant", DatePlayed: day(2025, time.December, 23), Opponent: "Clippers",
		TwoPointMade: 10, TwoPointAttempts: 15, ThreePointMade: 3, ThreePointAttempts: 8,
		FreeThrowMade: 4, FreeThrowAttempts: 4,
		Rebounds: 8, Assists: 6, Steals: 1, Blocks: 2, Turnovers: 2, Fouls: 1,
	},
	{
		Player: "Kevin Durant", DatePlayed: day(2025, time.December, 20), Opponent: "Spurs",
		TwoPointMade: 9, TwoPointAttempts: 14, ThreePointMade: 2, ThreePointAttempts: 6,
		FreeThrowMade: 5, FreeThrowAttempts: 6,
		Rebounds: 7, Assists: 4, Steals: 2, Blocks: 1, Turnovers: 1, Fouls: 2,
	},
	{
		Player: "Luka Doncic", DatePlayed: day(2025, time.December, 22), Opponent: "Rockets",
		TwoPointMade: 11, TwoPointAttempts: 18, ThreePointMade: 4, ThreePointAttempts: 10,
		FreeThrowMade: 2, FreeThrowAttempts: 3,
		Rebounds: 9, Assists: 12, Steals: 2, Blocks: 0, Turnovers: 4, Fouls: 3,
	},
	{
		Player: "Luka Doncic", DatePlayed: day(2025, time.December, 18), Opponent: "Thunder",
		TwoPointMade: 13, TwoPointAttempts: 20, ThreePointMade: 5, ThreePointAttempts: 12,
		FreeThrowMade: 0, FreeThrowAttempts: 0,
		Rebounds: 11, Assists: 10, Steals: 1, Blocks: 1, Turnovers: 3, Fouls: 2,
	},
	{
		Player: "Joel Embiid", DatePlayed: day(2025, time.December, 21), Opponent: "Knicks",
		TwoPointMade: 12, TwoPointAttempts: 20, ThreePointMade: 2, ThreePointAttempts: 5,
		FreeThrowMade: 6, FreeThrowAttempts: 8,
		Rebounds: 14, Assists: 3, Steals: 1, Blocks: 3, Turnovers: 3, Fouls: 4,
	},
	{
		Player: "Joel Embiid", DatePlayed: day(2025, time.December, 19), Opponent: "Raptors",
		TwoPointMade: 14, TwoPointAttempts: 22, ThreePointMade: 1, ThreePointAttempts: 4,
		FreeThrowMade: 7, FreeThrowAttempts: 9,
		Rebounds: 16, Assists: 2, Steals: 0, Blocks: 4, Turnovers: 2, Fouls: 3,
	},
	{
		Player: "Nikola Jokic", DatePlayed: day(2025, time.December, 23), Opponent: "Jazz",
		TwoPointMade: 10, TwoPointAttempts: 16, ThreePointMade: 2, ThreePointAttempts: 4,
		FreeThrowMade: 1, FreeThrowAttempts: 2,
		Rebounds: 13, Assists: 14, Steals: 2, Blocks: 1, Turnovers: 3, Fouls: 2,
	},
	{
		Player: "Nikola Jokic", DatePlayed: day(2025, time.December, 20), Opponent: "Trail Blazers",
		TwoPointMade: 12, TwoPointAttempts: 18, ThreePointMade: 1, ThreePointAttempts: 3,
		FreeThrowMade: 4, FreeThrowAttempts: 5,
		Rebounds: 15, Assists: 11, Steals: 1, Blocks: 2, Turnovers: 2, Fouls: 3,
	},
	{
		Player: "Jayson Tatum", DatePlayed: day(2025, time.December, 22), Opponent: "Hawks",
		TwoPointMade: 9, TwoPointAttempts: 15, ThreePointMade: 3, ThreePointAttempts: 9,
		FreeThrowMade: 3, FreeThrowAttempts: 4,
		Rebounds: 8, Assists: 5, Steals: 2, Blocks: 1, Turnovers: 2, Fouls: 2,
	},
	{
		Player: "Jayson Tatum", DatePlayed: day(2025, time.December, 19), Opponent: "Magic",
		TwoPointMade: 8, TwoPointAttempts: 14, ThreePointMade: 4, ThreePointAttempts: 10,
		FreeThrowMade: 0, FreeThrowAttempts: 0,
		Rebounds: 7, Assists: 6, Steals: 1, Blocks: 0, Turnovers: 3, Fouls: 1,
	},
	{
		Player: "Damian Lillard", DatePlayed: day(2025, time.December, 21), Opponent: "Grizzlies",
		TwoPointMade: 7, TwoPointAttempts: 12, ThreePointMade: 5, ThreePointAttempts: 13,
		FreeThrowMade: 3, FreeThrowAttempts: 3,
		Rebounds: 4, Assists: 8, Steals: 1, Blocks: 0, Turnovers: 2, Fouls: 2,
	},
	{
		Player: "Damian Lillard", DatePlayed: day(2025, time.December, 18), Opponent: "Pelicans",
		TwoPointMade: 8, TwoPointAttempts: 13, ThreePointMade: 6, ThreePointAttempts: 15,
		FreeThrowMade: 4, FreeThrowAttempts: 4,
		Rebounds: 3, Assists: 10, Steals: 2, Blocks: 0, Turnovers: 3, Fouls: 1,
	},
	{
		Player: "Anthony Davis", DatePlayed: day(2025, time.December, 23), Opponent: "Suns",
		TwoPointMade: 13, TwoPointAttempts: 20, ThreePointMade: 1, ThreePointAttempts: 3,
		FreeThrowMade: 6, FreeThrowAttempts: 8,
		Rebounds: 12, Assists: 2, Steals: 2, Blocks: 4, Turnovers: 1, Fouls: 3,
	},
	{
		Player: "Anthony Davis", DatePlayed: day(2025, time.December, 20), Opponent: "Kings",
		TwoPointMade: 11, TwoPointAttempts: 18, ThreePointMade: 0, ThreePointAttempts: 2,
		FreeThrowMade: 7, FreeThrowAttempts: 10,
		Rebounds: 14, Assists: 3, Steals: 1, Blocks: 3, Turnovers: 2, Fouls: 4,
	},
	{
		Player: "Kawhi Leonard", DatePlayed: day(2025, time.December, 22), Opponent: "Timberwolves",
		TwoPointMade: 9, TwoPointAttempts: 15, ThreePointMade: 2, ThreePointAttempts: 6,
		FreeThrowMade: 2, FreeThrowAttempts: 2,
		Rebounds: 7, Assists: 4, Steals: 3, Blocks: 1, Turnovers: 1, Fouls: 2,
	},
	{
		Player: "Kawhi Leonard", DatePlayed: day(2025, time.December, 19), Opponent: "Hornets",
		TwoPointMade: 10, TwoPointAttempts: 16, ThreePointMade: 3, ThreePointAttempts: 7,
		FreeThrowMade: 2, FreeThrowAttempts: 3,
		Rebounds: 6, Assists: 5, Steals: 2, Blocks: 2, Turnovers: 2, Fouls: 1,
	},
	{
		Player: "Devin Booker", DatePlayed: day(2025, time.December, 21), Opponent: "Lakers",
		TwoPointMade: 10, TwoPointAttempts: 17, ThreePointMade: 4, ThreePointAttempts: 11,
		FreeThrowMade: 2, FreeThrowAttempts: 2,
		Rebounds: 5, Assists: 7, Steals: 1, Blocks: 0, Turnovers: 3, Fouls: 2,
	},
	{
		Player: "Devin Booker", DatePlayed: day(2025, time.December, 18), Opponent: "Warriors",
		TwoPointMade: 9, TwoPointAttempts: 15, ThreePointMade: 3, ThreePointAttempts: 8,
		FreeThrowMade: 2, FreeThrowAttempts: 3,
		Rebounds: 4, Assists: 9, Steals: 2, Blocks: 0, Turnovers: 2, Fouls: 3,
	},
	{
		Player: "Jaylen Brown", DatePlayed: day(2025, time.December, 20), Opponent: "Cavaliers",
		TwoPointMade: 9, TwoPointAttempts: 14, ThreePointMade: 3, ThreePointAttempts: 7,
		FreeThrowMade: 0, FreeThrowAttempts: 0,
		Rebounds: 6, Assists: 4, Steals: 2, Blocks: 1, Turnovers: 2, Fouls: 2,
	},
	{
		Player: "Jaylen Brown", DatePlayed: day(2025, time.December, 17), Opponent: "Wizards",
		TwoPointMade: 11, TwoPointAttempts: 16, ThreePointMade: 2, ThreePointAttempts: 6,
		FreeThrowMade: 4, FreeThrowAttempts: 5,
		Rebounds: 7, Assists: 3, Steals: 3, Blocks: 0, Turnovers: 1, Fouls: 3,
	},
}

package boxscore

import (
	"encoding/json"
	"strconv"
	"time"
)

// DisplayDateLayout is the canonical rendering of a game date ("Dec 20, 2025").
// Filtering and display formatting must agree on this layout, so it lives here
// rather than in the view package.
const DisplayDateLayout = "Jan 2, 2006"

// NotApplicable is the sentinel stored for a shooting percentage with zero
// attempts. It is distinct from 0.0.
const NotApplicable = "n/a"

// Percentage is a shooting percentage for one category. It is a tagged value:
// either not applicable (zero attempts) or a one-decimal number.
type Percentage struct {
	Applicable bool
	Value      float64
}

// String renders the persisted text form: "n/a" or a one-decimal number
// without the trailing '%' (e.g. "57.1").
func (p Percentage) String() string {
	if !p.Applicable {
		return NotApplicable
	}
	return strconv.FormatFloat(p.Value, 'f', 1, 64)
}

// MarshalJSON emits the same text form the games table stores.
func (p Percentage) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Percentage) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*p = ParsePercentage(s)
	return nil
}

// ParsePercentage reads the persisted text form back into a tagged value.
// Unparseable text degrades to not-applicable rather than failing a read.
func ParsePercentage(s string) Percentage {
	if s == "" || s == NotApplicable {
		return Percentage{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Percentage{}
	}
	return Percentage{Applicable: true, Value: v}
}

// ShootingLine is one shooting category of a box score. Percentage is derived
// from Made and Attempts and is never caller input.
type ShootingLine struct {
	Made       int        `json:"made"`
	Attempts   int        `json:"attempts"`
	Percentage Percentage `json:"percentage"`
}

// BoxScore is the full stat line for one player in one game. Points and the
// per-category percentages are derived; everything else is caller input.
type BoxScore struct {
	Points     int          `json:"points"`
	TwoPoint   ShootingLine `json:"twoPoint"`
	ThreePoint ShootingLine `json:"threePoint"`
	FreeThrow  ShootingLine `json:"freeThrow"`
	Rebounds   int          `json:"rebounds"`
	Assists    int          `json:"assists"`
	Steals     int          `json:"steals"`
	Blocks     int          `json:"blocks"`
	Turnovers  int          `json:"turnovers"`
	Fouls      int          `json:"fouls"`
}

// GameRecord is one persisted game. ID is assigned by the store on creation
// and never changes; CreatedAt is set once at insert.
type GameRecord struct {
	ID         int64     `json:"id"`
	Player     string    `json:"player"`
	DatePlayed time.Time `json:"datePlayed"`
	Opponent   string    `json:"opponent"`
	BoxScore   BoxScore  `json:"boxScore"`
	CreatedAt  time.Time `json:"createdAt"`
}

// GameInput carries the mutable, caller-settable fields of a game. Derived
// fields (points, percentages) are recomputed from it on every write.
type GameInput struct {
	Player     string    `json:"player"`
	DatePlayed time.Time `json:"datePlayed"`
	Opponent   string    `json:"opponent"`

	TwoPointMade       int `json:"twoPointMade"`
	TwoPointAttempts   int `json:"twoPointAttempts"`
	ThreePointMade     int `json:"threePointMade"`
	ThreePointAttempts int `json:"threePointAttempts"`
	FreeThrowMade      int `json:"freeThrowMade"`
	FreeThrowAttempts  int `json:"freeThrowAttempts"`

	Rebounds  int `json:"rebounds"`
	Assists   int `json:"assists"`
	Steals    int `json:"steals"`
	Blocks    int `json:"blocks"`
	Turnovers int `json:"turnovers"`
	Fouls     int `json:"fouls"`
}

package boxscore

import (
	"sort"
	"strings"
)

// PlayerGames is one group in the player-keyed view of the record set.
type PlayerGames struct {
	Player string       `json:"player"`
	Games  []GameRecord `json:"games"`
}

// GroupByPlayer partitions records by exact player name. Groups come back
// alphabetically ascending; games within a group are newest first. The
// grouping is recomputed from the full set on every call, which is cheap at
// the volumes this store sees.
func GroupByPlayer(records []GameRecord) []PlayerGames {
	grouped := make(map[string][]GameRecord)
	for _, rec := range records {
		grouped[rec.Player] = append(grouped[rec.Player], rec)
	}

	players := make([]string, 0, len(grouped))
	for player := range grouped {
		players = append(players, player)
	}
	sort.Strings(players)

	result := make([]PlayerGames, 0, len(players))
	for _, player := range players {
		games := grouped[player]
		sort.SliceStable(games, func(i, j int) bool {
			return games[i].DatePlayed.After(games[j].DatePlayed)
		})
		result = append(result, PlayerGames{Player: player, Games: games})
	}
	return result
}

// FilterByText returns the records whose display date or opponent contains
// query, case-insensitively. A blank or whitespace-only query matches
// everything. Input order is preserved.
func FilterByText(records []GameRecord, query string) []GameRecord {
	query = strings.TrimSpace(query)
	if query == "" {
		return records
	}
	query = strings.ToLower(query)

	var filtered []GameRecord
	for _, rec := range records {
		date := strings.ToLower(rec.DatePlayed.Format(DisplayDateLayout))
		opponent := strings.ToLower(rec.Opponent)
		if strings.Contains(date, query) || strings.Contains(opponent, query) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

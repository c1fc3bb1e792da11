package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/statchomper/statchomper/internal/boxscore"
	"github.com/statchomper/statchomper/internal/games"
	"github.com/statchomper/statchomper/internal/metrics"
	"github.com/statchomper/statchomper/internal/seed"
	"github.com/statchomper/statchomper/internal/view"
)

var (
	listPlayer string
	listFilter string
	gameFlags  gameFlagSet
)

// gameFlagSet carries the raw flag values for add and update.
type gameFlagSet struct {
	player   string
	date     string
	opponent string

	twoMade, twoAtt     int
	threeMade, threeAtt int
	ftMade, ftAtt       int

	rebounds, assists, steals, blocks, turnovers, fouls int
}

func (f *gameFlagSet) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.player, "player", "", "player display name")
	cmd.Flags().StringVar(&f.date, "date", "", "date played (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.opponent, "opponent", "", "opponent name")
	cmd.Flags().IntVar(&f.twoMade, "two-made", 0, "two-point field goals made")
	cmd.Flags().IntVar(&f.twoAtt, "two-attempts", 0, "two-point field goals attempted")
	cmd.Flags().IntVar(&f.threeMade, "three-made", 0, "three-point field goals made")
	cmd.Flags().IntVar(&f.threeAtt, "three-attempts", 0, "three-point field goals attempted")
	cmd.Flags().IntVar(&f.ftMade, "ft-made", 0, "free throws made")
	cmd.Flags().IntVar(&f.ftAtt, "ft-attempts", 0, "free throws attempted")
	cmd.Flags().IntVar(&f.rebounds, "rebounds", 0, "rebounds")
	cmd.Flags().IntVar(&f.assists, "assists", 0, "assists")
	cmd.Flags().IntVar(&f.steals, "steals", 0, "steals")
	cmd.Flags().IntVar(&f.blocks, "blocks", 0, "blocks")
	cmd.Flags().IntVar(&f.turnovers, "turnovers", 0, "turnovers")
	cmd.Flags().IntVar(&f.fouls, "fouls", 0, "fouls")
}

// input validates the flag values and converts them into a GameInput.
func (f *gameFlagSet) input() (boxscore.GameInput, error) {
	var datePlayed time.Time
	if f.date != "" {
		var err error
		datePlayed, err = time.Parse("2006-01-02", f.date)
		if err != nil {
			return boxscore.GameInput{}, fmt.Errorf("invalid --date %q: %w", f.date, err)
		}
	}

	in := boxscore.GameInput{
		Player:             f.player,
		DatePlayed:         datePlayed,
		Opponent:           f.opponent,
		TwoPointMade:       f.twoMade,
		TwoPointAttempts:   f.twoAtt,
		ThreePointMade:     f.threeMade,
		ThreePointAttempts: f.threeAtt,
		FreeThrowMade:      f.ftMade,
		FreeThrowAttempts:  f.ftAtt,
		Rebounds:           f.rebounds,
		Assists:            f.assists,
		Steals:             f.steals,
		Blocks:             f.blocks,
		Turnovers:          f.turnovers,
		Fouls:              f.fouls,
	}
	if err := boxscore.ValidateInput(in); err != nil {
		return boxscore.GameInput{}, err
	}
	return in, nil
}

func init() {
	listCmd.Flags().StringVar(&listPlayer, "player", "", "show games for this player only (exact match)")
	listCmd.Flags().StringVar(&listFilter, "filter", "", "filter by date or opponent text")
	gameFlags.register(addCmd)
	gameFlags.register(updateCmd)

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(deletePlayerCmd)
	rootCmd.AddCommand(metricsCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the store with the bundled sample games if it is empty",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, metricsStore, teardown := openStores()
		defer teardown()
		return runSeed(cmd.OutOrStdout(), store, metricsStore)
	},
}

func runSeed(w io.Writer, store games.GameStore, metricsStore metrics.MetricsStore) error {
	inserted, err := store.SeedIfEmpty(seed.Games)
	if err != nil {
		return err
	}
	if inserted > 0 {
		metricsStore.Increment("seed_runs")
	}
	fmt.Fprintf(w, "Seeded %d of %d games\n", inserted, len(seed.Games))
	return nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games grouped by player",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, teardown := openStores()
		defer teardown()
		return renderGames(cmd.OutOrStdout(), store, listPlayer, listFilter)
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the distinct players in the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, _, teardown := openStores()
		defer teardown()

		for _, p := range store.GetDistinctPlayers() {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new game",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := gameFlags.input()
		if err != nil {
			return err
		}

		store, metricsStore, teardown := openStores()
		defer teardown()

		id, err := store.Create(in)
		if err != nil {
			return err
		}
		metricsStore.Increment("games_created")
		fmt.Fprintf(cmd.OutOrStdout(), "Created game %d for %s\n", id, in.Player)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace the stats of an existing game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid game id %q: %w", args[0], err)
		}
		in, err := gameFlags.input()
		if err != nil {
			return err
		}

		store, metricsStore, teardown := openStores()
		defer teardown()

		if err := store.Update(id, in); err != nil {
			return err
		}
		metricsStore.Increment("games_updated")
		fmt.Fprintf(cmd.OutOrStdout(), "Updated game %d\n", id)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one game",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid game id %q: %w", args[0], err)
		}

		store, metricsStore, teardown := openStores()
		defer teardown()

		if err := store.Delete(id); err != nil {
			return err
		}
		metricsStore.Increment("games_deleted")
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted game %d\n", id)
		return nil
	},
}

var deletePlayerCmd = &cobra.Command{
	Use:   "delete-player <name>",
	Short: "Delete every game for a player (exact name match)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, metricsStore, teardown := openStores()
		defer teardown()

		removed, err := store.DeleteByPlayer(args[0])
		if err != nil {
			return err
		}
		if removed > 0 {
			metricsStore.Increment("players_deleted")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d games for %s\n", removed, args[0])
		return nil
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show operation counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, metricsStore, teardown := openStores()
		defer teardown()

		counters, err := metricsStore.GetAll()
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(counters))
		for k := range counters {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d\n", k, counters[k])
		}
		return nil
	},
}

// renderGames fetches, filters, groups and prints games. It is the
// presentation path: everything goes through the grouping transform and the
// view formatters.
func renderGames(w io.Writer, store games.GameStore, player, filter string) error {
	var records []boxscore.GameRecord
	if player != "" {
		records = store.GetByPlayer(player)
	} else {
		records = store.GetAll()
	}
	records = boxscore.FilterByText(records, filter)

	if len(records) == 0 {
		fmt.Fprintln(w, "No games found")
		return nil
	}

	for _, group := range boxscore.GroupByPlayer(records) {
		fmt.Fprintf(w, "%s\n", group.Player)
		for _, g := range group.Games {
			bs := g.BoxScore
			fmt.Fprintf(w, "  [%d] %s vs %s: %d pts\n", g.ID, view.FormatDate(g.DatePlayed), g.Opponent, bs.Points)
			fmt.Fprintf(w, "      2PT %s | 3PT %s | FT %s\n",
				view.FormatShootingLine(bs.TwoPoint),
				view.FormatShootingLine(bs.ThreePoint),
				view.FormatShootingLine(bs.FreeThrow))
			fmt.Fprintf(w, "      REB %d AST %d STL %d BLK %d TO %d PF %d\n",
				bs.Rebounds, bs.Assists, bs.Steals, bs.Blocks, bs.Turnovers, bs.Fouls)
		}
	}
	return nil
}

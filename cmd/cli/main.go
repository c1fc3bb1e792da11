package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/statchomper/statchomper/internal/config"
	"github.com/statchomper/statchomper/internal/database"
	"github.com/statchomper/statchomper/internal/games"
	"github.com/statchomper/statchomper/internal/metrics"
)

var rootCmd = &cobra.Command{
	Use:   "statchomper",
	Short: "A CLI for recording and reviewing basketball box scores",
	Long: `A command-line interface for the statchomper game store: record
box-score stats per player per game, and review them grouped by player.`,
}

// openStores loads configuration and opens the game and metrics stores. A
// failed storage init is not fatal: the CLI continues with degraded stores
// (empty reads, failing writes) so read-only commands still run cleanly.
func openStores() (games.GameStore, metrics.MetricsStore, func()) {
	cfg := config.Load()
	db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken, cfg.MigrationsDir)
	if err != nil {
		log.Error("Failed to initialize database, continuing with empty store", "error", err)
		return games.New(nil), metrics.New(nil), func() {}
	}
	return games.New(db), metrics.New(db), teardown
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your command '%s'", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}

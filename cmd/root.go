package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kupu-app/kupu/internal/config"
	"github.com/kupu-app/kupu/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "kupu",
	Short: "Te reo Māori vocabulary practice with streaks and daily goals",
	Long: "Kupu tracks flashcard practice and listening time: XP, a daily streak, " +
		"a daily watch goal, levels and badges. Run without a subcommand to open the terminal UI.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KUPU_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default: ./config/config.yaml or the user config dir)")

	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(outsideCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(backupsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured db_path (KUPU_DB / KUPU_DB_PATH), then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

package cmd

import (
	"fmt"

	"github.com/kavery/platewise/internal/catalog"
	"github.com/kavery/platewise/internal/store"
	"github.com/spf13/cobra"
)

// defaultUserID is the journey owner for a single-user install.
const defaultUserID = "local"

var rootCmd = &cobra.Command{
	Use:   "platewise",
	Short: "Daily nutrition companion",
	Long:  "Platewise — terminal companion that teaches balanced eating one plate at a time.",
	// Errors are reported once by main.
	SilenceErrors: true,
	SilenceUsage:  true,
	// Seed data problems are fatal before any command runs.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return checkCatalog(catalog.New())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToday(cmd)
	},
}

// checkCatalog runs the catalog self-check once at startup. A failure is a
// data error shipped with the binary, not a runtime condition.
func checkCatalog(cat *catalog.Catalog) error {
	if err := cat.Validate(); err != nil {
		return fmt.Errorf("catalog self-check: %w", err)
	}
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PLATEWISE_DB env var)")

	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(journeyCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(tacticsCmd)
	rootCmd.AddCommand(plateCmd)
	rootCmd.AddCommand(coachCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PLATEWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

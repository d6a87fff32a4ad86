package cmd

import (
	"fmt"
	"strings"

	"github.com/kavery/platewise/internal/catalog"
	"github.com/kavery/platewise/internal/journey"
	"github.com/kavery/platewise/internal/store"
	"github.com/kavery/platewise/internal/ui/theme"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show journey and plate check statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		cat := catalog.New()

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		state, err := loadOrNewState(ctx, s.JourneyRepo())
		if err != nil {
			return err
		}

		fmt.Println(theme.Title.Render("Journey"))
		for _, summary := range journey.Summaries(cat, state) {
			bar := progressBar(summary.CompletedCount, summary.TotalCount, 20)
			line := fmt.Sprintf("%-14s %s %d/%d", summary.Level.DisplayName(), bar, summary.CompletedCount, summary.TotalCount)
			if summary.Locked {
				fmt.Println(theme.Locked.Render(line + "  🔒"))
			} else {
				fmt.Println(theme.Body.Render(line))
			}
		}

		checks, err := s.EventRepo().QueryPlateChecks(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query plate checks: %w", err)
		}

		fmt.Println()
		fmt.Println(theme.Title.Render("Plate checks"))
		if len(checks) == 0 {
			fmt.Println(theme.Hint.Render("No plate checks yet. Try 'platewise plate photo.jpg'."))
			return nil
		}

		counts := map[string]int{}
		for _, check := range checks {
			counts[check.ReactionType]++
		}
		fmt.Printf("%s %d   %s %d   %s %d\n",
			theme.Perfect.Render("perfect"), counts[string(catalog.ReactionPerfect)],
			theme.Meh.Render("meh"), counts[string(catalog.ReactionMeh)],
			theme.Oops.Render("oops"), counts[string(catalog.ReactionOops)])

		fmt.Println()
		for _, check := range checks {
			fmt.Printf("%s  %s %s  %s\n",
				theme.Subtitle.Render(check.Timestamp.Local().Format("2006-01-02 15:04")),
				checkMark(check.HasProtein)+" protein",
				checkMark(check.HasPlants)+" plants",
				reactionStyle(catalog.ReactionType(check.ReactionType)).Render(check.ReactionType))
		}

		return nil
	},
}

func progressBar(done, total, width int) string {
	if total <= 0 {
		return strings.Repeat("░", width)
	}
	filled := done * width / total
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent plate checks to show")
}

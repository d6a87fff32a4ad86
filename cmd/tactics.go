package cmd

import (
	"fmt"

	"github.com/kavery/platewise/internal/catalog"
	"github.com/kavery/platewise/internal/ui/theme"
	"github.com/spf13/cobra"
)

var tacticsCmd = &cobra.Command{
	Use:   "tactics [tactic-id]",
	Short: "List habit tactics, or show one in detail",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.New()

		if len(args) == 1 {
			tactic, ok := cat.TacticByID(args[0])
			if !ok {
				return fmt.Errorf("no tactic with ID %q — run 'platewise tactics' to list them", args[0])
			}
			printTactic(tactic)
			return nil
		}

		categoryFlag, _ := cmd.Flags().GetString("category")

		var tactics []catalog.Tactic
		if categoryFlag != "" {
			category := catalog.Category(categoryFlag)
			tactics = cat.TacticsByCategory(category)
			if len(tactics) == 0 {
				return fmt.Errorf("no tactics for category %q (try: protein, plants, cravings, routine)", categoryFlag)
			}
		} else {
			tactics = cat.Tactics()
		}

		for _, tactic := range tactics {
			printTactic(tactic)
		}

		// A category filter means the reader cares about that habit area;
		// point at the lessons covering it too.
		if categoryFlag != "" {
			if lessons := cat.LessonsByCategory(catalog.Category(categoryFlag)); len(lessons) > 0 {
				fmt.Println(theme.Subtitle.Render("Related lessons:"))
				for _, lesson := range lessons {
					fmt.Println(theme.Hint.Render("  " + lesson.Title + "  (" + lesson.ID + ")"))
				}
			}
		}
		return nil
	},
}

func printTactic(tactic catalog.Tactic) {
	fmt.Println(theme.Title.Render(tactic.Title) + theme.Subtitle.Render("  ["+string(tactic.Category)+"]"))
	fmt.Println(theme.Body.Render(tactic.Body))
	fmt.Println()
}

func init() {
	tacticsCmd.Flags().StringP("category", "c", "", "Filter by category (protein, plants, cravings, routine)")
}

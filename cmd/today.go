package cmd

import (
	"fmt"
	"time"

	"github.com/kavery/platewise/internal/catalog"
	"github.com/kavery/platewise/internal/journey"
	"github.com/kavery/platewise/internal/rotation"
	"github.com/kavery/platewise/internal/ui/theme"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's golden rule, daily drop, and next lesson",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runToday(cmd)
	},
}

func runToday(cmd *cobra.Command) error {
	cat := catalog.New()
	now := time.Now()

	rules := cat.GoldenRules()
	ruleIdx, err := rotation.PickAt(len(rules), now, rotation.OffsetGoldenRule)
	if err != nil {
		return fmt.Errorf("pick golden rule: %w", err)
	}
	rule := rules[ruleIdx]

	drops := cat.Drops()
	dropIdx, err := rotation.PickAt(len(drops), now, rotation.OffsetDailyDrop)
	if err != nil {
		return fmt.Errorf("pick daily drop: %w", err)
	}
	drop := drops[dropIdx]

	fmt.Println(theme.Title.Render("Today's golden rule"))
	fmt.Println(theme.Body.Render(rule.Title))
	fmt.Println(theme.Subtitle.Render(rule.Body))
	fmt.Println()
	fmt.Println(theme.Title.Render("Daily drop"))
	fmt.Println(theme.Body.Render(drop.Text))

	// Point at the current lesson if the journey isn't finished.
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	state, err := loadOrNewState(cmd.Context(), s.JourneyRepo())
	if err != nil {
		return err
	}

	statuses := journey.Statuses(cat, state)
	for _, lesson := range cat.Lessons() {
		if statuses[lesson.ID] == journey.StatusCurrent {
			fmt.Println()
			fmt.Println(theme.Title.Render("Up next"))
			fmt.Println(theme.Current.Render(lesson.Title) + theme.Subtitle.Render("  ("+lesson.ID+")"))
			fmt.Println(theme.Hint.Render("Run 'platewise lesson " + lesson.ID + "' to read it."))
			break
		}
	}

	return nil
}

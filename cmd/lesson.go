package cmd

import (
	"fmt"

	"github.com/kavery/platewise/internal/catalog"
	"github.com/kavery/platewise/internal/journey"
	"github.com/kavery/platewise/internal/ui/theme"
	"github.com/spf13/cobra"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson <lesson-id>",
	Short: "Read a lesson",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.New()

		lesson, ok := cat.LessonByID(args[0])
		if !ok {
			return fmt.Errorf("no lesson with ID %q — run 'platewise journey' to list lessons", args[0])
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		state, err := loadOrNewState(cmd.Context(), s.JourneyRepo())
		if err != nil {
			return err
		}

		status := journey.Statuses(cat, state)[lesson.ID]
		if status == journey.StatusLocked {
			fmt.Println(theme.Locked.Render("🔒 This lesson is locked."))
			fmt.Println(theme.Hint.Render("Finish the " + lesson.Level.DisplayName() + " prerequisites first — 'platewise journey' shows where you are."))
			return nil
		}

		fmt.Println(theme.Title.Render(lesson.Title))
		fmt.Println(theme.Subtitle.Render(lesson.Subtitle))
		fmt.Println()
		for _, paragraph := range lesson.Paragraphs {
			fmt.Println(theme.Body.Render(paragraph))
			fmt.Println()
		}

		if status != journey.StatusCompleted {
			fmt.Println(theme.Hint.Render("Done reading? Run 'platewise journey complete " + lesson.ID + "'."))
		}

		return nil
	},
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kavery/platewise/internal/catalog"
	"github.com/kavery/platewise/internal/journey"
	"github.com/kavery/platewise/internal/store"
	"github.com/kavery/platewise/internal/ui/theme"
	"github.com/spf13/cobra"
)

var journeyCmd = &cobra.Command{
	Use:   "journey",
	Short: "Show curriculum progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.New()

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
		summaries := journey.Summaries(cat, state)

		for _, summary := range summaries {
			header := fmt.Sprintf("%s  %d/%d",
				summary.Level.DisplayName(), summary.CompletedCount, summary.TotalCount)
			if summary.Locked {
				fmt.Println(theme.Locked.Render(header + "  🔒"))
			} else {
				fmt.Println(theme.Title.Render(header))
			}

			for _, lesson := range cat.LessonsByLevel(summary.Level) {
				status := statuses[lesson.ID]
				line := fmt.Sprintf("  %s %-28s %s", status.Icon(), lesson.Title, theme.Subtitle.Render(lesson.ID))
				switch status {
				case journey.StatusCompleted:
					fmt.Println(theme.Completed.Render(line))
				case journey.StatusCurrent:
					fmt.Println(theme.Current.Render(line))
				case journey.StatusAvailable:
					fmt.Println(theme.Available.Render(line))
				default:
					fmt.Println(theme.Locked.Render(line))
				}
			}
			fmt.Println()
		}

		return nil
	},
}

var journeyCompleteCmd = &cobra.Command{
	Use:   "complete <lesson-id>",
	Short: "Mark a lesson as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lessonID := args[0]
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

		if state.Completed(lessonID) {
			fmt.Println(theme.Hint.Render("Already completed — nothing to do."))
			return nil
		}

		next, err := journey.MarkComplete(cat, state, lessonID, time.Now())
		if err != nil {
			var unknown *journey.ErrUnknownLesson
			if errors.As(err, &unknown) {
				return fmt.Errorf("no lesson with ID %q — run 'platewise journey' to list lessons", lessonID)
			}
			return fmt.Errorf("mark complete: %w", err)
		}

		if err := s.JourneyRepo().Save(ctx, defaultUserID, next); err != nil {
			return fmt.Errorf("save journey: %w", err)
		}

		lesson, _ := cat.LessonByID(lessonID)
		event := store.CompletionEventData{
			UserID:   defaultUserID,
			LessonID: lessonID,
			Level:    string(lesson.Level),
		}
		if err := s.EventRepo().AppendCompletion(ctx, event); err != nil {
			return fmt.Errorf("record completion: %w", err)
		}

		fmt.Println(theme.Completed.Render("✅ " + lesson.Title + " completed!"))

		// Celebrate a freshly unlocked level.
		before := unlockedCount(cat, state)
		after := unlockedCount(cat, next)
		if after > before {
			fmt.Println(theme.Title.Render("🎉 " + next.CurrentLevel.DisplayName() + " unlocked!"))
		}

		return nil
	},
}

// loadOrNewState loads the journey state, returning a fresh one for
// first-time users.
func loadOrNewState(ctx context.Context, repo store.JourneyRepo) (journey.State, error) {
	state, err := repo.Load(ctx, defaultUserID)
	if err != nil {
		return journey.State{}, fmt.Errorf("load journey: %w", err)
	}
	if state == nil {
		return journey.NewState(), nil
	}
	return *state, nil
}

func unlockedCount(cat *catalog.Catalog, state journey.State) int {
	n := 0
	for _, summary := range journey.Summaries(cat, state) {
		if !summary.Locked {
			n++
		}
	}
	return n
}

func init() {
	journeyCmd.AddCommand(journeyCompleteCmd)
}

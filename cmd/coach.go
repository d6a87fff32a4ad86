package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kavery/platewise/internal/catalog"
	"github.com/kavery/platewise/internal/coach"
	"github.com/kavery/platewise/internal/llm"
	"github.com/kavery/platewise/internal/ui/theme"
	"github.com/spf13/cobra"
)

var coachCmd = &cobra.Command{
	Use:   "coach [question]",
	Short: "Ask the nutrition coach a question",
	Long:  "Ask a one-off question, or start an interactive session by passing no arguments.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.New()

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		svc := coach.NewService(provider, cat, coach.DefaultConfig())

		// One-shot mode.
		if len(args) > 0 {
			question := strings.Join(args, " ")
			reply, err := svc.Ask(ctx, question, nil)
			if err != nil {
				return err
			}
			fmt.Println(theme.Body.Render(reply.Answer))
			return nil
		}

		// Interactive mode.
		fmt.Println(theme.Title.Render("Platewise coach"))
		fmt.Println(theme.Hint.Render("Ask anything about eating well. Empty line to quit."))
		fmt.Println()

		var history []coach.Turn
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print(theme.Current.Render("you> "))
			if !scanner.Scan() {
				break
			}
			question := strings.TrimSpace(scanner.Text())
			if question == "" {
				break
			}

			reply, err := svc.Ask(ctx, question, history)
			if err != nil {
				fmt.Fprintln(os.Stderr, theme.Oops.Render("coach error: "+err.Error()))
				continue
			}

			fmt.Println(theme.Body.Render(reply.Answer))
			fmt.Println()
			history = append(history, coach.Turn{Question: question, Answer: reply.Answer})
		}
		return scanner.Err()
	},
}

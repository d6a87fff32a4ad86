package cmd

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/kavery/platewise/internal/catalog"
	"github.com/kavery/platewise/internal/llm"
	"github.com/kavery/platewise/internal/platecheck"
	"github.com/kavery/platewise/internal/ui/theme"
	"github.com/spf13/cobra"
)

// maxPlatePhotoBytes caps uploads; vision APIs reject much larger payloads anyway.
const maxPlatePhotoBytes = 10 << 20

var plateCmd = &cobra.Command{
	Use:   "plate <photo>",
	Short: "Check a photo of your plate",
	Long:  "Send a meal photo to the vision model and get a reaction plus one suggestion.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, err := loadPlatePhoto(args[0])
		if err != nil {
			return err
		}

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

		if lines := cat.LoadingLines(); len(lines) > 0 {
			fmt.Println(theme.Hint.Render(lines[rand.IntN(len(lines))]))
		}

		svc := platecheck.NewService(provider, cat, s.EventRepo(), platecheck.DefaultServiceConfig())
		result, err := svc.Check(ctx, defaultUserID, *img)
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(reactionStyle(result.Reaction.Type).Render(result.Reaction.Text))
		fmt.Printf("%s protein   %s plants\n",
			checkMark(result.Analysis.HasProtein), checkMark(result.Analysis.HasPlants))
		if result.Suggestion != "" {
			fmt.Println(theme.Body.Render(result.Suggestion))
		}

		return nil
	},
}

// loadPlatePhoto reads an image file and sniffs its media type.
func loadPlatePhoto(path string) (*llm.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("photo %s is empty", path)
	}
	if len(data) > maxPlatePhotoBytes {
		return nil, fmt.Errorf("photo %s is too large (max 10 MB)", path)
	}

	mediaType := http.DetectContentType(data)
	if !strings.HasPrefix(mediaType, "image/") {
		return nil, fmt.Errorf("%s doesn't look like an image (detected %s)", path, mediaType)
	}

	return &llm.Image{MediaType: mediaType, Data: data}, nil
}

func reactionStyle(t catalog.ReactionType) lipgloss.Style {
	switch t {
	case catalog.ReactionPerfect:
		return theme.Perfect
	case catalog.ReactionMeh:
		return theme.Meh
	default:
		return theme.Oops
	}
}

func checkMark(ok bool) string {
	if ok {
		return theme.Completed.Render("✓")
	}
	return theme.Oops.Render("✗")
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kozaktomas/content-planner/internal/ai"
	"github.com/kozaktomas/content-planner/internal/config"
	"github.com/kozaktomas/content-planner/internal/constants"
	"github.com/kozaktomas/content-planner/internal/planner"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a content plan from the terminal",
	Long: `Generate one or more content plans without starting the web UI.
Each requested plan kind (ideas, calendar, strategy) is generated
separately and written to a file in the output directory.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("niche", "", "Niche or topic to plan content for (required)")
	generateCmd.Flags().String("audience", "", "Target audience description")
	generateCmd.Flags().String("timeframe", "week", "Planning timeframe: week, month, quarter")
	generateCmd.Flags().StringSlice("kind", []string{"ideas"}, "Plan kinds to generate: ideas, calendar, strategy")
	generateCmd.Flags().StringSlice("format", nil, "Preferred content formats (e.g. video, newsletter)")
	generateCmd.Flags().String("tone", "", "Tone of voice for the generated plan")
	generateCmd.Flags().StringSlice("keyword", nil, "Keywords to work into the plan")
	generateCmd.Flags().String("language", "", "Output language (defaults to configured language)")
	generateCmd.Flags().Int("length", 0, "Desired plan length in words (0 = default)")
	generateCmd.Flags().String("provider", "", "AI provider to use: gemini, openai (defaults to configured provider)")
	generateCmd.Flags().String("output", ".", "Directory to write plan files into")
	generateCmd.Flags().String("export", "txt", "Export format: txt, csv, json")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	niche := mustGetString(cmd, "niche")
	if niche == "" {
		return errors.New("--niche is required")
	}

	kinds := mustGetStringSlice(cmd, "kind")
	exportFormat := mustGetString(cmd, "export")
	outputDir := mustGetString(cmd, "output")

	switch exportFormat {
	case "txt", "csv", "json":
	default:
		return fmt.Errorf("unsupported export format: %s", exportFormat)
	}

	providerName := mustGetString(cmd, "provider")
	if providerName == "" {
		providerName = cfg.Planner.DefaultProvider
	}
	provider, err := createProvider(cfg, providerName)
	if err != nil {
		return err
	}

	language := mustGetString(cmd, "language")
	if language == "" {
		language = cfg.Planner.Language
	}

	base := planner.PlanningRequest{
		Niche:       niche,
		Audience:    mustGetString(cmd, "audience"),
		Timeframe:   planner.Timeframe(mustGetString(cmd, "timeframe")),
		Formats:     mustGetStringSlice(cmd, "format"),
		Tone:        mustGetString(cmd, "tone"),
		Keywords:    mustGetStringSlice(cmd, "keyword"),
		Language:    language,
		LengthWords: mustGetInt(cmd, "length"),
	}

	bar := progressbar.NewOptions(len(kinds),
		progressbar.OptionSetDescription("Generating plans"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionFullWidth(),
	)

	settings := cfg.GetModelSettings(modelForProvider(providerName))
	opts := ai.GenerateOptions{
		Temperature:     settings.Temperature,
		MaxOutputTokens: settings.MaxOutputTokens,
	}

	var written []string
	for _, kindName := range kinds {
		kind, err := planner.ParsePlanKind(kindName)
		if err != nil {
			return err
		}

		req := base
		req.Kind = kind

		prompt, err := planner.BuildPrompt(req)
		if err != nil {
			return err
		}

		rawText, err := ai.GenerateWithRetry(cmd.Context(), provider, prompt, opts)
		if err != nil {
			return fmt.Errorf("generating %s plan: %w", kind, err)
		}

		entry := &planner.HistoryEntry{
			ID:        uuid.New().String(),
			CreatedAt: time.Now(),
			Provider:  provider.Name(),
			Request:   req.Normalize(),
			Prompt:    prompt,
			Content:   planner.Format(rawText),
		}

		path, err := writePlanFile(outputDir, entry, string(kind), exportFormat)
		if err != nil {
			return err
		}
		written = append(written, path)

		bar.Add(1)
	}
	fmt.Println()

	for _, path := range written {
		fmt.Printf("Wrote %s\n", path)
	}

	usage := provider.GetUsage()
	fmt.Printf("Tokens: %d in / %d out", usage.InputTokens, usage.OutputTokens)
	if usage.TotalCost > 0 {
		fmt.Printf(" ($%.4f)", usage.TotalCost)
	}
	fmt.Println()

	return nil
}

// writePlanFile exports a single entry to the output directory. The kind is
// folded into the slug so multiple kinds for one niche don't collide.
func writePlanFile(dir string, entry *planner.HistoryEntry, kind, format string) (string, error) {
	var data []byte
	var err error

	switch format {
	case "txt":
		data = planner.ExportText(entry.Content)
	case "csv":
		data, err = planner.ExportCSV(entry.Content)
	case "json":
		data, err = planner.ExportJSON(entry)
	}
	if err != nil {
		return "", fmt.Errorf("exporting %s plan: %w", kind, err)
	}

	filename := planner.ExportFilename(entry.Request.Niche+" "+kind, format)
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// createProvider builds an AI provider from configuration.
func createProvider(cfg *config.Config, name string) (ai.Provider, error) {
	switch name {
	case constants.ProviderGemini:
		if cfg.Gemini.APIKey == "" {
			return nil, errors.New("GOOGLE_API_KEY environment variable is required")
		}
		settings := cfg.GetModelSettings(ai.GeminiModel)
		return ai.NewGeminiProvider(context.Background(), cfg.Gemini.APIKey, ai.RequestPricing(settings.Pricing))
	case constants.ProviderOpenAI:
		if cfg.OpenAI.Token == "" {
			return nil, errors.New("OPENAI_TOKEN environment variable is required")
		}
		settings := cfg.GetModelSettings(ai.OpenAIModel)
		return ai.NewOpenAIProvider(cfg.OpenAI.Token, ai.RequestPricing(settings.Pricing))
	default:
		return nil, fmt.Errorf("unknown provider: %s", name)
	}
}

func modelForProvider(name string) string {
	if name == constants.ProviderOpenAI {
		return ai.OpenAIModel
	}
	return ai.GeminiModel
}

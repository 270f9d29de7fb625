package cmd

import (
	"fmt"
	"os"

	"github.com/rver/flashdeck/internal/cardgen"
	"github.com/rver/flashdeck/internal/config"
	"github.com/rver/flashdeck/internal/deck"
	"github.com/rver/flashdeck/internal/llm"
	"github.com/rver/flashdeck/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate flashcards for a category with an LLM",
	Long: `Generate asks the configured LLM provider for a batch of flashcards in the
given category and adds them to the collection. Titles already present in the
category are sent along so the model avoids duplicates.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("category", "", "Category to generate cards for (required)")
	generateCmd.Flags().Int("count", 5, "Number of cards to request")
	generateCmd.Flags().String("provider", "", "LLM provider: anthropic, openai, gemini, or mock")
	generateCmd.Flags().Bool("dry-run", false, "Print generated cards without saving them")
	_ = generateCmd.MarkFlagRequired("category")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	categoryVal, _ := cmd.Flags().GetString("category")
	count, _ := cmd.Flags().GetInt("count")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	category := deck.CapitalizeCategory(categoryVal)

	fileCfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	llmCfg := resolveLLMConfig(cmd, fileCfg)
	if err := llmCfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Set FLASHDECK_LLM_PROVIDER and the matching API key env var.")
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	log, closeLog := openLogger(dbPath)
	defer closeLog()

	provider, err := llm.NewProvider(ctx, llmCfg, log)
	if err != nil {
		return fmt.Errorf("create LLM provider: %w", err)
	}

	cards := deck.NewStore(st, log)
	existing := cards.CardsIn(category)
	titles := make([]string, 0, len(existing))
	for _, c := range existing {
		titles = append(titles, c.Title)
	}

	gen := cardgen.New(provider, cardgen.DefaultConfig())
	drafts, err := gen.Generate(ctx, cardgen.GenerateInput{
		Category:       category,
		Count:          count,
		ExistingTitles: titles,
	})
	if err != nil {
		return fmt.Errorf("generate cards: %w", err)
	}

	for _, d := range drafts {
		fmt.Printf("  %s  →  %s\n", d.Title, d.Answer)
		if dryRun {
			continue
		}
		if _, err := cards.Add(d.Title, d.Answer, category); err != nil {
			fmt.Fprintf(os.Stderr, "skipping %q: %v\n", d.Title, err)
		}
	}
	if dryRun {
		fmt.Printf("Generated %d cards (not saved).\n", len(drafts))
	} else {
		fmt.Printf("Added %d cards to %s.\n", len(drafts), category)
	}
	return nil
}

// resolveLLMConfig layers provider selection: --provider flag, then env vars,
// then the config file, then discovery from standard API key env vars.
func resolveLLMConfig(cmd *cobra.Command, fileCfg *config.Config) llm.Config {
	cfg := llm.ConfigFromEnv()

	if os.Getenv("FLASHDECK_LLM_PROVIDER") == "" && fileCfg.LLM.Provider != "" {
		cfg.Provider = fileCfg.LLM.Provider
	}
	if fileCfg.LLM.Model != "" {
		applyModel(&cfg, cfg.Provider, fileCfg.LLM.Model)
	}
	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		cfg.Provider = p
	}

	if cfg.Validate() != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			return discovered
		}
	}
	return cfg
}

func applyModel(cfg *llm.Config, provider, model string) {
	switch provider {
	case "anthropic":
		cfg.Anthropic.Model = model
	case "openai":
		cfg.OpenAI.Model = model
	case "gemini":
		cfg.Gemini.Model = model
	}
}

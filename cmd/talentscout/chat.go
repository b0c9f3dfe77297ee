package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talentscout/internal/config"
	"github.com/jonathan/talentscout/internal/export"
	"github.com/jonathan/talentscout/internal/llm"
	"github.com/jonathan/talentscout/internal/questions"
	"github.com/jonathan/talentscout/internal/report"
	"github.com/jonathan/talentscout/internal/types"
	"github.com/jonathan/talentscout/internal/wizard"
)

var (
	chatConfigPath string
	chatAPIKey     string
	chatDataDir    string
	chatVerbose    bool
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run an interactive screening interview in the terminal",
	Long: `Start a terminal conversation that walks a candidate through the
screening stages and exports the completed record. Without an API key the
technical questions come from the built-in question bank.`,
	RunE: runChat,
}

func init() {
	chatCmd.Flags().StringVar(&chatConfigPath, "config", "", "Path to JSON config file")
	chatCmd.Flags().StringVar(&chatAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	chatCmd.Flags().StringVar(&chatDataDir, "data-dir", "", "Directory for exported candidate files")
	chatCmd.Flags().BoolVar(&chatVerbose, "verbose", false, "Print progress details after each turn")
	rootCmd.AddCommand(chatCmd)
}

// resolveConfig merges CLI flags over the config file over environment
// variables over built-in defaults.
func resolveConfig(configPath, apiKey, dataDir string, verbose bool) (config.Config, error) {
	cfg := config.Config{APIKey: apiKey, DataDir: dataDir, Verbose: verbose}

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		cfg.Verbose = cfg.Verbose || fileCfg.Verbose
	}

	cfg = cfg.MergeWithDefaults(config.FromEnv())
	cfg = cfg.MergeWithDefaults(config.Config{
		DataDir: config.DefaultDataDir,
		DBPath:  config.DefaultDBPath,
		Port:    config.DefaultPort,
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newGenerator builds the question generator for the resolved config:
// a cached LLM generator when an API key is available, the static bank
// otherwise. The returned closer releases the LLM client, if any.
func newGenerator(ctx context.Context, cfg config.Config) (questions.Generator, func(), error) {
	if cfg.APIKey == "" {
		fmt.Fprintln(os.Stderr, "No API key configured; using the built-in question bank.")
		return questions.NewStatic(), func() {}, nil
	}

	client, err := llm.NewClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	generator := questions.NewCached(
		questions.NewLLMGenerator(client, cfg.ParsedQuestionTimeout()),
		questions.DefaultCacheTTL,
	)
	return generator, func() { _ = client.Close() }, nil
}

func runChat(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(chatConfigPath, chatAPIKey, chatDataDir, chatVerbose)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	generator, closeGenerator, err := newGenerator(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeGenerator()

	driver := wizard.NewDriver(generator)
	state := types.NewSessionState()
	printer := report.NewPrinter(os.Stdout)

	fmt.Println(wizard.Welcome)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		input := scanner.Text()
		if input == "" {
			continue
		}

		wasDone := state.Done()
		var reply string
		reply, state = driver.Process(ctx, input, state)
		fmt.Println("\n" + reply)

		if cfg.Verbose {
			printer.PrintProgress(state)
			if state.Stage == types.StageTechnicalQuestions {
				printer.PrintQuestions(state.Record.TechnicalQuestions)
			}
		}

		if state.Done() && !wasDone {
			exportRecord(ctx, cfg.DataDir, &state.Record)
		}
		if wizard.IsExitCommand(input) {
			break
		}
	}
	return scanner.Err()
}

// exportRecord writes the submission files for a completed interview.
// Failures are reported but do not abort the conversation.
func exportRecord(ctx context.Context, dataDir string, record *types.CandidateRecord) {
	result, err := export.NewExporter(dataDir).Export(ctx, record)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not export candidate data: %v\n", err)
		return
	}
	fmt.Printf("\nCandidate data saved to:\n  %s\n  %s\n", result.JSONPath, result.CSVPath)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ops_prompt_library/config"
	"ops_prompt_library/generator"
	"ops_prompt_library/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "promptlib",
		Short:         "Generate operations prompt-template libraries with a hosted LLM",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (default: ./configs/config.yaml or ./config.yaml)")

	root.AddCommand(
		newServeCmd(&configPath),
		newGenerateCmd(&configPath),
		newCatalogCmd(),
	)
	return root
}

// app bundles what both serve and generate need.
type app struct {
	cfg   *config.Config
	log   *logger.Logger
	agent *generator.Agent
}

func setup(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, err
	}
	llm, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}
	agent, err := generator.NewAgent(llm,
		generator.WithProvider(cfg.LLM.Provider),
		generator.WithTimeout(cfg.LLM.Timeout),
		generator.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: log, agent: agent}, nil
}

func buildLLM(cfg *config.Config) (generator.LLMClient, error) {
	return generator.NewLLM(&generator.LLMSettings{
		Provider: cfg.LLM.Provider,
		Model:    cfg.LLM.Model,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
		Timeout:  cfg.LLM.Timeout,
	})
}

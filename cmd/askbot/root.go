package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/askbot/internal/config"
	"github.com/kailas-cloud/askbot/internal/version"
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	configFile string
	envFile    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   version.Name,
		Short: "Rule-driven question answering bot",
		Long: `askbot answers free-text questions: it converts units, looks up encyclopedia
summaries, and replies from curated support and small-talk intents.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version.Version, version.Commit, version.Date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "",
		"config file path (default: config/<ENV>.yaml)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before the config")

	cmd.AddCommand(
		newServeCmd(opts),
		newAskCmd(opts),
		newQuestionsCmd(opts),
	)
	return cmd
}

// loadConfig resolves the environment file and the YAML config selected by the flags.
func (o *rootOptions) loadConfig() (config.Config, string, error) {
	if err := config.LoadDotEnv(o.envFile); err != nil {
		return config.Config{}, "", fmt.Errorf("load env file: %w", err)
	}

	env := config.GetEnv()
	if o.configFile != "" {
		cfg, err := config.LoadFile(o.configFile)
		return cfg, env, err //nolint:wrapcheck // LoadFile already names the file
	}
	cfg, err := config.Load(env)
	return cfg, env, err //nolint:wrapcheck // Load already names the file
}

// Package cli wires the command-line surface: the interactive shell, the
// one-shot prompt path, and the jobs listing.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/s22625/agentcli/internal/config"
	"github.com/s22625/agentcli/internal/logging"
	"github.com/s22625/agentcli/internal/shell"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
)

// GlobalOptions holds options shared across all commands.
type GlobalOptions struct {
	ConfigPath string
	LogLevel   string
}

var globalOpts = &GlobalOptions{}

type rootOptions struct {
	Prompt       string
	SourceBranch string
	TargetBranch string
	BranchPrefix string
}

var rootOpts = &rootOptions{}

var rootCmd = &cobra.Command{
	Use:   "agentcli",
	Short: "Interactive CLI for remote agent batch execution",
	Long: `agentcli collects a task prompt, packages it with agent execution
parameters from agent_config.yaml, submits it to a remote execution
service, and polls until the job completes or fails.

Without --prompt it starts an interactive shell.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoot(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalOpts.ConfigPath, "config", config.DefaultConfigFile, "Path to the agent configuration YAML file")
	rootCmd.PersistentFlags().StringVar(&globalOpts.LogLevel, "log-level", "warn", "Log level (error|warn|info|debug)")

	rootCmd.Flags().StringVar(&rootOpts.Prompt, "prompt", "", "Directly execute with this prompt instead of entering interactive mode")
	rootCmd.Flags().StringVar(&rootOpts.SourceBranch, "source-branch", "", "Override the configured source branch")
	rootCmd.Flags().StringVar(&rootOpts.TargetBranch, "target-branch", "", "Override the configured target branch")
	rootCmd.Flags().StringVar(&rootOpts.BranchPrefix, "branch-prefix", "", "Override the configured branch prefix")

	rootCmd.AddCommand(newJobsCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitError)
	}
}

// newLogger builds the session logger. Diagnostics must never take the
// shell down, so a broken log setup degrades to a no-op logger.
func newLogger() *zap.Logger {
	log, err := logging.New(globalOpts.LogLevel, "")
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// loadConfig loads the config file, reporting a degraded load on stderr.
func loadConfig(log *zap.Logger) *config.Config {
	cfg, warn := config.Load(globalOpts.ConfigPath)
	if warn != nil {
		fmt.Fprintln(os.Stderr, "Warning: "+warn.Error())
		log.Warn("config load degraded", zap.Error(warn))
	}
	return cfg
}

func runRoot(ctx context.Context) error {
	log := newLogger()
	defer log.Sync()

	cfg := loadConfig(log)
	settings := config.Resolve(cfg, config.Overrides{
		SourceBranch: rootOpts.SourceBranch,
		TargetBranch: rootOpts.TargetBranch,
		BranchPrefix: rootOpts.BranchPrefix,
	})

	sh := shell.New(cfg, settings, log)

	if rootOpts.Prompt != "" {
		return sh.RunOnce(ctx, rootOpts.Prompt)
	}
	return sh.Run(ctx)
}

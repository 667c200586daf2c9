package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s22625/agentcli/internal/config"
	"github.com/s22625/agentcli/internal/monitor"
	"github.com/s22625/agentcli/internal/remote"
	"github.com/s22625/agentcli/internal/shell"
)

type jobsOptions struct {
	Watch bool
	JSON  bool
}

func newJobsCmd() *cobra.Command {
	opts := &jobsOptions{}

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List jobs on the configured remote",
		Long: `Fetch the remote's job listing, most recent first.

With --watch, opens a full-screen dashboard that refreshes automatically.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJobs(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Open the live jobs dashboard")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

func runJobs(cmd *cobra.Command, opts *jobsOptions) error {
	log := newLogger()
	defer log.Sync()

	cfg := loadConfig(log)
	rm, err := config.PickRemote(cfg)
	if err != nil {
		return err
	}

	client := remote.NewClient(rm, log)

	if opts.Watch {
		return monitor.Run(client)
	}

	jobs, err := client.Jobs(cmd.Context())
	if err != nil {
		return fmt.Errorf("fetching jobs: %w", err)
	}

	if opts.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(jobs)
	}

	fmt.Print(shell.RenderJobs(shell.DefaultStyles(), jobs))
	return nil
}

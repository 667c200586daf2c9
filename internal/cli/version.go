package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s22625/agentcli/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the agentcli version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("agentcli " + version.Version)
		},
	}
}

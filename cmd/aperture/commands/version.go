package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/aperture"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "aperture version %s\n", aperture.Version)
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agiangrant/aperture"
)

func newLibNameCmd() *cobra.Command {
	var platform string

	cmd := &cobra.Command{
		Use:   "libname",
		Short: "Print the steam_api library name for a platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := aperture.LibraryName(aperture.Platform(platform))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}

	cmd.Flags().StringVar(&platform, "platform", string(aperture.CurrentPlatform()), "windows, linux or darwin")
	return cmd
}

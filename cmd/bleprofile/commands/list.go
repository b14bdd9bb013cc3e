package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the stored profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles := appCtx.Profiles.Load()
			if len(profiles) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No profiles in %s\n", appCtx.Profiles.Path())
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tADDRESS\tSERVICE\tCHARACTERISTIC\tPARSER")
			for _, p := range profiles {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
					p.Name, p.AddressHex, p.ServiceUUID, p.CharacteristicUUID, p.ParserType)
			}
			return tw.Flush()
		},
	}
}

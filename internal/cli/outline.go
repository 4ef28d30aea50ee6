package cli

import (
	"github.com/spf13/cobra"
)

var outlineCmd = &cobra.Command{
	Use:   "outline",
	Short: "Print the table of contents without writing it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline("")
		if err != nil {
			return err
		}
		res, err := p.Build(cmd.Context())
		if err != nil {
			return err
		}
		FormatOutline(cmd.OutOrStdout(), res.Entries)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(outlineCmd)
}

package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build and write toc.html",
	Long:  `Run the full pipeline and write toc.html into the output directory.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline(flagOut)
		if err != nil {
			return err
		}
		res, path, err := p.Run(cmd.Context())
		if err != nil {
			return err
		}
		FormatSummary(cmd.OutOrStdout(), res, path)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&flagOut, "out", "o", os.Getenv("TOCGEN_OUTPUT_DIR"), "Output directory (default: book output)")
	rootCmd.AddCommand(buildCmd)
}

package commands

import (
	"github.com/spf13/cobra"
	"uniseq/internal/app"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <accession>",
		Short: "Print a metadata summary for one accession",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseURL, _ := cmd.Flags().GetString("base-url")
			cacheDir, _ := cmd.Flags().GetString("cache-dir")

			return c.app.Info(cmd.Context(), args[0], app.Options{
				BaseURL:  baseURL,
				CacheDir: cacheDir,
				Out:      cmd.OutOrStdout(),
			})
		},
	}
	cmd.Flags().String("base-url", "", "Override the remote base URL")
	cmd.Flags().String("cache-dir", "", "Cache fetched records under this directory")
	return cmd
}

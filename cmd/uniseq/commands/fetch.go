package commands

import (
	"github.com/spf13/cobra"
	"uniseq/internal/app"
)

func (c *CLI) newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch [accessions...]",
		Short: "Fetch sequences and print them as FASTA",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			baseURL, _ := cmd.Flags().GetString("base-url")
			cacheDir, _ := cmd.Flags().GetString("cache-dir")

			return c.app.Fetch(cmd.Context(), args, app.Options{
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

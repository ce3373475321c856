// SPDX-License-Identifier: MIT

package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transportation/generator"
	"github.com/katalvlaran/transportation/transport"
)

func (c *CLI) generateCommand() *cobra.Command {
	var (
		n, m   int
		output string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random balanced problem file",
		Long: `Generate a problem whose costs and hidden allocation are uniform in [1, 100).
Supply and demand are the row and column sums of the hidden allocation, so the
problem is always balanced. The same --seed always yields the same file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			tbl, err := generator.Generate[int64](n, m, generator.WithSeed(c.cfg.Seed))
			if err != nil {
				return err
			}

			if output == "" {
				return transport.Format(c.out, tbl)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := transport.Format(f, tbl); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			logger.Infof("Wrote %dx%d problem to %s", n, m, output)
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "supplies", "n", 10, "number of supply rows")
	cmd.Flags().IntVarP(&m, "demands", "m", 10, "number of demand columns")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

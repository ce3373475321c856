// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/transportation/generator"
)

func (c *CLI) benchCommand() *cobra.Command {
	var problems, n, m int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the North-West-Corner step on generated problems",
		Long: `Generate --problems instances of size n×m (instance k uses a seed derived
from --seed and k) and time NorthWestCorner on each. Generation is not timed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("problems") {
				c.cfg.Bench.Problems = problems
			}
			if cmd.Flags().Changed("supplies") {
				c.cfg.Bench.N = n
			}
			if cmd.Flags().Changed("demands") {
				c.cfg.Bench.M = m
			}
			if err := c.cfg.Validate(); err != nil {
				return err
			}
			bc := c.cfg.Bench
			runID := uuid.NewString()[:8]
			logger := loggerFromContext(cmd.Context()).With("run", runID)
			logger.Info("bench started", "problems", bc.Problems, "n", bc.N, "m", bc.M, "seed", c.cfg.Seed)

			var total, worst time.Duration
			for k := 0; k < bc.Problems; k++ {
				tbl, err := generator.Generate[uint32](bc.N, bc.M,
					generator.WithSeed(generator.InstanceSeed(c.cfg.Seed, k)))
				if err != nil {
					return err
				}
				start := time.Now()
				tbl.NorthWestCorner()
				elapsed := time.Since(start)
				total += elapsed
				worst = max(worst, elapsed)
				logger.Debug("problem", "k", k, "elapsed", elapsed)
			}

			c.ui.printTitle(c.out, fmt.Sprintf("North-West-Corner on %d problems of %dx%d", bc.Problems, bc.N, bc.M))
			c.ui.printKeyValue(c.out, "run", runID)
			c.ui.printKeyValue(c.out, "average", (total / time.Duration(bc.Problems)).String())
			c.ui.printKeyValue(c.out, "worst", worst.String())
			return nil
		},
	}
	cmd.Flags().IntVar(&problems, "problems", 0, "number of problems (default from config: 100)")
	cmd.Flags().IntVarP(&n, "supplies", "n", 0, "supply rows (default from config: 1000)")
	cmd.Flags().IntVarP(&m, "demands", "m", 0, "demand columns (default from config: 1000)")

	return cmd
}

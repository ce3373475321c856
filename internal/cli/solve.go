// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transportation/internal/config"
	"github.com/katalvlaran/transportation/lpref"
	"github.com/katalvlaran/transportation/matrix"
	"github.com/katalvlaran/transportation/transport"
)

func (c *CLI) solveCommand() *cobra.Command {
	var (
		compareLP bool
		valueType string
	)
	cmd := &cobra.Command{
		Use:   "solve <problem-file>",
		Short: "Build the initial plan and report potentials and marginal costs",
		Long: `Load a problem file, fill the North-West-Corner plan, repair the plan graph
into a spanning tree with the cheapest unused cells, and report the dual
potentials, the marginal cost matrix and the most improving cell.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("lp") {
				c.cfg.CompareLP = compareLP
			}
			if cmd.Flags().Changed("type") {
				c.cfg.ValueType = valueType
				if err := c.cfg.Validate(); err != nil {
					return err
				}
			}
			return c.runSolve(cmd.Context(), args[0])
		},
	}
	cmd.Flags().BoolVar(&compareLP, "lp", false, "also report the LP optimum and the gap")
	cmd.Flags().StringVar(&valueType, "type", "", "scalar type: int64, uint32 or float64")

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, path string) error {
	switch c.cfg.ValueType {
	case config.ValueUint32:
		return solveFile[int64, uint32](ctx, c, path)
	case config.ValueFloat64:
		return solveFile[float64, float64](ctx, c, path)
	default:
		return solveFile[int64, int64](ctx, c, path)
	}
}

func solveFile[V matrix.Signed, T matrix.Number](ctx context.Context, c *CLI, path string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	tbl, err := transport.LoadFile[T](path)
	if err != nil {
		return err
	}
	logger.Debug("loaded problem", "path", path, "n", tbl.N(), "m", tbl.M())

	var opts []transport.Option
	if c.cfg.Seed != 0 {
		opts = append(opts, transport.WithSeed(c.cfg.Seed))
	}
	if c.cfg.Reseed {
		opts = append(opts, transport.WithReseed())
	}
	rep, err := transport.Evaluate[V](tbl, opts...)
	if err != nil {
		return err
	}
	logger.Debug("spanning tree", "edges", rep.Tree.EdgeCount(), "added", rep.Added, "seed", rep.Tree.Seed())
	prog.done("Evaluated plan")

	printReport(c, tbl, rep)

	if !c.cfg.CompareLP {
		return nil
	}
	opt, _, err := lpref.OptimumOf(tbl)
	if err != nil {
		return fmt.Errorf("lp reference: %w", err)
	}
	c.ui.printKeyValue(c.out, "lp optimum", fmt.Sprint(opt))
	c.ui.printKeyValue(c.out, "gap", fmt.Sprintf("%.4f%%", 100*lpref.Gap(float64(rep.TotalCost), opt)))

	return nil
}

func printReport[V matrix.Signed, T matrix.Number](c *CLI, tbl *transport.Table[T], rep *transport.Report[V, T]) {
	rows := make([]string, tbl.N())
	for i := range rows {
		rows[i] = transport.SupplyLabel(i)
	}
	cols := make([]string, tbl.M())
	for j := range cols {
		cols[j] = transport.DemandLabel(j)
	}
	inTree := func(i, j int) bool {
		return rep.Tree.HasEdge(transport.SupplyLabel(i), transport.DemandLabel(j))
	}

	c.ui.printTitle(c.out, "Costs")
	c.ui.renderGrid(c.out, grid{
		rows:  rows,
		cols:  append(append([]string(nil), cols...), "supply"),
		cells: cellsWithColumn(tbl.Costs(), tbl.Supply()),
	})
	c.ui.printKeyValue(c.out, "demand", fmt.Sprint(tbl.Demand()))

	c.ui.printTitle(c.out, "Plan")
	c.ui.renderGrid(c.out, grid{rows: rows, cols: cols, cells: cells(rep.Plan), marked: inTree})
	c.ui.printKeyValue(c.out, "total cost", fmt.Sprint(rep.TotalCost))
	c.ui.printKeyValue(c.out, "repair edges", fmt.Sprint(rep.Added))
	c.ui.printKeyValue(c.out, "u", fmt.Sprint(rep.SupplyPotentials))
	c.ui.printKeyValue(c.out, "v", fmt.Sprint(rep.DemandPotentials))

	c.ui.printTitle(c.out, "Marginal costs")
	c.ui.renderGrid(c.out, grid{rows: rows, cols: cols, cells: cells(rep.Marginal), marked: func(i, j int) bool {
		return i == rep.MinRow && j == rep.MinCol
	}})
	cell := transport.SupplyLabel(rep.MinRow) + "-" + transport.DemandLabel(rep.MinCol)
	if rep.Optimal {
		c.ui.printSuccess(c.out, "plan is optimal (min marginal cost %v at %s)", rep.MinMarginal, cell)
		return
	}
	c.ui.printWarning(c.out, "plan can improve: min marginal cost %v at %s", rep.MinMarginal, cell)
}

// cells formats every matrix entry with fmt.Sprint.
func cells[T matrix.Number](m *matrix.Dense[T]) [][]string {
	out := make([][]string, m.Rows())
	for i := range out {
		out[i] = make([]string, m.Cols())
	}
	m.Do(func(i, j int, v T) bool {
		out[i][j] = fmt.Sprint(v)
		return true
	})

	return out
}

// cellsWithColumn appends extra[i] as a final column of row i.
func cellsWithColumn[T matrix.Number](m *matrix.Dense[T], extra []T) [][]string {
	out := cells(m)
	for i := range out {
		out[i] = append(out[i], fmt.Sprint(extra[i]))
	}

	return out
}

// Package transportation is a toolkit for the classical balanced
// transportation problem: n supply rows, m demand columns and a unit cost
// per cell.
//
// It builds one basic feasible solution and everything needed to judge it:
//
//	matrix/    generic dense Dense[T]: algebra, Min/IndexOf, partial-pivot Solve
//	graph/     generic undirected Graph[T]: connectivity, cycles, seeded k-edge augmentation
//	transport/ Table[T]: validation, North-West-Corner, plan graph, spanning-tree
//	           repair, dual potentials, marginal costs, problem file format
//	generator/ seeded random balanced instances
//	lpref/     LP optimum through gonum's simplex, for gap reporting
//
// Pipeline:
//
//	Parse / New → NorthWestCorner → Graph → SpanningTree → Potentials → MarginalCost
//
// transport.Evaluate runs the whole chain. The toolkit stops at the reduced
// cost matrix: the most negative cell is reported, never pivoted on.
//
// The command-line front end lives in cmd/transportation (solve, generate,
// bench); runnable walkthroughs are in examples/.
package transportation

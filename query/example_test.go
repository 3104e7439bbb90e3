package query_test

import (
	"fmt"

	"github.com/katalvlaran/tabstat/query"
	"github.com/katalvlaran/tabstat/table"
)

// ExampleSubsampleConds filters a two-column table by both columns at
// once and aggregates the survivors.
func ExampleSubsampleConds() {
	m := table.Table{
		table.NumberRow(1, 10),
		table.NumberRow(2, 20),
		table.NumberRow(3, 10),
		table.NumberRow(4, 30),
	}

	sub, _ := query.SubsampleConds(m, []query.Cond{
		{Field: table.At(1), Pred: query.AtLeast(2)},
		{Field: table.At(2), Pred: query.AtMost(20)},
	})
	mean, _ := query.Mean(sub, table.At(1))
	fmt.Println(len(sub), mean)
	// Output:
	// 2 2.5
}

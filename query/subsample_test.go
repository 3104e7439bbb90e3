package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tabstat/query"
	"github.com/katalvlaran/tabstat/table"
)

// TestSubsample_OrderPreserved verifies filtering keeps source row
// order and aliases, not copies, the kept rows.
func TestSubsample_OrderPreserved(t *testing.T) {
	m := table.Table{
		table.NumberRow(1, 100),
		table.NumberRow(-2, 200),
		table.NumberRow(3, 300),
		table.NumberRow(0, 400),
	}

	sub, err := query.Subsample(m, table.At(1), query.Positive())
	require.NoError(t, err)
	require.Len(t, sub, 2)
	assert.Equal(t, table.NumberRow(1, 100), sub[0])
	assert.Equal(t, table.NumberRow(3, 300), sub[1])
}

// TestSubsampleConds_AllMustHold verifies conjunction across an ordered
// condition list.
func TestSubsampleConds_AllMustHold(t *testing.T) {
	m := table.Table{
		table.NumberRow(1, 5),
		table.NumberRow(2, 50),
		table.NumberRow(-3, 5),
		table.NumberRow(4, 7),
	}

	sub, err := query.SubsampleConds(m, []query.Cond{
		{Field: table.At(1), Pred: query.Positive()},
		{Field: table.At(2), Pred: query.AtMost(10)},
	})
	require.NoError(t, err)
	require.Len(t, sub, 2)
	assert.Equal(t, table.NumberRow(1, 5), sub[0])
	assert.Equal(t, table.NumberRow(4, 7), sub[1])
}

// TestSubsampleConds_EmptyConditions verifies the degenerate AND over no
// conditions keeps every row.
func TestSubsampleConds_EmptyConditions(t *testing.T) {
	m := table.Table{table.NumberRow(1), table.NumberRow(2)}

	sub, err := query.SubsampleConds(m, nil)
	require.NoError(t, err)
	assert.Equal(t, m, sub)
}

// TestSubsampleNotNull verifies null-aware filtering inspects raw cells,
// so non-numeric strings still count as present.
func TestSubsampleNotNull(t *testing.T) {
	m := table.Table{
		{table.Number(1), table.Text("ok")},
		{table.Null, table.Text("gone")},
		{table.Number(3), table.Null},
		{table.Text("n/a"), table.Text("kept")},
	}

	sub, err := query.SubsampleNotNull(m, table.At(1), table.At(2))
	require.NoError(t, err)
	require.Len(t, sub, 2)
	assert.Equal(t, m[0], sub[0])
	assert.Equal(t, m[3], sub[1], "non-numeric strings are present, not null")
}

// TestNotNull exercises the cell-level predicate factory directly:
// Null is rejected, numbers and non-numeric strings are kept.
func TestNotNull(t *testing.T) {
	present := query.NotNull()

	assert.False(t, present(table.Null))
	assert.True(t, present(table.Number(0)))
	assert.True(t, present(table.Text("")))
	assert.True(t, present(table.Text("n/a")), "non-numeric text is present, not null")

	var zero table.Cell
	assert.False(t, present(zero), "the zero Cell is the Null sentinel")
}

// TestPredicates exercises each factory at its boundary.
func TestPredicates(t *testing.T) {
	assert.True(t, query.Positive()(0.1))
	assert.False(t, query.Positive()(0))

	assert.True(t, query.Zero()(0))
	assert.False(t, query.Zero()(-1))

	assert.True(t, query.AtMost(5)(5))
	assert.False(t, query.AtMost(5)(5.1))

	assert.True(t, query.AtLeast(5)(5))
	assert.False(t, query.AtLeast(5)(4.9))

	assert.True(t, query.NotEqual(7)(6))
	assert.False(t, query.NotEqual(7)(7))
}

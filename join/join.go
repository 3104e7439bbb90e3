package join

import "github.com/katalvlaran/tabstat/table"

// Tables inner-joins t and u on each side's first column and returns
// the concatenated match rows. Joining with an empty side yields an
// empty (nil) table, never an error. Emitted rows use fresh backing
// storage, so appending to them cannot clobber source rows.
func Tables(t, u table.Table) table.Table {
	var out table.Table
	for _, tr := range t {
		if len(tr) == 0 {
			continue
		}
		for _, ur := range u {
			if len(ur) == 0 || !tr[0].Equal(ur[0]) {
				continue
			}
			joined := make(table.Row, 0, len(tr)+len(ur))
			joined = append(joined, tr...)
			joined = append(joined, ur...)
			out = append(out, joined)
		}
	}
	return out
}

package export

import (
	"encoding/json"
	"io"

	"github.com/newtron-network/ios2xlsx/pkg/cli"
	"github.com/newtron-network/ios2xlsx/pkg/ifreport"
	"github.com/newtron-network/ios2xlsx/pkg/util"
)

// WriteJSON writes rows as an indented JSON array. Keys are the column
// names; empty rows produce "[]".
func WriteJSON(w io.Writer, rows []ifreport.MergedRow) error {
	if rows == nil {
		rows = []ifreport.MergedRow{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// WriteTable writes rows as an aligned text table. Empty cells print as "-".
func WriteTable(w io.Writer, rows []ifreport.MergedRow) error {
	t := cli.NewTableTo(w, ifreport.Columns...)
	for _, r := range rows {
		vals := r.Values()
		for i := range vals {
			vals[i] = util.ValueOrDash(vals[i])
		}
		t.Row(vals...)
	}
	return t.Flush()
}

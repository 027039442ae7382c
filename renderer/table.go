package renderer

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Table writes the accounts of the Report as a plain-text table.
func Table(w io.Writer, r *Report) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Client", "Available", "Held", "Total", "Locked"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, a := range r.Accounts {
		table.Append([]string{
			strconv.FormatUint(uint64(a.Client), 10),
			a.Available.String(),
			a.Held.String(),
			a.Total.String(),
			strconv.FormatBool(a.Locked),
		})
	}
	table.Render()
}

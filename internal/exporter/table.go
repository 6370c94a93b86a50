package exporter

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/go-gota/gota/dataframe"
)

// WriteTable prints df as a right-aligned text table with a leading row
// index column.
func WriteTable(w io.Writer, df dataframe.DataFrame) error {
	if df.Err != nil {
		return fmt.Errorf("write table: %w", df.Err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i, record := range df.Records() {
		index := ""
		if i > 0 {
			index = strconv.Itoa(i - 1)
		}
		cells := append([]string{index}, record...)
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t"); err != nil {
			return err
		}
	}
	return tw.Flush()
}

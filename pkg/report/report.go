// 27 april 2020
package report

import (
	"fmt"
	"io"

	. "github.com/andrew-torda/randfasta/pkg/seq/common"
	"github.com/andrew-torda/randfasta/pkg/seqstat"
)

// Print writes the summary for the user: where the sequence went, then
// the percentage of each base and the %CG, one decimal place each.
func Print(w io.Writer, fname string, st *seqstat.Stats) error {
	if _, err := fmt.Fprintf(w, "\nThe sequence was saved to the file %s\n", fname); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Sequence statistics:"); err != nil {
		return err
	}
	for i, c := range Alphabet {
		if _, err := fmt.Fprintf(w, "%c: %.1f%%\n", c, st.Percent[i]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%%CG: %.1f\n", st.CGPercent)
	return err
}

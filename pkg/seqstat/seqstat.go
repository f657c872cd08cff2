// 6 Apr 2020
// seqstat does the composition calculations on a raw sequence, before
// any name has been put into it.

package seqstat

import (
	"errors"
	"fmt"
	"math"

	"github.com/andrew-torda/matrix"
	. "github.com/andrew-torda/randfasta/pkg/seq/common"
)

const (
	badMap = math.MaxUint8 // marks a symbol as not in the alphabet
	// Counts are kept as float32 in the matrix. Blocks of this size
	// are small enough that every count is exact.
	blockLen = 1 << 20
)

// ErrZeroLength comes back if percentages are wanted for a sequence
// with nothing in it.
var ErrZeroLength = errors.New("sequence length is zero, cannot calculate percentages")

// mapping['C'] tells us the row used for C
var mapping [256]uint8

func init() {
	for i := range mapping {
		mapping[i] = badMap
	}
	for i, c := range Alphabet {
		mapping[c] = uint8(i)
	}
}

// Stats holds everything we calculate. Arrays are in alphabet order,
// A, C, G, T.
type Stats struct {
	Len       int           // length of the raw sequence
	Counts    [NSym]int     // occurrences of each base
	Percent   [NSym]float64 // 100 * count / Len
	CGATRatio float64       // 100 * (C+G) / (A+T), or 0 if there is no A or T
	CGPercent float64       // 100 * (C+G) / Len
}

// Count returns the number of times base c was seen. Anything not in the
// alphabet gives zero.
func (st *Stats) Count(c byte) int {
	if m := mapping[c]; m != badMap {
		return st.Counts[m]
	}
	return 0
}

// Pct returns the percentage of base c.
func (st *Stats) Pct(c byte) float64 {
	if m := mapping[c]; m != badMap {
		return st.Percent[m]
	}
	return 0
}

// tally counts how many of each base appear in each window of
// the sequence. counts.Mat looks like [NSym][number_of_windows].
// The last window may be short. An empty sequence gets one empty column.
func tally(s []byte, width int) *matrix.FMatrix2d {
	ncol := 1
	if len(s) > width {
		ncol = (len(s) + width - 1) / width
	}
	counts := matrix.NewFMatrix2d(NSym, ncol)
	for i, c := range s {
		if m := mapping[c]; m != badMap {
			counts.Mat[m][i/width] += 1
		}
	}
	return counts
}

// Calc counts the bases in raw and works out the percentages.
// The CG/AT ratio is protected from division by zero and is just zero
// if there are no A's or T's. The percentages are not protected.
// If raw is empty, the counts are filled in, but we return ErrZeroLength.
func Calc(raw []byte) (*Stats, error) {
	st := &Stats{Len: len(raw)}
	counts := tally(raw, blockLen)
	_, ncol := counts.Size()
	for irow := 0; irow < NSym; irow++ {
		for icol := 0; icol < ncol; icol++ {
			st.Counts[irow] += int(counts.Mat[irow][icol])
		}
	}

	at := st.Count('A') + st.Count('T')
	cg := st.Count('C') + st.Count('G')
	if at != 0 {
		st.CGATRatio = float64(cg) / float64(at) * 100
	}
	if st.Len == 0 {
		return st, ErrZeroLength
	}
	for i, n := range st.Counts {
		st.Percent[i] = float64(n) / float64(st.Len) * 100
	}
	st.CGPercent = float64(cg) / float64(st.Len) * 100
	return st, nil
}

// Windows counts bases in consecutive windows of width bases. The result
// has one row for each base, in alphabet order and one column per window.
func Windows(raw []byte, width int) (*matrix.FMatrix2d, error) {
	if width <= 0 {
		return nil, fmt.Errorf("window width must be positive, got %d", width)
	}
	if len(raw) == 0 {
		return nil, ErrZeroLength
	}
	return tally(raw, width), nil
}

// GCFrac takes the output of Windows and gives the fraction of C plus G
// in each window. Windows with no bases get zero.
func GCFrac(counts *matrix.FMatrix2d) []float32 {
	_, ncol := counts.Size()
	gc := make([]float32, ncol)
	c, g := mapping['C'], mapping['G']
	for icol := range gc {
		var total float32
		for irow := 0; irow < NSym; irow++ {
			total += counts.Mat[irow][icol]
		}
		if total != 0 {
			gc[icol] = (counts.Mat[c][icol] + counts.Mat[g][icol]) / total
		}
	}
	return gc
}

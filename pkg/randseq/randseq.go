// 31 July 2020

// Package randseq makes random DNA sequences and splices a name into them.
package randseq

import (
	"fmt"

	"github.com/andrew-torda/randfasta/pkg/randsrc"
	. "github.com/andrew-torda/randfasta/pkg/seq/common"
)

// Generate returns a byte slice with a random sequence of length seqlen.
// Each base is drawn independently from the alphabet. A length of zero
// or less gives an empty, non-nil sequence.
func Generate(seqlen int, src randsrc.Source) ([]byte, error) {
	if seqlen < 0 {
		seqlen = 0
	}
	ret := make([]byte, seqlen)
	for i := range ret {
		j, err := src.Intn(NSym)
		if err != nil {
			return nil, fmt.Errorf("base %d of %d: %w", i+1, seqlen, err)
		}
		ret[i] = Alphabet[j]
	}
	return ret, nil
}

// spliceIn puts name into s at pos, in a new slice. s is left alone.
func spliceIn(s []byte, name string, pos int) []byte {
	t := make([]byte, len(s)+len(name))
	copy(t, s[:pos])
	copy(t[pos:], name)
	copy(t[pos+len(name):], s[pos:])
	return t
}

// Insert picks a position from 0 to len(raw), both ends included, and
// returns a copy of raw with name spliced in there. The position is
// returned as well. raw itself is never touched, since statistics are
// calculated from it.
func Insert(raw []byte, name string, src randsrc.Source) (display []byte, pos int, err error) {
	if pos, err = src.Intn(len(raw) + 1); err != nil {
		return nil, 0, fmt.Errorf("choosing insert position: %w", err)
	}
	return spliceIn(raw, name, pos), pos, nil
}

// Remove undoes Insert. Given the display sequence, where the name went
// and how long it was, it hands back the original sequence.
func Remove(display []byte, pos, nameLen int) ([]byte, error) {
	if pos < 0 || nameLen < 0 || pos+nameLen > len(display) {
		const emsg = "cannot remove %d bytes at %d from sequence of length %d"
		return nil, fmt.Errorf(emsg, nameLen, pos, len(display))
	}
	t := make([]byte, 0, len(display)-nameLen)
	t = append(t, display[:pos]...)
	return append(t, display[pos+nameLen:]...), nil
}

// 29 Apr 2020

package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// Alphabet is the set of bases we generate and count, in the order
// they are always reported.
var Alphabet = [...]byte{'A', 'C', 'G', 'T'}

// NSym is the number of symbols in the alphabet
const NSym = len(Alphabet)

// FastaExt is appended to a sequence identifier to make a filename.
const FastaExt = ".fasta"

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", f_tmp.Name())
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}

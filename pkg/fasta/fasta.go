// 20 Dec 2017

// Package fasta writes a single sequence record in fasta format and can
// read one back. A record is always exactly two lines, a comment line
//     >id description
// and the sequence on one line, no matter how long it is.
package fasta

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	. "github.com/andrew-torda/randfasta/pkg/seq/common"
	"github.com/edsrzf/mmap-go"
)

const (
	cmmtChar byte = '>' // introduces comments in fasta format
	NL       byte = '\n'
)

// Record is one sequence with its identifier and description.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// Filename is where a record with this identifier gets written. The
// identifier is used as it is, so it may well not be a legal filename.
func Filename(id string) string { return id + FastaExt }

// Cmmt returns the comment line without the leading ">" or newline.
func (r Record) Cmmt() string { return r.ID + " " + r.Desc }

// String gives the record as it would appear in a file.
func (r Record) String() string {
	return fmt.Sprintf("%c%s\n%s\n", cmmtChar, r.Cmmt(), r.Seq)
}

// Write sends the two lines of a record to w.
func Write(w io.Writer, r Record) error {
	if _, err := fmt.Fprintf(w, "%c%s\n", cmmtChar, r.Cmmt()); err != nil {
		return err
	}
	if _, err := w.Write(r.Seq); err != nil {
		return err
	}
	_, err := w.Write([]byte{NL})
	return err
}

// WriteFile creates (or truncates) the file named after the record's
// identifier and writes the record there. It returns the filename.
// We do not clean up if something goes wrong half way through.
func WriteFile(r Record) (fname string, err error) {
	fname = Filename(r.ID)
	fp, err := os.Create(fname)
	if err != nil {
		return fname, fmt.Errorf("creating output sequence file: %w", err)
	}
	defer func() {
		if cerr := fp.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", fname, cerr)
		}
	}()
	if err = Write(fp, r); err != nil {
		return fname, fmt.Errorf("writing %s: %w", fname, err)
	}
	return fname, nil
}

var (
	ErrEmpty  = errors.New("empty file")
	ErrFormat = errors.New("not a two line fasta record")
)

// Parse takes the contents of a file and breaks it into a record.
// The identifier is everything up to the first space in the comment.
// Seq is a copy, so buf can be thrown away.
func Parse(buf []byte) (Record, error) {
	var r Record
	if len(buf) == 0 {
		return r, ErrEmpty
	}
	if buf[0] != cmmtChar {
		return r, fmt.Errorf("%w: does not start with %c", ErrFormat, cmmtChar)
	}
	ndx := bytes.IndexByte(buf, NL)
	if ndx == -1 {
		return r, fmt.Errorf("%w: no sequence line", ErrFormat)
	}
	cmmt, rest := buf[1:ndx], buf[ndx+1:]
	if len(rest) == 0 || rest[len(rest)-1] != NL {
		return r, fmt.Errorf("%w: sequence line not terminated", ErrFormat)
	}
	rest = rest[:len(rest)-1]
	if n := bytes.IndexByte(rest, NL); n != -1 {
		return r, fmt.Errorf("%w: more than one sequence line", ErrFormat)
	}
	if i := bytes.IndexByte(cmmt, ' '); i == -1 {
		r.ID = string(cmmt)
	} else {
		r.ID, r.Desc = string(cmmt[:i]), string(cmmt[i+1:])
	}
	r.Seq = append([]byte{}, rest...)
	return r, nil
}

// ReadFile maps a file into memory and parses the record in it.
func ReadFile(fname string) (Record, error) {
	var fp *os.File
	var err error
	var mm mmap.MMap
	if fp, err = os.Open(fname); err != nil {
		return Record{}, err
	}
	defer fp.Close()
	if fi, err := fp.Stat(); err != nil {
		return Record{}, err
	} else if fi.Size() == 0 { // mmap will not take a zero length file
		return Record{}, fmt.Errorf("%s: %w", fname, ErrEmpty)
	}
	if mm, err = mmap.Map(fp, mmap.RDONLY, 0); err != nil {
		return Record{}, fmt.Errorf("mapping %s: %w", fname, err)
	}
	defer mm.Unmap()
	r, err := Parse(mm)
	if err != nil {
		return r, fmt.Errorf("%s: %w", fname, err)
	}
	return r, nil
}

// 14 Oct 2026

// Package randfasta makes one random DNA sequence, hides a name in it,
// writes it as a fasta file and reports on its composition.
package randfasta

import (
	"fmt"
	"io"

	"github.com/andrew-torda/randfasta/pkg/fasta"
	"github.com/andrew-torda/randfasta/pkg/randseq"
	"github.com/andrew-torda/randfasta/pkg/randsrc"
	"github.com/andrew-torda/randfasta/pkg/report"
	"github.com/andrew-torda/randfasta/pkg/seqstat"
)

// Params is everything the user tells us. It is filled in once and
// not changed afterwards.
type Params struct {
	Len  int    // number of bases. Zero or negative gives an empty sequence
	ID   string // sequence identifier, also the start of the filename
	Desc string // description for the comment line
	Name string // put into the sequence at a random place
}

// Result is what came out of a run. Mostly for testing.
type Result struct {
	Raw       []byte // sequence the statistics come from
	Display   []byte // Raw with the name spliced in, as written to the file
	InsertPos int    // where the name went in Display
	Fname     string // file written
	Stats     *seqstat.Stats
}

// Mymain does the work. src supplies all the random numbers and the
// report goes to out. The first error stops everything. If the statistics
// cannot be calculated, nothing is written.
func Mymain(p Params, src randsrc.Source, out io.Writer) (*Result, error) {
	var res Result
	var err error
	if res.Raw, err = randseq.Generate(p.Len, src); err != nil {
		return nil, fmt.Errorf("generating sequence: %w", err)
	}
	if res.Display, res.InsertPos, err = randseq.Insert(res.Raw, p.Name, src); err != nil {
		return nil, fmt.Errorf("inserting name: %w", err)
	}
	if res.Stats, err = seqstat.Calc(res.Raw); err != nil {
		return nil, fmt.Errorf("sequence statistics: %w", err)
	}
	rec := fasta.Record{ID: p.ID, Desc: p.Desc, Seq: res.Display}
	if res.Fname, err = fasta.WriteFile(rec); err != nil {
		return nil, err
	}
	if err = report.Print(out, res.Fname, res.Stats); err != nil {
		return nil, fmt.Errorf("writing report: %w", err)
	}
	return &res, nil
}

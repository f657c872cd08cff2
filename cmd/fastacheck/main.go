// 3 Aug 2020

// Read back fasta files written by randfasta and check each one holds a
// single record with the sequence on one line.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/randfasta/pkg/fasta"
	. "github.com/andrew-torda/randfasta/pkg/seq/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "file.fasta [file.fasta ...]")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(ExitUsageError)
	}
	status := ExitSuccess
	for _, fname := range flag.Args() {
		r, err := fasta.ReadFile(fname)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			status = ExitFailure
			continue
		}
		fmt.Printf("%s: id %s description %q length %d\n", fname, r.ID, r.Desc, len(r.Seq))
	}
	os.Exit(status)
}

// 14 Oct 2026

package main

import (
	"fmt"
	"os"

	"github.com/andrew-torda/randfasta/pkg/input"
	"github.com/andrew-torda/randfasta/pkg/randfasta"
	"github.com/andrew-torda/randfasta/pkg/randsrc"
	. "github.com/andrew-torda/randfasta/pkg/seq/common"
)

func main() {
	if len(os.Args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: randfasta\ntakes no arguments, answer the questions")
		os.Exit(ExitUsageError)
	}
	params, err := input.Collect(os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	if _, err := randfasta.Mymain(params, randsrc.Crypto{}, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}

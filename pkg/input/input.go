// 14 Oct 2026

// Package input asks the user for the parameters of a run.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andrew-torda/randfasta/pkg/randfasta"
)

// Prompts, in the order the answers are read.
const (
	PromptLen  = "Enter the sequence length: "
	PromptID   = "Enter the sequence ID: "
	PromptDesc = "Provide a description of the sequence: "
	PromptName = "Enter your name: "
)

// ErrShortInput means the input finished before we had all four answers.
var ErrShortInput = errors.New("input ended before all parameters were read")

// ask writes a prompt and reads one line, without its line ending.
// A last line with no newline is accepted.
func ask(rdr *bufio.Reader, w io.Writer, prompt string) (string, error) {
	if _, err := io.WriteString(w, prompt); err != nil {
		return "", err
	}
	line, err := rdr.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", err
		}
		if line == "" {
			return "", fmt.Errorf("%w: no answer to %q", ErrShortInput, strings.TrimSpace(prompt))
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// Collect reads length, identifier, description and name from r, in that
// order, writing a prompt to w before each one. The length must be an
// integer, but is not otherwise checked. Nothing else is checked at all.
func Collect(r io.Reader, w io.Writer) (randfasta.Params, error) {
	var p randfasta.Params
	rdr := bufio.NewReader(r)
	s, err := ask(rdr, w, PromptLen)
	if err != nil {
		return p, err
	}
	if p.Len, err = strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return p, fmt.Errorf("sequence length: %w", err)
	}
	for _, q := range []struct {
		prompt string
		dst    *string
	}{
		{PromptID, &p.ID},
		{PromptDesc, &p.Desc},
		{PromptName, &p.Name},
	} {
		if *q.dst, err = ask(rdr, w, q.prompt); err != nil {
			return p, err
		}
	}
	return p, nil
}

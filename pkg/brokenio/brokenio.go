// brokenio wraps an io.Writer so that it fails. It is for checking that
// errors from writing files and the console get back to the caller.
// Typical use: wrap a bytes.Buffer, say how many bytes may get through,
// hand it to the code being tested.

package brokenio

import (
	"errors"
	"io"
)

// ErrBroken is what a BrknWrtr returns once it has stopped working.
var ErrBroken = errors.New("brokenio: artificial write failure")

// BrknWrtr passes the first nOK bytes to the wrapped writer. The write
// that would go past that limit is cut short and returns ErrBroken, as does
// everything after it.
type BrknWrtr struct {
	wrtr   io.Writer // wrapped writer
	nOK    int       // bytes allowed through
	nByte  int       // bytes so far
	nCalls int
}

// NewWriter returns a writer that fails after nOK bytes. nOK of zero
// means the very first write fails.
func NewWriter(w io.Writer, nOK int) *BrknWrtr {
	return &BrknWrtr{wrtr: w, nOK: nOK}
}

// NCalls says how often Write has been called, successful or not.
func (w *BrknWrtr) NCalls() int { return w.nCalls }

// Write passes on as much as is allowed.
func (w *BrknWrtr) Write(p []byte) (int, error) {
	w.nCalls++
	left := w.nOK - w.nByte
	if left >= len(p) {
		n, err := w.wrtr.Write(p)
		w.nByte += n
		return n, err
	}
	if left < 0 {
		left = 0
	}
	n, err := w.wrtr.Write(p[:left])
	w.nByte += n
	if err != nil {
		return n, err
	}
	return n, ErrBroken
}

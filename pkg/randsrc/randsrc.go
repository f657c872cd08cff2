// 14 Oct 2026

// Package randsrc provides the random numbers used for making and
// decorating sequences. Callers are given a Source, so the real program
// can use the operating system's generator while tests use something
// they can repeat.
package randsrc

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	mrand "math/rand"
)

// Source returns integers, uniformly distributed in [0,n).
type Source interface {
	Intn(n int) (int, error)
}

var errBadN = errors.New("randsrc: Intn called with n <= 0")

// Crypto draws from crypto/rand. It is what the program uses.
// The zero value is ready to use.
type Crypto struct{}

// Intn uses rand.Int, which is unbiased, so we do not have to worry
// about the modulo problem.
func (Crypto) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errBadN
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading system random source: %w", err)
	}
	return int(v.Int64()), nil
}

// Seeded is a math/rand generator with a fixed seed. Only for tests
// and benchmarks. It is not safe for concurrent use.
type Seeded struct {
	rnd *mrand.Rand
}

// NewSeeded gives a generator which repeats itself for a given seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{rnd: mrand.New(mrand.NewSource(seed))}
}

// Intn never fails except for bad n.
func (s *Seeded) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errBadN
	}
	return s.rnd.Intn(n), nil
}

// Fixed hands back the values in Vals, one per call, in order.
// Each value is reduced modulo n. When the values run out, Intn returns
// an error. Useful for pinning the position where a name goes.
type Fixed struct {
	Vals []int
	next int
}

// Intn returns the next stored value.
func (f *Fixed) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errBadN
	}
	if f.next >= len(f.Vals) {
		return 0, fmt.Errorf("randsrc: fixed source exhausted after %d values", len(f.Vals))
	}
	v := f.Vals[f.next] % n
	if v < 0 {
		v += n
	}
	f.next++
	return v, nil
}

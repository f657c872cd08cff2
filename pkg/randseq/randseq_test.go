// 31 July 2020

package randseq_test

import (
	"bytes"
	"testing"

	"github.com/andrew-torda/randfasta/pkg/randseq"
	"github.com/andrew-torda/randfasta/pkg/randsrc"
)

const iseed int64 = 1637

// onlyACGT checks that a sequence is all from the alphabet.
func onlyACGT(s []byte) bool {
	for _, c := range s {
		switch c {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}

func TestGenerate(t *testing.T) {
	src := randsrc.NewSeeded(iseed)
	for _, n := range []int{1, 2, 10, 1000} {
		s, err := randseq.Generate(n, src)
		if err != nil {
			t.Fatal(err)
		}
		if len(s) != n {
			t.Fatal("Expected", n, "got", len(s))
		}
		if !onlyACGT(s) {
			t.Fatalf("bad symbol in \"%s\"", s)
		}
	}
}

func TestGenerateCrypto(t *testing.T) {
	s, err := randseq.Generate(400, randsrc.Crypto{})
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 400 || !onlyACGT(s) {
		t.Fatalf("crypto sequence broken \"%s\"", s)
	}
	for _, c := range []byte("ACGT") { // 400 bases and one missing is (3/4)^400
		if bytes.IndexByte(s, c) == -1 {
			t.Fatalf("base %c never generated", c)
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	for _, n := range []int{0, -5} {
		s, err := randseq.Generate(n, randsrc.NewSeeded(iseed))
		if err != nil {
			t.Fatal(err)
		}
		if s == nil || len(s) != 0 {
			t.Fatal("length", n, "should give empty sequence, got", s)
		}
	}
}

func TestGenerateSrcFail(t *testing.T) {
	src := &randsrc.Fixed{Vals: []int{0, 1}}
	if _, err := randseq.Generate(3, src); err == nil {
		t.Fatal("source ran dry, but no error")
	}
}

// TestInsertEnds pins the position at both ends and in the middle.
func TestInsertEnds(t *testing.T) {
	raw := []byte("ACGTACGTAC")
	name := "Bob"
	wants := []struct {
		pos  int
		want string
	}{
		{0, "BobACGTACGTAC"},
		{4, "ACGTBobACGTAC"},
		{10, "ACGTACGTACBob"},
	}
	for _, w := range wants {
		src := &randsrc.Fixed{Vals: []int{w.pos}}
		got, pos, err := randseq.Insert(raw, name, src)
		if err != nil {
			t.Fatal(err)
		}
		if pos != w.pos || string(got) != w.want {
			t.Fatal("Expected", w.want, w.pos, "got", string(got), pos)
		}
	}
	if string(raw) != "ACGTACGTAC" {
		t.Fatal("Insert changed the raw sequence to", string(raw))
	}
}

// TestRoundTrip inserts names at random positions and takes them out again.
func TestRoundTrip(t *testing.T) {
	src := randsrc.NewSeeded(iseed)
	names := []string{"", "x", "Bob", "Andrew Torda"}
	for _, n := range []int{0, 1, 10, 257} {
		raw, err := randseq.Generate(n, src)
		if err != nil {
			t.Fatal(err)
		}
		for _, name := range names {
			disp, pos, err := randseq.Insert(raw, name, src)
			if err != nil {
				t.Fatal(err)
			}
			if len(disp) != len(raw)+len(name) {
				t.Fatal("Expected length", len(raw)+len(name), "got", len(disp))
			}
			if pos < 0 || pos > len(raw) {
				t.Fatal("insert position", pos, "outside 0 ..", len(raw))
			}
			if string(disp[pos:pos+len(name)]) != name {
				t.Fatalf("name \"%s\" not at %d in \"%s\"", name, pos, disp)
			}
			back, err := randseq.Remove(disp, pos, len(name))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(back, raw) {
				t.Fatalf("round trip gave \"%s\" wanted \"%s\"", back, raw)
			}
		}
	}
}

// TestInsertAllPositions makes sure both ends can be chosen.
func TestInsertAllPositions(t *testing.T) {
	src := randsrc.NewSeeded(iseed)
	raw := []byte("ACG")
	seen := make([]bool, len(raw)+1)
	for i := 0; i < 200; i++ {
		_, pos, err := randseq.Insert(raw, "n", src)
		if err != nil {
			t.Fatal(err)
		}
		seen[pos] = true
	}
	for i, ok := range seen {
		if !ok {
			t.Fatal("never inserted at", i)
		}
	}
}

func TestRemoveBad(t *testing.T) {
	bad := [][2]int{{-1, 1}, {0, 5}, {3, 2}, {1, -1}}
	for _, b := range bad {
		if _, err := randseq.Remove([]byte("ACGT"), b[0], b[1]); err == nil {
			t.Fatal("wanted error for pos, len", b)
		}
	}
}

func BenchmarkGenerateCrypto(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := randseq.Generate(10000, randsrc.Crypto{}); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerateSeeded(b *testing.B) {
	src := randsrc.NewSeeded(iseed)
	for i := 0; i < b.N; i++ {
		if _, err := randseq.Generate(10000, src); err != nil {
			b.Fatal(err)
		}
	}
}

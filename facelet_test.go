package cubesim

import (
	"errors"
	"strings"
	"testing"
)

const solvedFacelets = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

func TestEncodeSolved(t *testing.T) {
	got, err := New().Encode()
	if err != nil {
		t.Fatal(err)
	}
	if got != solvedFacelets {
		t.Errorf("Encode() = %q, want %q", got, solvedFacelets)
	}
}

func TestEncodeSymbolMultiplicity(t *testing.T) {
	c := New().ApplyMoves(ScrambleSeeded(30, 3)...)
	s, err := c.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 54 {
		t.Fatalf("len = %d, want 54", len(s))
	}
	for _, sym := range "URFDLB" {
		if n := strings.Count(s, string(sym)); n != 9 {
			t.Errorf("symbol %c appears %d times, want 9", sym, n)
		}
	}
}

func TestEncodeCenterSymbols(t *testing.T) {
	// Centers never move, so index 4 of each 9-symbol block is always
	// the face's own label, however scrambled the cube is.
	c := New().ApplyMoves(ScrambleSeeded(40, 11)...)
	s, err := c.Encode()
	if err != nil {
		t.Fatal(err)
	}
	for f := FaceU; f <= FaceB; f++ {
		if got := s[int(f)*9+4]; got != f.String()[0] {
			t.Errorf("%s block center = %c", f, got)
		}
	}
}

func TestEncodeAfterR(t *testing.T) {
	// Fixed reference string for R applied to solved, standard facelet
	// convention.
	const want = "UUFUUFUUFRRRRRRRRRFFDFFDFFDDDBDDBDDBLLLLLLLLLUBBUBBUBB"
	got, err := New().Apply(R).Encode()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Encode after R = %q, want %q", got, want)
	}
}

func TestEncodeAfterU(t *testing.T) {
	const want = "UUUUUUUUUBBBRRRRRRRRRFFFFFFDDDDDDDDDFFFLLLLLLLLLBBBBBB"
	got, err := New().Apply(U).Encode()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Encode after U = %q, want %q", got, want)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	c, err := Decode(solvedFacelets)
	if err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Error("decoded solved string should be solved")
		t.Log(c.String())
	}

	scrambled := New().ApplyMoves(ScrambleSeeded(30, 5)...)
	s, err := scrambled.Encode()
	if err != nil {
		t.Fatal(err)
	}
	back, err := Decode(s)
	if err != nil {
		t.Fatal(err)
	}
	again, err := back.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if again != s {
		t.Errorf("round trip changed the string:\n got %q\nwant %q", again, s)
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	cases := []string{
		"",
		solvedFacelets[:53],
		solvedFacelets + "U",
		// right length, wrong multiplicity
		strings.Replace(solvedFacelets, "U", "R", 1),
		// right length, 7 symbols
		strings.Replace(solvedFacelets, "U", "X", 1),
	}
	for _, s := range cases {
		if _, err := Decode(s); !errors.Is(err, ErrInvalidFacelets) {
			t.Errorf("Decode(%q): err = %v, want ErrInvalidFacelets", s, err)
		}
	}
}

func TestDecodeRejectsDuplicateCenters(t *testing.T) {
	// Swap the U block center with an off-center R sticker: every
	// multiplicity stays 9 but two blocks now share a center symbol.
	b := []byte(solvedFacelets)
	b[4], b[9] = b[9], b[4]
	if _, err := Decode(string(b)); !errors.Is(err, ErrInvalidFacelets) {
		t.Errorf("err = %v, want ErrInvalidFacelets", err)
	}
}

func TestEncodeFailsOnDuplicateCenterColor(t *testing.T) {
	c := *New()
	for i := range c.cells {
		if c.cells[i].Pos == (Pos{0, 1, 0}) {
			c.cells[i].Stickers[DirPosY] = Red // collides with R center
		}
	}
	if _, err := c.Encode(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
}

func TestEncodeFailsOnUnmappedSticker(t *testing.T) {
	c := *New()
	for i := range c.cells {
		if c.cells[i].Pos == (Pos{1, 1, 1}) {
			c.cells[i].Stickers[DirPosY] = None // corrupt one corner sticker
		}
	}
	if _, err := c.Encode(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
}

func TestEncodeFailsOnMissingCell(t *testing.T) {
	c := *New()
	// Two cells on the same position leaves another position empty.
	c.cells[0].Pos = c.cells[1].Pos
	if _, err := c.Encode(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("err = %v, want ErrInvalidState", err)
	}
}

func TestFaceScanGeometry(t *testing.T) {
	for f := FaceU; f <= FaceB; f++ {
		positions := scanPositions(f)
		if positions[4] != centerPos(f) {
			t.Errorf("%s: scan index 4 is %v, want center %v", f, positions[4], centerPos(f))
		}
		seen := make(map[Pos]bool)
		for _, p := range positions {
			if seen[p] {
				t.Errorf("%s: duplicate scan position %v", f, p)
			}
			seen[p] = true
		}
	}
}

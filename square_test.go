package shapes

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewSquare(t *testing.T) {
	s := NewSquare(1.5)
	if s.Width() != 1.5 {
		t.Errorf("Width() = %g, want 1.5", s.Width())
	}
}

func TestSerializeSquare(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	if err := SerializeSquare(NewSquare(1.5)); err != nil {
		t.Fatalf("SerializeSquare() = %v", err)
	}
	if want := `{"type":"square","width":1.5}` + "\n"; buf.String() != want {
		t.Errorf("SerializeSquare wrote %q, want %q", buf.String(), want)
	}
}

func TestFormatSquare(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatSquare(&buf, NewSquare(1.5)); err != nil {
		t.Fatalf("FormatSquare() = %v", err)
	}
	if want := "square(width=1.5)"; buf.String() != want {
		t.Errorf("FormatSquare wrote %q, want %q", buf.String(), want)
	}
}

func TestDrawSquare(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	if err := DrawSquare(NewSquare(1.5)); err != nil {
		t.Fatalf("DrawSquare() = %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "square(width=1.5):\n") {
		t.Errorf("draw output should start with the header, got %q", out)
	}
	art := strings.TrimPrefix(out, "square(width=1.5):\n")
	for _, line := range strings.Split(strings.TrimRight(art, "\n"), "\n") {
		if strings.ContainsRune(line, ' ') {
			t.Errorf("square preview should be fully covered, got line %q", line)
		}
	}
}

func TestDrawSquareRejectsNonPositiveWidth(t *testing.T) {
	for _, w := range []float64{0, -0.5} {
		if err := DrawSquare(NewSquare(w)); err == nil {
			t.Errorf("DrawSquare(width=%g) should fail", w)
		}
	}
}

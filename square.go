package shapes

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/gogpu/shapes/internal/raster"
)

// Square is an axis-aligned square described by its width. Like Circle, it
// is a plain value type whose operations are free functions registered in
// this package's init.
type Square struct {
	width float64
}

// NewSquare creates a square with the given width.
func NewSquare(width float64) Square {
	return Square{width: width}
}

// Width returns the width of the square.
func (s Square) Width() float64 {
	return s.width
}

// squarePayload is the serialization form of a Square.
type squarePayload struct {
	Type  string  `json:"type"`
	Width float64 `json:"width"`
}

func init() {
	_ = Register(Ops[Square]{
		Draw:      DrawSquare,
		Serialize: SerializeSquare,
		Format:    FormatSquare,
	})
}

// DrawSquare writes an ASCII coverage preview of the square to the package
// output. It is the default Draw operation for Square.
func DrawSquare(s Square) error {
	if s.width <= 0 {
		return fmt.Errorf("shapes: cannot draw square with width %g", s.width)
	}
	art := raster.ASCII(raster.Square(s.width))
	_, err := fmt.Fprintf(Output(), "square(width=%g):\n%s", s.width, art)
	return err
}

// SerializeSquare writes the square as a single line of JSON to the package
// output. It is the default Serialize operation for Square.
func SerializeSquare(s Square) error {
	data, err := jsoniter.ConfigFastest.Marshal(squarePayload{Type: "square", Width: s.width})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(Output(), "%s\n", data)
	return err
}

// FormatSquare writes the square's human-readable representation to w. It is
// the default Format operation for Square.
func FormatSquare(w io.Writer, s Square) error {
	_, err := fmt.Fprintf(w, "square(width=%g)", s.width)
	return err
}

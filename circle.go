package shapes

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/gogpu/shapes/internal/raster"
)

// Circle is a circle described by its radius. It is a plain value type: it
// carries no drawing or serialization behavior of its own and does not know
// the wrapper exists. Its operations are the free functions DrawCircle,
// SerializeCircle, and FormatCircle, registered in this package's init.
type Circle struct {
	radius float64
}

// NewCircle creates a circle with the given radius.
func NewCircle(radius float64) Circle {
	return Circle{radius: radius}
}

// Radius returns the radius of the circle.
func (c Circle) Radius() float64 {
	return c.radius
}

// circlePayload is the serialization form of a Circle.
type circlePayload struct {
	Type   string  `json:"type"`
	Radius float64 `json:"radius"`
}

func init() {
	// All three required ops are set, so Register cannot fail.
	_ = Register(Ops[Circle]{
		Draw:      DrawCircle,
		Serialize: SerializeCircle,
		Format:    FormatCircle,
	})
}

// DrawCircle writes an ASCII coverage preview of the circle to the package
// output. It is the default Draw operation for Circle.
func DrawCircle(c Circle) error {
	if c.radius <= 0 {
		return fmt.Errorf("shapes: cannot draw circle with radius %g", c.radius)
	}
	art := raster.ASCII(raster.Circle(c.radius))
	_, err := fmt.Fprintf(Output(), "circle(radius=%g):\n%s", c.radius, art)
	return err
}

// SerializeCircle writes the circle as a single line of JSON to the package
// output. It is the default Serialize operation for Circle.
func SerializeCircle(c Circle) error {
	data, err := jsoniter.ConfigFastest.Marshal(circlePayload{Type: "circle", Radius: c.radius})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(Output(), "%s\n", data)
	return err
}

// FormatCircle writes the circle's human-readable representation to w. It is
// the default Format operation for Circle.
func FormatCircle(w io.Writer, c Circle) error {
	_, err := fmt.Fprintf(w, "circle(radius=%g)", c.radius)
	return err
}

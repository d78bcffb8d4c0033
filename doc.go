// Package shapes provides runtime polymorphism over unrelated value types.
//
// # Overview
//
// shapes wraps plain, independent value types (a circle described by a
// radius, a square described by a width, anything) behind a single copyable
// value type, Shape, without requiring those types to implement an interface
// or know the wrapper exists. A Shape dispatches draw, serialize, and
// formatted output to whichever concrete type it holds, chosen at
// construction time and fixed for the wrapper's lifetime.
//
// # Quick Start
//
//	import "github.com/gogpu/shapes"
//
//	s, err := shapes.New(shapes.NewCircle(2.0))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	shapes.Draw(s)      // ASCII coverage preview on the package output
//	shapes.Serialize(s) // one line of JSON on the package output
//	fmt.Println(s)      // circle(radius=2)
//
// # Wrapping Your Own Types
//
// A type is wrappable once operations for it are registered. The type itself
// stays untouched: no methods, no embedded base, no interface:
//
//	type Blob struct{ Cells int }
//
//	shapes.Register(shapes.Ops[Blob]{
//	    Draw:      func(b Blob) error { ... },
//	    Serialize: func(b Blob) error { ... },
//	    Format:    func(w io.Writer, b Blob) error { ... },
//	})
//
//	s, err := shapes.New(Blob{Cells: 7})
//
// Registered operations always win: if Blob happens to define a Draw method,
// it is never consulted. Construction fails with a ContractViolation error
// when no complete registration exists for the type, at the New call site,
// never on first use.
//
// # Draw Strategies
//
// Draw behavior can be injected per instance without touching the type's
// registration:
//
//	s, err := shapes.New(shapes.NewCircle(4.2), shapes.WithDrawer(func(c shapes.Circle) error {
//	    _, err := fmt.Fprintln(shapes.Output(), "custom circle!")
//	    return err
//	}))
//
// Serialize and formatted output are unaffected by an injected drawer.
//
// # Copying and Moving
//
// Clone produces a deep, independent copy; the copies never share state.
// Move transfers ownership of the internals and leaves the source empty:
//
//	s2 := s.Clone()
//	s3 := s.Move() // s is now empty; s.Valid() == false
//
// Calling Draw, Serialize, Clone, String, or WriteTo on an empty Shape is a
// programming error and panics with an InvalidState error. Plain struct
// assignment of a Shape aliases its internals (like copying a bytes.Buffer);
// use Clone when an independent copy is needed.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Shape, New, Register, Ops, Draw, Serialize
//   - Bundled value types: Circle, Square with default operations
//   - Internal: raster (coverage masks and ASCII previews)
package shapes

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

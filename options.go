package shapes

// Option configures a Shape during construction with New.
//
// Example:
//
//	// Default: draw via the type's registered operation
//	s, err := shapes.New(shapes.NewCircle(2.0))
//
//	// Injected draw strategy for this one instance
//	s, err := shapes.New(shapes.NewCircle(4.2), shapes.WithDrawer(outline))
type Option[T any] func(*config[T])

// config holds optional configuration for Shape construction.
type config[T any] struct {
	drawer Drawer[T]
}

// WithDrawer injects a draw strategy for the constructed Shape. Drawing that
// Shape invokes d with the wrapped value instead of the type's registered
// Draw operation. The strategy is fixed at construction and copied along by
// Clone; it never affects other Shapes wrapping the same type, and it never
// affects Serialize or formatted output.
//
// Example:
//
//	dashed := func(c shapes.Circle) error {
//	    _, err := fmt.Fprintf(shapes.Output(), "dashed circle(radius=%g)\n", c.Radius())
//	    return err
//	}
//	s, err := shapes.New(shapes.NewCircle(4.2), shapes.WithDrawer(dashed))
func WithDrawer[T any](d Drawer[T]) Option[T] {
	return func(c *config[T]) {
		c.drawer = d
	}
}

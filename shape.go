package shapes

import (
	"io"
	"strings"
)

// shapeAPI is the internal polymorphic interface behind Shape. It has
// exactly two implementations, typeModel and strategyModel; the set is
// closed and not extensible by callers.
type shapeAPI interface {
	draw() error
	serialize() error
	format(w io.Writer) error

	// clone returns a new model holding an independent copy of the wrapped
	// value (and strategy, if any). It must never alias the original.
	clone() shapeAPI
}

// Shape is a polymorphic wrapper over an arbitrary wrapped value. It behaves
// as an ordinary value: it can be stored in slices and maps, cloned, moved,
// and printed. Draw, serialize, and formatted output dispatch to whichever
// concrete type the Shape was constructed from.
//
// The zero Shape is empty; so is a Shape that has been moved from. Empty
// Shapes support only Valid and Move; every other operation panics with an
// InvalidState error.
type Shape struct {
	api shapeAPI
}

// New wraps value in a Shape. The value's type must have a complete Ops
// registration (see Register); otherwise New returns a ContractViolation
// error. The contract is checked here, at construction, never deferred to
// first use.
//
// Options adjust how the wrapper is built. WithDrawer injects a per-instance
// draw strategy: drawing that one Shape invokes the strategy instead of the
// type's registered Draw operation, while serialization and formatted output
// keep their registered behavior.
func New[T any](value T, opts ...Option[T]) (Shape, error) {
	var cfg config[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	ops, ok := opsFor[T]()
	if !ok {
		return Shape{}, &Error{
			Kind:   KindContractViolation,
			GoType: typeName[T](),
			Detail: "no operations registered; call Register before wrapping",
		}
	}

	if cfg.drawer != nil {
		Logger().Debug("shapes: wrapping value with injected drawer", "type", typeName[T]())
		return Shape{api: &strategyModel[T]{value: value, ops: ops, drawer: cfg.drawer}}, nil
	}
	return Shape{api: &typeModel[T]{value: value, ops: ops}}, nil
}

// Valid reports whether the Shape holds a value. It returns false for the
// zero Shape and for a Shape that has been moved from.
func (s Shape) Valid() bool {
	return s.api != nil
}

// mustAPI returns the model or panics if the Shape is empty.
func (s Shape) mustAPI(op string) shapeAPI {
	if s.api == nil {
		panic(&Error{
			Kind:   KindInvalidState,
			Detail: op + " on an empty (zero or moved-from) Shape",
		})
	}
	return s.api
}

// Clone returns a deep, independent copy of the Shape. The copy owns its own
// value (and drawer, if one was injected); no state is shared with the
// original. Types whose registered Ops include a Clone operation are copied
// through it, everything else by plain assignment.
func (s Shape) Clone() Shape {
	return Shape{api: s.mustAPI("Clone").clone()}
}

// Move transfers the Shape's internals to the returned Shape and leaves the
// receiver empty. Moving an empty Shape yields an empty Shape.
func (s *Shape) Move() Shape {
	out := Shape{api: s.api}
	s.api = nil
	return out
}

// String implements fmt.Stringer using the wrapped type's Format operation,
// so a Shape prints exactly like the value it wraps.
func (s Shape) String() string {
	var sb strings.Builder
	if err := s.mustAPI("String").format(&sb); err != nil {
		return "%!(shapes.Shape: " + err.Error() + ")"
	}
	return sb.String()
}

// WriteTo writes the Shape's formatted representation to w, implementing
// io.WriterTo. Errors from the wrapped type's Format operation are returned
// unchanged.
func (s Shape) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := s.mustAPI("WriteTo").format(cw)
	return cw.n, err
}

// countingWriter tracks bytes written through it for WriteTo.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// Draw performs the draw side effect for the wrapped value: the type's
// registered Draw operation, or the injected drawer if the Shape was built
// with WithDrawer. Errors from the underlying operation are returned
// unchanged.
func Draw(s Shape) error {
	return s.mustAPI("Draw").draw()
}

// Serialize performs the serialization side effect for the wrapped value
// using the type's registered Serialize operation. An injected drawer has no
// effect here. Errors from the underlying operation are returned unchanged.
func Serialize(s Shape) error {
	return s.mustAPI("Serialize").serialize()
}

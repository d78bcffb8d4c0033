package shapes

import (
	"fmt"
	"io"
	"sync"
)

// Drawer is a per-instance draw strategy. It receives the wrapped value and
// performs the draw side effect in place of the type's registered Draw
// operation. See WithDrawer.
type Drawer[T any] func(T) error

// Ops bundles the free operations that make a type T wrappable. Draw,
// Serialize, and Format are required; a registration missing any of them is
// rejected. The operations live outside T; T needs no methods and no
// knowledge of this package. If T also defines methods with these names,
// they are ignored; only the registered operations are ever invoked.
type Ops[T any] struct {
	// Draw performs the draw side effect for a value.
	Draw func(T) error

	// Serialize performs the serialization side effect for a value.
	Serialize func(T) error

	// Format writes a human-readable representation of a value to w.
	Format func(w io.Writer, v T) error

	// Clone returns a deep copy of a value. Optional: when nil, cloning a
	// Shape copies the value by plain assignment, which is sufficient for
	// types without pointer, slice, or map fields.
	Clone func(T) T
}

var (
	regMu    sync.RWMutex
	registry = map[any]any{}
)

// regKey returns a comparable key unique to T. A typed nil pointer carries
// the type identity without needing reflection.
func regKey[T any]() any {
	var p *T
	return p
}

func typeName[T any]() string {
	return fmt.Sprintf("%T", *new(T))
}

// Register binds ops to the type T, making values of T wrappable with New.
// It follows the registration idiom of image.RegisterFormat: typically called
// from an init function in the package defining T's operations.
//
// Registering again for the same T replaces the previous operations; already
// constructed Shapes keep the operations they were built with.
//
// Register returns a ContractViolation error if Draw, Serialize, or Format
// is nil.
func Register[T any](ops Ops[T]) error {
	if ops.Draw == nil || ops.Serialize == nil || ops.Format == nil {
		return &Error{
			Kind:   KindContractViolation,
			GoType: typeName[T](),
			Detail: "incomplete registration: Draw, Serialize, and Format are required",
		}
	}

	regMu.Lock()
	registry[regKey[T]()] = ops
	regMu.Unlock()

	Logger().Debug("shapes: operations registered", "type", typeName[T]())
	return nil
}

// Registered reports whether a complete set of operations exists for T.
func Registered[T any]() bool {
	_, ok := opsFor[T]()
	return ok
}

// opsFor resolves the operations registered for T.
func opsFor[T any]() (Ops[T], bool) {
	regMu.RLock()
	e, ok := registry[regKey[T]()]
	regMu.RUnlock()
	if !ok {
		return Ops[T]{}, false
	}
	ops, ok := e.(Ops[T])
	return ops, ok
}

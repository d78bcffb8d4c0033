package shapes

import "io"

// typeModel adapts a value of type T to shapeAPI by forwarding every
// operation to the Ops registered for T. One instantiation exists per
// wrapped concrete type.
type typeModel[T any] struct {
	value T
	ops   Ops[T]
}

func (m *typeModel[T]) draw() error { return m.ops.Draw(m.value) }
func (m *typeModel[T]) serialize() error { return m.ops.Serialize(m.value) }
func (m *typeModel[T]) format(w io.Writer) error { return m.ops.Format(w, m.value) }

func (m *typeModel[T]) clone() shapeAPI {
	c := &typeModel[T]{value: m.value, ops: m.ops}
	if m.ops.Clone != nil {
		c.value = m.ops.Clone(m.value)
	}
	return c
}

// strategyModel is the dependency-injection variant of typeModel: it carries
// a per-instance drawer that replaces the registered Draw operation.
// Serialization and formatting are unaffected by the drawer.
type strategyModel[T any] struct {
	value  T
	ops    Ops[T]
	drawer Drawer[T]
}

func (m *strategyModel[T]) draw() error { return m.drawer(m.value) }
func (m *strategyModel[T]) serialize() error { return m.ops.Serialize(m.value) }
func (m *strategyModel[T]) format(w io.Writer) error { return m.ops.Format(w, m.value) }

func (m *strategyModel[T]) clone() shapeAPI {
	c := &strategyModel[T]{value: m.value, ops: m.ops, drawer: m.drawer}
	if m.ops.Clone != nil {
		c.value = m.ops.Clone(m.value)
	}
	return c
}

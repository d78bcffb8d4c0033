package shapes

import (
	"io"
	"os"
	"sync/atomic"
)

// outputPtr stores the active output sink for the bundled default
// operations. Accessed atomically, same scheme as the logger; Output falls
// back to os.Stdout while the pointer is still unset.
var outputPtr atomic.Pointer[io.Writer]

// SetOutput configures the sink that the bundled Circle and Square
// operations (and any caller-registered operations that choose to honor it)
// write their draw and serialize output to. The default is os.Stdout. Pass
// nil to restore the default.
//
// SetOutput is safe for concurrent use: it stores the new sink atomically.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	outputPtr.Store(&w)
}

// Output returns the current output sink.
//
// Output is safe for concurrent use.
func Output() io.Writer {
	if p := outputPtr.Load(); p != nil {
		return *p
	}
	return os.Stdout
}

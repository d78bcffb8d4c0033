package shapes

import (
	"bytes"
	"fmt"
	"os"
	"testing"
)

func TestOutputDefaultIsStdout(t *testing.T) {
	if Output() != os.Stdout {
		t.Error("default output should be os.Stdout")
	}
}

func TestSetOutput(t *testing.T) {
	t.Cleanup(func() { SetOutput(nil) })

	var buf bytes.Buffer
	SetOutput(&buf)

	if Output() != &buf {
		t.Error("Output() did not return the sink set via SetOutput")
	}

	fmt.Fprint(Output(), "captured")
	if buf.String() != "captured" {
		t.Errorf("sink captured %q, want %q", buf.String(), "captured")
	}
}

func TestSetOutputNilRestoresStdout(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetOutput(nil)

	if Output() != os.Stdout {
		t.Error("SetOutput(nil) should restore os.Stdout")
	}
}

package conn

import (
	"bytes"
	"fmt"
	"io"
)

// Term renders frames as 24-bit ANSI color cells on a terminal. Unlike
// [Emulated] it produces visible output, so demos can be watched on a
// development machine.
//
// Term understands this module's wire format: one command byte followed by
// width×height RGB triples in scan order.
type Term struct {
	out    io.Writer
	width  int
	height int
	drawn  bool
}

// NewTerm returns a sink that renders width×height frames on out.
func NewTerm(out io.Writer, width, height int) *Term {
	return &Term{
		out:    out,
		width:  width,
		height: height,
	}
}

func (t *Term) String() string {
	return fmt.Sprintf("terminal %dx%d", t.width, t.height)
}

func (t *Term) Write(frame []byte) error {
	if t.out == nil {
		return ErrClosed
	}
	if want := 1 + t.width*t.height*3; len(frame) != want {
		return fmt.Errorf("conn: terminal expected a %d byte frame, got %d", want, len(frame))
	}

	var buf bytes.Buffer
	if t.drawn {
		// Redraw in place so animations don't scroll the terminal.
		fmt.Fprintf(&buf, "\x1b[%dA", t.height)
	}
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			i := 1 + (y*t.width+x)*3
			fmt.Fprintf(&buf, "\x1b[38;2;%d;%d;%dm██", frame[i], frame[i+1], frame[i+2])
		}
		buf.WriteString("\x1b[0m\n")
	}

	if _, err := t.out.Write(buf.Bytes()); err != nil {
		return err
	}
	t.drawn = true
	return nil
}

func (t *Term) Close() error {
	if t.out == nil {
		return ErrClosed
	}
	t.out = nil
	return nil
}

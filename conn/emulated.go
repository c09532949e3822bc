package conn

// Emulated is a no-op sink that lets client code run unmodified on machines
// without the panel attached. Writes always succeed and perform no I/O.
type Emulated struct {
	// Frames counts the number of frames written, useful in tests.
	Frames int
}

// NewEmulated returns a no-op sink.
func NewEmulated() *Emulated {
	return &Emulated{}
}

func (e *Emulated) String() string {
	return "emulated"
}

func (e *Emulated) Write(frame []byte) error {
	e.Frames++
	return nil
}

func (e *Emulated) Close() error {
	return nil
}

package conn

import (
	"fmt"
	"io"

	"go.bug.st/serial"
)

// SerialConfig describes the serial bridge configuration.
//
// This transport targets microcontroller bridges that accept raw Unicorn
// HAT HD frames over a USB CDC serial port and clock them out to the panel.
type SerialConfig struct {
	// Port is the serial device node, such as /dev/ttyACM0.
	Port string

	// BaudRate of the port. USB CDC ports ignore this, but a sane default
	// keeps real UARTs working.
	BaudRate int
}

// DefaultSerialConfig are the default serial bridge settings.
var DefaultSerialConfig = SerialConfig{
	BaudRate: 115_200,
}

type serialSink struct {
	name string
	port serial.Port
}

// OpenSerial opens the configured serial port and binds a sink to it.
func OpenSerial(config *SerialConfig) (Sink, error) {
	if config == nil {
		config = new(SerialConfig)
		*config = DefaultSerialConfig
	}
	if config.Port == "" {
		return nil, ErrNoPort
	}
	if config.BaudRate == 0 {
		config.BaudRate = DefaultSerialConfig.BaudRate
	}

	p, err := serial.Open(config.Port, &serial.Mode{
		BaudRate: config.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, err
	}

	return &serialSink{
		name: config.Port,
		port: p,
	}, nil
}

func (s *serialSink) String() string {
	return fmt.Sprintf("serial %s", s.name)
}

func (s *serialSink) Write(frame []byte) error {
	if s.port == nil {
		return ErrClosed
	}
	n, err := s.port.Write(frame)
	if err != nil {
		return err
	}
	if n != len(frame) {
		return io.ErrShortWrite
	}
	return nil
}

func (s *serialSink) Close() error {
	if s.port == nil {
		return ErrClosed
	}
	p := s.port
	s.port = nil
	return p.Close()
}

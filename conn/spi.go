package conn

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	// Port is the SPI port name, number or alias as understood by
	// [spireg.Open]. Leave empty to use the first available port.
	Port string

	// Speed is the bus clock frequency.
	Speed physic.Frequency

	// Mode is the SPI clock polarity and phase.
	Mode spi.Mode
}

// DefaultSPIConfig is the configuration the Unicorn HAT HD is rated for.
var DefaultSPIConfig = SPIConfig{
	Speed: 9 * physic.MegaHertz,
	Mode:  spi.Mode0,
}

type spiSink struct {
	port spi.Port
	conn spi.Conn
}

// OpenSPI opens the configured SPI port and binds a sink to it.
//
// The caller is responsible for initializing the host drivers first, see
// [periph.io/x/host/v3.Init].
func OpenSPI(config *SPIConfig) (Sink, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}

	p, err := spireg.Open(config.Port)
	if err != nil {
		return nil, err
	}

	s, err := NewSPI(p, config)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	return s, nil
}

// NewSPI binds a sink to an already opened SPI port.
func NewSPI(p spi.Port, config *SPIConfig) (Sink, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}
	if config.Speed == 0 {
		config.Speed = DefaultSPIConfig.Speed
	}

	c, err := p.Connect(config.Speed, config.Mode, 8)
	if err != nil {
		return nil, err
	}

	return &spiSink{
		port: p,
		conn: c,
	}, nil
}

func (s *spiSink) String() string {
	return fmt.Sprintf("SPI %s", s.conn)
}

func (s *spiSink) Write(frame []byte) error {
	if s.conn == nil {
		return ErrClosed
	}
	// Tx either transfers the whole frame or fails, there are no short
	// writes at this layer.
	return s.conn.Tx(frame, nil)
}

func (s *spiSink) Close() error {
	if s.conn == nil {
		return ErrClosed
	}
	s.conn = nil
	if c, ok := s.port.(spi.PortCloser); ok {
		return c.Close()
	}
	return nil
}

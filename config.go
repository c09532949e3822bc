package unicornhd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"

	"github.com/BeatGlow/unicornhd/conn"
)

// Transport selects the sink a Device talks to. It is fixed at construction
// time; there is no runtime hardware probing and no swapping afterwards.
type Transport string

// Supported transports.
const (
	TransportSPI      Transport = "spi"
	TransportSerial   Transport = "serial"
	TransportWS       Transport = "websocket"
	TransportTerm     Transport = "term"
	TransportEmulated Transport = "emulated"
)

// SPIOptions configure the real SPI bus transport.
type SPIOptions struct {
	Port    string `yaml:"port"`     // e.g. /dev/spidev0.0, empty for the first port
	SpeedHz int    `yaml:"speed_hz"` // 0 for the rated 9 MHz
}

// SerialOptions configure the serial bridge transport.
type SerialOptions struct {
	Port     string `yaml:"port"` // e.g. /dev/ttyACM0
	BaudRate int    `yaml:"baud_rate"`
}

// WSOptions configure the websocket simulator transport.
type WSOptions struct {
	URL string `yaml:"url"`
}

// Config describes how to open a Device.
type Config struct {
	Transport  Transport `yaml:"transport"`
	Rotation   int       `yaml:"rotation"`   // degrees: 0, 90, 180 or 270
	Brightness float64   `yaml:"brightness"` // (0, 1], 0 means full brightness

	SPI    SPIOptions    `yaml:"spi,omitempty"`
	Serial SerialOptions `yaml:"serial,omitempty"`
	WS     WSOptions     `yaml:"websocket,omitempty"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Open constructs a Device bound to the configured transport. A nil config
// opens the default SPI port.
func Open(config *Config) (*Device, error) {
	if config == nil {
		config = new(Config)
	}

	mode := config.Transport
	if mode == "" {
		mode = TransportSPI
	}

	var (
		s   conn.Sink
		err error
	)
	switch mode {
	case TransportSPI:
		cfg := conn.DefaultSPIConfig
		cfg.Port = config.SPI.Port
		if config.SPI.SpeedHz > 0 {
			cfg.Speed = physic.Frequency(config.SPI.SpeedHz) * physic.Hertz
		}
		s, err = conn.OpenSPI(&cfg)
	case TransportSerial:
		s, err = conn.OpenSerial(&conn.SerialConfig{
			Port:     config.Serial.Port,
			BaudRate: config.Serial.BaudRate,
		})
	case TransportWS:
		s, err = conn.OpenWS(&conn.WSConfig{URL: config.WS.URL})
	case TransportTerm:
		s = conn.NewTerm(os.Stdout, Width, Height)
	case TransportEmulated:
		s = conn.NewEmulated()
	default:
		return nil, fmt.Errorf("unicornhd: unknown transport %q", mode)
	}
	if err != nil {
		return nil, err
	}

	d := New(s)
	if config.Rotation != 0 {
		r, err := RotationDegrees(config.Rotation)
		if err != nil {
			_ = s.Close()
			return nil, err
		}
		_ = d.SetRotation(r)
	}
	if config.Brightness != 0 {
		if err := d.SetBrightness(config.Brightness); err != nil {
			_ = s.Close()
			return nil, err
		}
	}
	return d, nil
}

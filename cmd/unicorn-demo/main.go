// Command unicorn-demo animates a rainbow on a Unicorn HAT HD. With
// -transport term or -transport emulated it runs on machines without the
// panel attached.
package main

import (
	"flag"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/unicornhd"
	"github.com/BeatGlow/unicornhd/pixel"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML configuration file")
		transport  = flag.String("transport", "", "transport override: spi | serial | websocket | term | emulated")
		rotation   = flag.Int("rotation", -1, "rotation override in degrees")
		brightness = flag.Float64("brightness", 0, "brightness override 0..1")
		fps        = flag.Int("fps", 30, "target frames per second")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg := new(unicornhd.Config)
	if *configPath != "" {
		c, err := unicornhd.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("config load failed")
		}
		cfg = c
	}
	if *transport != "" {
		cfg.Transport = unicornhd.Transport(*transport)
	}
	if *rotation >= 0 {
		cfg.Rotation = *rotation
	}
	if *brightness > 0 {
		cfg.Brightness = *brightness
	}

	if cfg.Transport == "" || cfg.Transport == unicornhd.TransportSPI {
		if _, err := host.Init(); err != nil {
			log.Fatal().Err(err).Msg("host init failed")
		}
	}

	d, err := unicornhd.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open failed")
	}
	defer d.Close()
	log.Info().Stringer("device", d).Msg("connected")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ticker.C:
			rainbow(d, time.Since(start).Seconds())
			if err := d.Display(); err != nil {
				log.Fatal().Err(err).Msg("display refresh failed")
			}

		case sig := <-quit:
			log.Info().Stringer("signal", sig).Msg("shutting down")
			d.Clear()
			if err := d.Display(); err != nil {
				log.Warn().Err(err).Msg("final clear failed")
			}
			return
		}
	}
}

func rainbow(d *unicornhd.Device, t float64) {
	for y := 0; y < unicornhd.Height; y++ {
		for x := 0; x < unicornhd.Width; x++ {
			h := math.Mod(t/4+float64(x+y)/32, 1)
			_ = d.SetPixel(x, y, colorWheel(h))
		}
	}
}

func colorWheel(h float64) pixel.RGB {
	h *= 6
	switch {
	case h < 1:
		return pixel.RGB{R: 255, G: byte(255 * h)}
	case h < 2:
		return pixel.RGB{R: byte(255 * (2 - h)), G: 255}
	case h < 3:
		return pixel.RGB{G: 255, B: byte(255 * (h - 2))}
	case h < 4:
		return pixel.RGB{G: byte(255 * (4 - h)), B: 255}
	case h < 5:
		return pixel.RGB{R: byte(255 * (h - 4)), B: 255}
	default:
		return pixel.RGB{R: 255, B: byte(255 * (6 - h))}
	}
}

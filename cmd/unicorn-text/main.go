// Command unicorn-text scrolls a message across a Unicorn HAT HD.
package main

import (
	"flag"
	"image"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/gofont/gobold"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/unicornhd"
	"github.com/BeatGlow/unicornhd/draw"
	"github.com/BeatGlow/unicornhd/pixel"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML configuration file")
		transport  = flag.String("transport", "term", "transport: spi | serial | websocket | term | emulated")
		message    = flag.String("message", "Unicorn HAT HD", "message to scroll")
		size       = flag.Float64("size", 14, "font size in pixels")
		fps        = flag.Int("fps", 20, "scroll speed in columns per second")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

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

	if cfg.Transport == unicornhd.TransportSPI {
		if _, err := host.Init(); err != nil {
			log.Fatal().Err(err).Msg("host init failed")
		}
	}

	face, err := draw.LoadFont(gobold.TTF, *size)
	if err != nil {
		log.Fatal().Err(err).Msg("font load failed")
	}
	defer face.Close()

	d, err := unicornhd.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open failed")
	}
	defer d.Close()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	width := draw.TextWidth(face, *message)
	offset := -unicornhd.Width
	for {
		select {
		case <-ticker.C:
			d.Clear()
			draw.Text(d.FrameBuffer().Image(), image.Pt(-offset, 13), face, pixel.White, *message)
			if err := d.Display(); err != nil {
				log.Fatal().Err(err).Msg("display refresh failed")
			}
			if offset++; offset > width {
				offset = -unicornhd.Width
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

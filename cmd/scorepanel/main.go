package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"periph.io/x/conn/v3/spi/spireg"

	"scorepanel/internal/config"
	"scorepanel/internal/display"
	"scorepanel/internal/display/st7789"
	"scorepanel/internal/hw"
	"scorepanel/internal/poller"
	"scorepanel/internal/providers/statsapi"
	"scorepanel/internal/registry"
)

const (
	panelWidth  = 240
	panelHeight = 240
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "scorepanel:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load() // .env is optional

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	if err := hw.Init(); err != nil {
		return err
	}

	// Precondition: SPI must be enabled before anything is fetched.
	if err := hw.CheckSPI(cfg.Display.SPIBus); err != nil {
		logger.Error("SPI precondition failed", zap.Error(err))
		return err
	}

	port, err := spireg.Open(cfg.Display.SPIBus)
	if err != nil {
		return fmt.Errorf("opening SPI bus %s: %w", cfg.Display.SPIBus, err)
	}
	defer port.Close()

	dc, err := hw.Pin(cfg.Display.DCPin)
	if err != nil {
		return err
	}
	rst, err := hw.Pin(cfg.Display.ResetPin)
	if err != nil {
		return err
	}
	backlight, err := hw.Pin(cfg.Display.BacklightPin)
	if err != nil {
		return err
	}
	// Pins are released on every exit path, interrupt included.
	defer hw.Cleanup(logger, dc, rst, backlight)

	dev, err := st7789.NewSPI(port, dc, rst, backlight, &st7789.Opts{W: panelWidth, H: panelHeight})
	if err != nil {
		return err
	}
	defer func() {
		if err := dev.Halt(); err != nil {
			logger.Warn("halting display failed", zap.Error(err))
		}
	}()

	face := display.LoadFace(cfg.Display.FontPath, logger)
	layout := display.LayoutSingleLine
	if cfg.Display.TwoLineLayout {
		layout = display.LayoutTwoLine
	}
	renderer := display.NewRenderer(dev, face, layout, cfg.Display.Dwell, logger)

	feeds := registry.New()
	feed, err := feeds.Get(cfg.Poll.Feed)
	if err != nil {
		return err
	}
	source := statsapi.New(logger, cfg.Poll.ProbeConnectivity)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := poller.New(feed, source, renderer, poller.Config{
		Date:     cfg.Poll.Date,
		Interval: cfg.Poll.Interval,
		Cooldown: cfg.Poll.Cooldown,
		Once:     cfg.Poll.Once,
	}, logger)
	p.Run(ctx)

	logger.Info("scorepanel stopped")
	return nil
}

// Package hw owns the hardware preconditions and pin lifecycle for the
// panel: periph host bring-up, the one-time SPI availability check, and
// pin release on shutdown.
package hw

import (
	"fmt"

	"go.uber.org/zap"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// Init loads the periph host drivers. Must run before any bus or pin is
// opened.
func Init() error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("initializing periph host: %w", err)
	}
	return nil
}

// CheckSPI verifies the SPI interface is enabled by opening and
// immediately closing the bus. Failure here is fatal at startup: the poll
// loop must never start without a working display bus.
func CheckSPI(busName string) error {
	port, err := spireg.Open(busName)
	if err != nil {
		return fmt.Errorf("SPI interface %s not available (enable it via raspi-config: Interface Options -> SPI): %w", busName, err)
	}
	return port.Close()
}

// Pin resolves a GPIO pin by name, e.g. "GPIO25".
func Pin(name string) (gpio.PinIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("GPIO pin %q not found", name)
	}
	return p, nil
}

// Cleanup releases the given pins. It runs on every exit path, so errors
// are logged rather than returned.
func Cleanup(logger *zap.Logger, pins ...gpio.PinIO) {
	for _, p := range pins {
		if p == nil {
			continue
		}
		if err := p.Halt(); err != nil {
			logger.Warn("releasing pin failed", zap.String("pin", p.Name()), zap.Error(err))
		}
	}
}

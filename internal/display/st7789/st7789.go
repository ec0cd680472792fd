// Package st7789 drives an ST7789-based SPI LCD panel, such as the
// Waveshare 1.3" 240x240 HAT, over periph.io SPI and GPIO.
package st7789

import (
	"fmt"
	"image"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// ST7789 command set (subset used by this driver).
const (
	cmdSWRESET   = 0x01
	cmdSLPOUT    = 0x11
	cmdINVON     = 0x21
	cmdDISPON    = 0x29
	cmdCASET     = 0x2A
	cmdRASET     = 0x2B
	cmdRAMWR     = 0x2C
	cmdMADCTL    = 0x36
	cmdCOLMOD    = 0x3A
	cmdPORCTRL   = 0xB2
	cmdGCTRL     = 0xB7
	cmdVCOMS     = 0xBB
	cmdLCMCTRL   = 0xC0
	cmdVDVVRHEN  = 0xC2
	cmdVRHS      = 0xC3
	cmdVDVS      = 0xC4
	cmdFRCTRL2   = 0xC6
	cmdPWCTRL1   = 0xD0
	cmdPVGAMCTRL = 0xE0
	cmdNVGAMCTRL = 0xE1
)

// spidev transfers are capped at 4096 bytes on the Pi; frame pushes are
// chunked accordingly.
const maxTransfer = 4096

// Opts holds the panel geometry.
type Opts struct {
	W int
	H int
}

// Dev is an open handle to an ST7789 panel.
type Dev struct {
	c         conn.Conn
	dc        gpio.PinOut
	rst       gpio.PinOut
	backlight gpio.PinOut
	rect      image.Rectangle
}

// NewSPI opens the panel on the given SPI port. dc selects data/command;
// rst and backlight are optional and may be nil.
func NewSPI(p spi.Port, dc, rst, backlight gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil || opts.W <= 0 || opts.H <= 0 {
		return nil, fmt.Errorf("st7789: invalid panel geometry")
	}
	if dc == nil {
		return nil, fmt.Errorf("st7789: data/command pin is required")
	}

	c, err := p.Connect(40*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("st7789: connecting SPI: %w", err)
	}

	d := &Dev{
		c:         c,
		dc:        dc,
		rst:       rst,
		backlight: backlight,
		rect:      image.Rect(0, 0, opts.W, opts.H),
	}
	if err := d.init(); err != nil {
		return nil, fmt.Errorf("st7789: initializing panel: %w", err)
	}
	return d, nil
}

// Bounds returns the panel geometry.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// init runs the hardware reset and the panel bring-up sequence from the
// ST7789VW datasheet, then lights the backlight.
func (d *Dev) init() error {
	if d.rst != nil {
		if err := d.rst.Out(gpio.High); err != nil {
			return err
		}
		time.Sleep(50 * time.Millisecond)
		if err := d.rst.Out(gpio.Low); err != nil {
			return err
		}
		time.Sleep(50 * time.Millisecond)
		if err := d.rst.Out(gpio.High); err != nil {
			return err
		}
		time.Sleep(50 * time.Millisecond)
	} else if err := d.sendCommand(cmdSWRESET); err != nil {
		return err
	}

	steps := []struct {
		cmd  byte
		data []byte
	}{
		{cmdMADCTL, []byte{0x00}},
		{cmdCOLMOD, []byte{0x05}}, // 16-bit RGB565
		{cmdPORCTRL, []byte{0x0C, 0x0C, 0x00, 0x33, 0x33}},
		{cmdGCTRL, []byte{0x35}},
		{cmdVCOMS, []byte{0x19}},
		{cmdLCMCTRL, []byte{0x2C}},
		{cmdVDVVRHEN, []byte{0x01}},
		{cmdVRHS, []byte{0x12}},
		{cmdVDVS, []byte{0x20}},
		{cmdFRCTRL2, []byte{0x0F}},
		{cmdPWCTRL1, []byte{0xA4, 0xA1}},
		{cmdPVGAMCTRL, []byte{0xD0, 0x04, 0x0D, 0x11, 0x13, 0x2B, 0x3F, 0x54, 0x4C, 0x18, 0x0D, 0x0B, 0x1F, 0x23}},
		{cmdNVGAMCTRL, []byte{0xD0, 0x04, 0x0C, 0x11, 0x13, 0x2C, 0x3F, 0x44, 0x51, 0x2F, 0x1F, 0x1F, 0x20, 0x23}},
		{cmdINVON, nil},
	}
	for _, s := range steps {
		if err := d.sendCommand(s.cmd, s.data...); err != nil {
			return err
		}
	}

	if err := d.sendCommand(cmdSLPOUT); err != nil {
		return err
	}
	time.Sleep(120 * time.Millisecond)
	if err := d.sendCommand(cmdDISPON); err != nil {
		return err
	}

	if d.backlight != nil {
		if err := d.backlight.Out(gpio.High); err != nil {
			return err
		}
	}
	return nil
}

// Clear blanks the panel to black.
func (d *Dev) Clear() error {
	buf := make([]byte, d.rect.Dx()*d.rect.Dy()*2)
	return d.writeFrame(buf)
}

// Draw converts img to RGB565 and pushes it full-frame to the panel. The
// image must cover the panel bounds.
func (d *Dev) Draw(img image.Image) error {
	if !img.Bounds().Eq(d.rect) {
		return fmt.Errorf("st7789: image bounds %v do not match panel %v", img.Bounds(), d.rect)
	}
	return d.writeFrame(rgb565(img))
}

// Halt blanks the panel and switches the backlight off. Safe to call on
// every exit path.
func (d *Dev) Halt() error {
	if err := d.Clear(); err != nil {
		return err
	}
	if d.backlight != nil {
		return d.backlight.Out(gpio.Low)
	}
	return nil
}

func (d *Dev) writeFrame(buf []byte) error {
	if err := d.setWindow(d.rect); err != nil {
		return err
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	for len(buf) > 0 {
		n := len(buf)
		if n > maxTransfer {
			n = maxTransfer
		}
		if err := d.c.Tx(buf[:n], nil); err != nil {
			return fmt.Errorf("st7789: writing frame: %w", err)
		}
		buf = buf[n:]
	}
	return nil
}

// setWindow selects the drawing region and opens RAM write mode.
func (d *Dev) setWindow(r image.Rectangle) error {
	x0, x1 := uint16(r.Min.X), uint16(r.Max.X-1)
	y0, y1 := uint16(r.Min.Y), uint16(r.Max.Y-1)
	if err := d.sendCommand(cmdCASET, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1)); err != nil {
		return err
	}
	if err := d.sendCommand(cmdRASET, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1)); err != nil {
		return err
	}
	return d.sendCommand(cmdRAMWR)
}

func (d *Dev) sendCommand(cmd byte, data ...byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := d.c.Tx([]byte{cmd}, nil); err != nil {
		return fmt.Errorf("st7789: sending command 0x%02X: %w", cmd, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	if err := d.c.Tx(data, nil); err != nil {
		return fmt.Errorf("st7789: sending data for 0x%02X: %w", cmd, err)
	}
	return nil
}

// rgb565 packs an image into the panel's big-endian 16-bit pixel format.
func rgb565(img image.Image) []byte {
	b := img.Bounds()
	buf := make([]byte, 0, b.Dx()*b.Dy()*2)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			pix := (uint16(r>>8)&0xF8)<<8 | (uint16(g>>8)&0xFC)<<3 | uint16(bl>>8)>>3
			buf = append(buf, byte(pix>>8), byte(pix))
		}
	}
	return buf
}

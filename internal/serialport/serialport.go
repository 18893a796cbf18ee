// Package serialport implements the controller.Transport over a serial
// connection to the STM32 board.
package serialport

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tarm/serial"
)

// DefaultBaud is the communication speed of the STM32 controller.
const DefaultBaud = 9600

// Config holds serial connection settings.
type Config struct {
	// Device is the serial device path. Empty means autodiscover.
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`
}

// Port is an open serial connection to the LED controller.
type Port struct {
	conn   *serial.Port
	device string
}

// Open connects to the configured serial device, probing /dev/ttyACM0..8
// when no device is configured.
func Open(cfg Config) (*Port, error) {
	device := cfg.Device
	if device == "" {
		var err error
		device, err = Discover()
		if err != nil {
			return nil, err
		}
	}

	baud := cfg.Baud
	if baud == 0 {
		baud = DefaultBaud
	}

	conn, err := serial.OpenPort(&serial.Config{
		Name: device,
		Baud: baud,
		// A short read timeout lets Send drain device chatter without
		// blocking when the controller stays silent.
		ReadTimeout: 100 * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial device %s: %w", device, err)
	}

	log.Info().Str("device", device).Int("baud", baud).Msg("Serial device opened")
	return &Port{conn: conn, device: device}, nil
}

// Device returns the path of the opened serial device.
func (p *Port) Device() string {
	return p.device
}

// Send writes one frame to the device. A short write is reported as an
// error so the caller never treats a truncated frame as applied.
func (p *Port) Send(frame []byte) error {
	n, err := p.conn.Write(frame)
	if err != nil {
		return err
	}
	if n != len(frame) {
		return fmt.Errorf("short write: %d of %d bytes", n, len(frame))
	}
	p.drain()
	return nil
}

// drain reads and logs whatever the controller sends back after a frame.
// The response carries no protocol meaning.
func (p *Port) drain() {
	buf := make([]byte, 64)
	n, err := p.conn.Read(buf)
	if err != nil || n == 0 {
		return
	}
	log.Debug().Str("device", p.device).Hex("data", buf[:n]).Msg("Incoming data from controller")
}

// Close closes the serial connection.
func (p *Port) Close() error {
	return p.conn.Close()
}

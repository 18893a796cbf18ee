package serialport

import (
	"errors"
	"fmt"
	"os"
)

// ErrNoDevice is returned when autodiscovery finds no candidate device.
var ErrNoDevice = errors.New("no ttyACM device found; is the STM32 board connected?")

// Discover probes /dev/ttyACM0 through /dev/ttyACM8 and returns the first
// device that exists.
func Discover() (string, error) {
	return discover("/dev/ttyACM")
}

func discover(prefix string) (string, error) {
	for i := 0; i < 9; i++ {
		path := fmt.Sprintf("%s%d", prefix, i)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrNoDevice
}

// Command pixelctl adjusts the RGBW lighting at the pixelbar from the
// command line.
//
// Either 1 or 4 colors can be specified; a single color is applied to all 4
// groups. Colors are 1, 2, 3 or 4 hexadecimal bytes: 1 byte sets R, G, B
// and W to the same value; 2 bytes set R=G=B and W separately; 3 bytes set
// R, G, B and turn W off; 4 bytes are used as R, G, B, W as is.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pixelbar/pixeld/internal/controller"
	"github.com/pixelbar/pixeld/internal/serialport"
)

func main() {
	device := flag.String("device", "", "the serial device to connect with, autodiscovered from /dev/ttyACM0..8 when empty")
	baud := flag.Int("baud", serialport.DefaultBaud, "the serial communication speed")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = usage
	flag.Parse()

	setupLogging(*verbose)

	tokens := flag.Args()
	if len(tokens) == 0 {
		usage()
		os.Exit(2)
	}

	port, err := serialport.Open(serialport.Config{Device: *device, Baud: *baud})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open serial device")
	}
	defer port.Close()

	ctrl := controller.New(port)

	gs, err := ctrl.Apply(tokens, "cli")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set colors")
	}

	fmt.Printf("Current colors: %s\n", gs)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] color [color color color]\n\n", os.Args[0])
	fmt.Fprint(os.Stderr, strings.TrimLeft(`
Set the pixelbar RGBW lighting. Either 1 or 4 space-delimited hexadecimal
color values must be given; a single value is applied to all 4 LED groups.

Each value is 1, 2, 3 or 4 hex bytes:
  1 byte   same value for the R, G, B and W leds
  2 bytes  one value for R, G and B, the other for W
  3 bytes  R, G, B values, W turned off
  4 bytes  R, G, B, W as is

Flags:
`, "\n"))
	flag.PrintDefaults()
}

func setupLogging(verbose bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

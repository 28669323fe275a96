// neopixelctl encodes, decodes and sends NeoPixel command records without
// running the control service.
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	neopixel "neopixel_controller"
	"neopixel_controller/internal/config"
	"neopixel_controller/internal/logger"
	"neopixel_controller/internal/transport"

	"github.com/jessevdk/go-flags"
)

const (
	ApplicationVersionMajor = 0
	ApplicationVersionMinor = 1
	ApplicationVersionPatch = 0
)

var ApplicationBuildDate string

const sendTimeout = 5 * time.Second

// recordOptions are the record fields shared by encode and send.
type recordOptions struct {
	Effect     *uint8 `short:"e" long:"effect" required:"true" description:"Effect number 0-255"`
	Display    string `short:"d" long:"display" choice:"true" choice:"false" description:"Whether the strip is lit (default true)"`
	Hue        *uint8 `long:"hue" description:"Hue 0-255 (default 42)"`
	Saturation *uint8 `long:"saturation" description:"Saturation 0-255 (default 255)"`
	Value      *uint8 `long:"value" description:"Value 0-255 (default 255)"`
}

func (o recordOptions) record() neopixel.CommandRecord {
	var opts []neopixel.RecordOption
	if o.Display != "" {
		opts = append(opts, neopixel.WithDisplay(o.Display == "true"))
	}
	if o.Hue != nil {
		opts = append(opts, neopixel.WithHue(*o.Hue))
	}
	if o.Saturation != nil {
		opts = append(opts, neopixel.WithSaturation(*o.Saturation))
	}
	if o.Value != nil {
		opts = append(opts, neopixel.WithValue(*o.Value))
	}
	return neopixel.NewCommandRecord(*o.Effect, opts...)
}

type encodeCommand struct {
	recordOptions
	out io.Writer
}

func (c *encodeCommand) Execute(args []string) error {
	wire, err := c.record().MarshalBinary()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, hex.EncodeToString(wire))
	return nil
}

type decodeCommand struct {
	Positional struct {
		Hex string `description:"5-byte record as hex" required:"yes"`
	} `positional-args:"yes"`
	out io.Writer
}

func (c *decodeCommand) Execute(args []string) error {
	wire, err := hex.DecodeString(strings.TrimSpace(c.Positional.Hex))
	if err != nil {
		return fmt.Errorf("invalid hex: %w", err)
	}
	rec, err := neopixel.DecodeCommandRecord(wire)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "effect:     %d\n", rec.Effect)
	fmt.Fprintf(c.out, "display:    %t\n", rec.Display)
	fmt.Fprintf(c.out, "hue:        %d\n", rec.Hue)
	fmt.Fprintf(c.out, "saturation: %d\n", rec.Saturation)
	fmt.Fprintf(c.out, "value:      %d\n", rec.Value)
	return nil
}

type sendCommand struct {
	recordOptions
	Port  string   `short:"p" long:"port" required:"true" description:"Gateway serial port, e.g. /dev/ttyUSB0"`
	Baud  int      `short:"b" long:"baud" default:"115200" description:"Serial baud rate"`
	Peers []string `long:"peer" required:"true" description:"Receiver hardware address (repeatable)"`
	out   io.Writer
	debug func() bool
}

func (c *sendCommand) Execute(args []string) error {
	addrs := make([]neopixel.PeerAddr, 0, len(c.Peers))
	for _, p := range c.Peers {
		a, err := neopixel.ParsePeerAddr(p)
		if err != nil {
			return err
		}
		addrs = append(addrs, a)
	}
	if len(addrs) > neopixel.MaxPeers {
		return fmt.Errorf("at most %d peers, got %d", neopixel.MaxPeers, len(addrs))
	}

	level := logger.WarnLevel
	if c.debug != nil && c.debug() {
		level = logger.DebugLevel
	}
	log := logger.Get(level)

	link, err := transport.OpenSerial(config.GatewayConfig{
		Driver:       config.DriverSerial,
		Port:         c.Port,
		Baud:         c.Baud,
		WriteTimeout: time.Second,
	}, log)
	if err != nil {
		return err
	}
	defer link.Close()

	rec := c.record()
	wire, err := rec.MarshalBinary()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	var errs []error
	for _, a := range addrs {
		if err := link.Send(ctx, a, wire); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", a, err))
			continue
		}
		fmt.Fprintf(c.out, "sent %x to %s\n", wire, a)
	}
	return errors.Join(errs...)
}

type Options struct {
	Debug       []bool `short:"D" long:"debug" description:"Debug logging"`
	ShowVersion bool   `short:"V" long:"version" description:"Show application version"`
}

func versionString() string {
	date := ApplicationBuildDate
	if date == "" {
		date = "YYYY-mm-dd_HH:MM:SS"
	}
	return fmt.Sprintf("neopixelctl %d.%d.%d (%s) record schema v%d, channel %d, max peers %d",
		ApplicationVersionMajor, ApplicationVersionMinor, ApplicationVersionPatch, date,
		neopixel.SchemaVersion, neopixel.Channel, neopixel.MaxPeers)
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true

	debug := func() bool { return len(opts.Debug) > 0 }
	commands := []struct {
		name, short, long string
		data              interface{}
	}{
		{"encode", "Encode a record", "Print the 5-byte wire form of a record as hex.", &encodeCommand{out: stdout}},
		{"decode", "Decode a record", "Print the fields of a hex wire record.", &decodeCommand{out: stdout}},
		{"send", "Send a record", "Encode a record and write it to each peer through the gateway.", &sendCommand{out: stdout, debug: debug}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			fmt.Fprintf(stderr, "ERROR: %s\n", err)
			return 1
		}
	}

	if _, err := parser.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return 1
	}
	if opts.ShowVersion {
		fmt.Fprintln(stdout, versionString())
		return 0
	}
	if parser.Active == nil {
		parser.WriteHelp(stderr)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

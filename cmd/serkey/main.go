package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/macplus/serkey"
)

func main() {
	cfg := serkey.DefaultConfig()
	var listPorts bool

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <port>\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Send key presses and releases to a Mac Plus keyboard bridge on <port>.")
		flag.PrintDefaults()
	}
	flag.BoolVar(&cfg.CapsIsOption, "o", false, "shorthand for -caps-is-option")
	flag.BoolVar(&cfg.CapsIsOption, "caps-is-option", false, "send the Option key when the host's Caps Lock key is pressed")
	flag.BoolVar(&cfg.CapsIsCommand, "c", false, "shorthand for -caps-is-command")
	flag.BoolVar(&cfg.CapsIsCommand, "caps-is-command", false, "send the Command key when the host's Caps Lock key is pressed")
	flag.StringVar(&cfg.Input, "input", cfg.Input, "input source: window, evdev or replay")
	flag.StringVar(&cfg.Device, "device", "", "evdev keyboard path, e.g. /dev/input/event3 (with -input evdev)")
	flag.BoolVar(&cfg.Grab, "grab", false, "take the evdev keyboard exclusively")
	flag.StringVar(&cfg.Script, "script", "", "key script to replay, - for stdin (with -input replay)")
	flag.DurationVar(&cfg.IdleDelay, "idle", cfg.IdleDelay, "pause between input polls")
	flag.IntVar(&cfg.BaudRate, "baud", cfg.BaudRate, "serial line rate")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "trace, debug, info, warn or error")
	flag.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
	flag.BoolVar(&listPorts, "list-ports", false, "print the serial ports on this host and exit")
	flag.Parse()

	logger := serkey.Logger()

	if listPorts {
		ports, err := serkey.ListSerialPorts()
		if err != nil {
			logger.Fatal().Err(err).Msg("listing serial ports")
		}
		for _, p := range ports {
			fmt.Println(p)
		}
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	cfg.PortPath = flag.Arg(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serkey.Run(ctx, cfg); err != nil {
		stop()
		logger.Fatal().Err(err).Msg("serkey")
	}
}

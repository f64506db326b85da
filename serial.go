package serkey

import (
	"fmt"

	"go.bug.st/serial"
)

// The bridge firmware listens at 230400 8N1.
var defaultMode = &serial.Mode{
	BaudRate: defaultBaudRate,
	DataBits: 8,
	Parity:   serial.NoParity,
	StopBits: serial.OneStopBit,
}

func serialMode(baud int) *serial.Mode {
	mode := *defaultMode
	if baud > 0 {
		mode.BaudRate = baud
	}
	return &mode
}

func openSerialPort(path string, baud int) (serial.Port, error) {
	mode := serialMode(baud)
	port, err := serial.Open(path, mode)
	if err != nil {
		serialLogger.Error().
			Err(err).
			Str("path", path).
			Interface("mode", mode).
			Msg("Error opening serial port")
		if ports, lerr := serial.GetPortsList(); lerr == nil && len(ports) > 0 {
			serialLogger.Info().Strs("available", ports).Msg("Serial ports present on this host")
		}
		return nil, fmt.Errorf("open serial port %s: %w", path, err)
	}
	serialLogger.Info().
		Str("path", path).
		Int("baud", mode.BaudRate).
		Msg("Serial port open")
	return port, nil
}

// ListSerialPorts returns the serial ports the OS knows about.
func ListSerialPorts() ([]string, error) {
	return serial.GetPortsList()
}

//go:build tinygo

package uartlog

import (
	"machine"
)

// NewTinyGo creates a new serial Logger for TinyGo systems writing
// through the given UART. The UART must already be configured.
// If u is nil, the default serial output (machine.Serial) is used, which
// is the USB CDC console on boards that have one.
func NewTinyGo(c Config, u *machine.UART) (*Logger, error) {
	if u == nil {
		return NewWithTransmitter(c, NewWriterTransmitter(machine.Serial))
	}
	return NewWithTransmitter(c, NewWriterTransmitter(u))
}

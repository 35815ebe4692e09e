//go:build !tinygo

package uartlog

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/uart"
	"periph.io/x/conn/v3/uart/uartreg"
	"periph.io/x/host/v3"
)

// uartTransmitter wraps a conn.Conn to satisfy the Transmitter interface.
type uartTransmitter struct {
	conn conn.Conn
}

func (t *uartTransmitter) Transmit(p []byte) error {
	// TX only; nothing is read back from the peripheral.
	return t.conn.Tx(p, nil)
}

// SerialConfig holds the configuration for the Linux/periph.io logger.
type SerialConfig struct {
	Config
	// PortName is the UART port name or device path (e.g. "/dev/ttyAMA0").
	// Defaults to "/dev/ttyAMA0" if not provided.
	PortName string
	// BaudRate is the line rate in bits per second.
	// Defaults to 115200 if not provided.
	BaudRate int
}

// New creates and initializes a new serial Logger for Linux systems.
// It applies configuration defaults, opens the UART port using periph.io
// and configures it for 8N1 with no flow control.
// It returns the initialized Logger or an error if hardware
// initialization fails.
func New(c SerialConfig) (*Logger, error) {
	// 1. Initialize periph.io host
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph.io host: %w", err)
	}

	// 2. Default UART path
	if c.PortName == "" {
		c.PortName = "/dev/ttyAMA0"
	}

	// 3. Open the UART port
	p, err := uartreg.Open(c.PortName)
	if err != nil {
		return nil, fmt.Errorf("failed to open UART port: %w", err)
	}

	// 4. Default baud rate
	if c.BaudRate == 0 {
		c.BaudRate = 115200
	}

	// 5. Create the connection (8 data bits, no parity, 1 stop bit)
	bus, err := p.Connect(physic.Frequency(c.BaudRate)*physic.Hertz,
		uart.One, uart.NoParity, uart.NoFlow, 8)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to configure UART connection: %w", err)
	}

	// 6. Call the core constructor
	logger, err := NewWithTransmitter(c.Config, &uartTransmitter{conn: bus})
	if err != nil {
		p.Close()
		return nil, err
	}

	// Store the port closer so we can close it later
	logger.port = p
	return logger, nil
}

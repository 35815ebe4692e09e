package uartlog

import (
	"io"
)

// writerTransmitter adapts an io.Writer to the Transmitter interface.
type writerTransmitter struct {
	w io.Writer
}

// NewWriterTransmitter wraps w so it can serve as the serial output of a
// Logger. Useful for tests and for logging to a console on hosted
// targets (e.g. os.Stdout).
func NewWriterTransmitter(w io.Writer) Transmitter {
	return &writerTransmitter{w: w}
}

func (t *writerTransmitter) Transmit(p []byte) error {
	_, err := t.w.Write(p)
	return err
}

package uartlog

// Transmitter represents the serial peripheral log output is written to.
type Transmitter interface {
	// Transmit sends p over the peripheral and blocks until every byte
	// has been clocked out. No timeout is imposed at this layer; if the
	// hardware stalls, the caller stalls.
	Transmit(p []byte) error
}

package uartlog

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
)

var (
	ErrPkg          = errors.New("uartlog")
	ErrInvalidLevel = errors.New("invalid log level")
)

// DefaultBufferSize is the default capacity of the render buffer.
// Formatted output longer than the capacity is silently truncated.
const DefaultBufferSize = 128

// Config holds the core logger configuration.
type Config struct {
	// Level is the initial global threshold. Messages with a severity
	// lower than the threshold are ignored.
	// The zero value is LevelDebug (everything passes).
	Level Level
	// BufferSize is the render buffer capacity in bytes.
	// Defaults to DefaultBufferSize if not provided.
	BufferSize int
}

// Logger formats severity-tagged messages and hands them to a
// Transmitter. It owns the global threshold and the module registry.
//
// A Logger is not safe for concurrent use: the design assumes a single
// logical thread of control, as on bare-metal targets. If multiple
// execution contexts log through the same instance, serialization is the
// caller's responsibility.
type Logger struct {
	tr      Transmitter
	level   Level
	size    int
	scratch []byte
	modules map[string]*Module
	port    io.Closer
}

// NewWithTransmitter creates a new Logger writing through the provided
// Transmitter. It applies configuration defaults and validates the
// initial threshold.
func NewWithTransmitter(c Config, tr Transmitter) (*Logger, error) {
	if tr == nil {
		return nil, fmt.Errorf("%w: transmitter not configured", ErrPkg)
	}
	if c.BufferSize == 0 {
		c.BufferSize = DefaultBufferSize
	}
	if c.BufferSize < 0 {
		return nil, fmt.Errorf("%w: buffer size must be positive", ErrPkg)
	}
	if c.Level < LevelDebug || c.Level >= levelCount {
		return nil, fmt.Errorf("%w: %w: %d", ErrPkg, ErrInvalidLevel, c.Level)
	}

	return &Logger{
		tr:      tr,
		level:   c.Level,
		size:    c.BufferSize,
		scratch: make([]byte, 0, c.BufferSize),
		modules: make(map[string]*Module),
	}, nil
}

func (l *Logger) String() string {
	return fmt.Sprintf("UARTLogger(Level=%s, BufferSize=%d, Modules=%d)",
		l.level, l.size, len(l.modules))
}

// SetLevel sets the global logging threshold.
// Only the four real levels are accepted; anything else, LevelOff
// included, is rejected with ErrInvalidLevel. Use Disable to switch
// logging off entirely.
func (l *Logger) SetLevel(level Level) error {
	if level < LevelDebug || level >= levelCount {
		return fmt.Errorf("%w: %w: %d", ErrPkg, ErrInvalidLevel, level)
	}
	l.level = level
	return nil
}

// Disable raises the global threshold to LevelOff, suppressing every
// message including errors, until SetLevel is called again.
func (l *Logger) Disable() {
	l.level = LevelOff
}

// Level returns the current global threshold.
func (l *Logger) Level() Level {
	return l.level
}

// Close releases the underlying serial port, if the Logger owns one.
// Loggers built with NewWithTransmitter own nothing and Close is a no-op.
func (l *Logger) Close() error {
	if l.port != nil {
		return l.port.Close()
	}
	return nil
}

// Debugf logs a DEBUG-level message through the global threshold.
func (l *Logger) Debugf(format string, args ...any) {
	if !shouldLog(LevelDebug, l.level) {
		return
	}
	l.emit(LevelDebug, "", format, args...)
}

// Infof logs an INFO-level message through the global threshold.
func (l *Logger) Infof(format string, args ...any) {
	if !shouldLog(LevelInfo, l.level) {
		return
	}
	l.emit(LevelInfo, "", format, args...)
}

// Warningf logs a WARNING-level message through the global threshold.
func (l *Logger) Warningf(format string, args ...any) {
	if !shouldLog(LevelWarning, l.level) {
		return
	}
	l.emit(LevelWarning, "", format, args...)
}

// Errorf logs an ERROR-level message through the global threshold.
func (l *Logger) Errorf(format string, args ...any) {
	if !shouldLog(LevelError, l.level) {
		return
	}
	l.emit(LevelError, "", format, args...)
}

// Rawf renders and transmits the formatted text as-is: no filtering, no
// severity tag, no color, no caller annotation. Useful for banners and
// literal newlines.
func (l *Logger) Rawf(format string, args ...any) {
	buf := fmt.Appendf(l.scratch[:0], format, args...)
	if len(buf) > l.size {
		buf = buf[:l.size]
	}
	// The transmit status is not consulted (spec'd fire-and-forget).
	_ = l.tr.Transmit(buf)
}

// emit renders one decorated line into the bounded buffer and hands it
// to the transmitter. The filter check has already happened in the
// exported wrappers, so emit always pays the formatting cost.
//
// Line layout: <color><TAG>[<module>][<func>:<line>]: <reset><user text>
// The [<module>] segment is omitted for global logging.
func (l *Logger) emit(level Level, module, format string, args ...any) {
	fn, line := caller()

	buf := append(l.scratch[:0], level.color()...)
	buf = append(buf, level.tag()...)
	if module != "" {
		buf = append(buf, '[')
		buf = append(buf, module...)
		buf = append(buf, ']')
	}
	buf = fmt.Appendf(buf, "[%s:%d]: ", fn, line)
	buf = append(buf, colorReset...)
	buf = fmt.Appendf(buf, format, args...)

	if len(buf) > l.size {
		buf = buf[:l.size]
	}
	_ = l.tr.Transmit(buf)
}

// caller resolves the function name and line of the log call site.
// The call site is three frames up: caller -> emit -> exported wrapper
// -> call site, so every wrapper must call emit directly.
func caller() (string, int) {
	pc, _, line, ok := runtime.Caller(3)
	if !ok {
		// TinyGo targets without debug info land here.
		return "unknown", 0
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown", line
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name, line
}

package uartlog

// Level represents the severity of a log message.
// LevelDebug is the most verbose level.
type Level int

const (
	// LevelDebug is for detailed debugging information (most verbose)
	LevelDebug Level = iota
	// LevelInfo is for general informational messages
	LevelInfo
	// LevelWarning is for conditions that do not stop execution
	LevelWarning
	// LevelError is for critical errors
	LevelError
	// levelCount bounds the range of real levels (used for validation)
	levelCount
	// LevelOff disables all logging output. It compares greater than
	// every real level, so a threshold of LevelOff suppresses everything,
	// errors included.
	LevelOff Level = 99
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelOff:
		return "OFF"
	default:
		return "unknown"
	}
}

// ANSI escape sequences for terminal colors.
const (
	colorReset  = "\x1B[0m"
	colorRed    = "\x1B[31m"
	colorGreen  = "\x1B[32m"
	colorYellow = "\x1B[33m"
	colorWhite  = "\x1B[37m"
)

// tag returns the severity tag prepended to every decorated line.
func (l Level) tag() string {
	switch l {
	case LevelDebug:
		return "[DBG]"
	case LevelInfo:
		return "[INF]"
	case LevelWarning:
		return "[WRN]"
	case LevelError:
		return "[ERR]"
	default:
		return "[???]"
	}
}

// color returns the ANSI color sequence for the severity.
func (l Level) color() string {
	switch l {
	case LevelDebug:
		return colorWhite
	case LevelInfo:
		return colorGreen
	case LevelWarning:
		return colorYellow
	case LevelError:
		return colorRed
	default:
		return colorReset
	}
}

// shouldLog reports whether a message of severity s passes the threshold.
// With threshold LevelOff this is false for every real severity.
func shouldLog(s, threshold Level) bool {
	return s >= threshold
}

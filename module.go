package uartlog

// Module is a named, independently filterable logging source.
// Each module owns its own threshold, so one noisy subsystem can be
// silenced without touching the rest of the firmware.
type Module struct {
	name   string
	logger *Logger
	level  Level
}

// RegisterModule creates the logging module named name with the given
// initial threshold and returns its handle.
//
// A module must only be registered once. Registering the same name again
// replaces the previous instance and orphans any outstanding handles;
// this is caller misuse the registry does not guard against. Other call
// sites that want to log through an existing module should use
// DeclareModule instead.
func (l *Logger) RegisterModule(name string, level Level) *Module {
	m := &Module{
		name:   name,
		logger: l,
		level:  level,
	}
	l.modules[name] = m
	return m
}

// DeclareModule returns the handle of an already registered module, or
// nil if no module with that name exists. Use it to log through a module
// registered elsewhere, or to adjust another module's threshold without
// changing which module the current code logs through.
func (l *Logger) DeclareModule(name string) *Module {
	return l.modules[name]
}

// SetLevel unconditionally overwrites the module threshold.
// Unlike Logger.SetLevel it performs no validation: LevelOff is accepted
// as a deliberate disable signal. Calling it on a nil handle is a no-op.
func (m *Module) SetLevel(level Level) {
	if m != nil {
		m.level = level
	}
}

// Level returns the module's current threshold.
func (m *Module) Level() Level {
	return m.level
}

// Name returns the module name used as log prefix.
func (m *Module) Name() string {
	return m.name
}

// Debugf logs a DEBUG-level message through the module's threshold.
func (m *Module) Debugf(format string, args ...any) {
	if !shouldLog(LevelDebug, m.level) {
		return
	}
	m.logger.emit(LevelDebug, m.name, format, args...)
}

// Infof logs an INFO-level message through the module's threshold.
func (m *Module) Infof(format string, args ...any) {
	if !shouldLog(LevelInfo, m.level) {
		return
	}
	m.logger.emit(LevelInfo, m.name, format, args...)
}

// Warningf logs a WARNING-level message through the module's threshold.
func (m *Module) Warningf(format string, args ...any) {
	if !shouldLog(LevelWarning, m.level) {
		return
	}
	m.logger.emit(LevelWarning, m.name, format, args...)
}

// Errorf logs an ERROR-level message through the module's threshold.
func (m *Module) Errorf(format string, args ...any) {
	if !shouldLog(LevelError, m.level) {
		return
	}
	m.logger.emit(LevelError, m.name, format, args...)
}

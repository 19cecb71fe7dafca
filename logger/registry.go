package logger

import (
	"sync"
)

// registry is the global named-logger registry.
var registry = &loggerRegistry{
	loggers: make(map[string]*Logger),
}

type loggerRegistry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
	derived map[string]bool
}

// reset drops loggers derived from a previous global logger so that Get
// picks up the new one. Explicitly registered loggers are kept.
func (r *loggerRegistry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name := range r.derived {
		delete(r.loggers, name)
	}
	r.derived = nil
}

// Register stores a named logger in the registry.
func Register(name string, l *Logger) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.loggers[name] = l
	delete(registry.derived, name)
}

// Get retrieves a named logger. If the name is not registered it returns the
// global logger tagged with the requested component name.
func Get(name string) *Logger {
	registry.mu.RLock()
	l, ok := registry.loggers[name]
	registry.mu.RUnlock()
	if ok {
		return l
	}

	l = GetGlobalLogger().WithComponent(name)
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if existing, ok := registry.loggers[name]; ok {
		return existing
	}
	registry.loggers[name] = l
	if registry.derived == nil {
		registry.derived = make(map[string]bool)
	}
	registry.derived[name] = true
	return l
}

// RegisterDefaults registers a set of named loggers from the global config.
func RegisterDefaults(names ...string) {
	for _, name := range names {
		Register(name, GetGlobalLogger().WithComponent(name))
	}
}

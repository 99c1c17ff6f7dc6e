package logger

import (
	"sync"
)

// Named loggers let a package install its logger once (sequence registers
// its tracer under "sequence") and let others find it by name.
var (
	namedMu sync.RWMutex
	named   = make(map[string]*Logger)
)

// Register installs l under name, replacing any previous entry.
func Register(name string, l *Logger) {
	namedMu.Lock()
	named[name] = l
	namedMu.Unlock()
}

// Unregister removes name. Removing an unknown name is a no-op.
func Unregister(name string) {
	namedMu.Lock()
	delete(named, name)
	namedMu.Unlock()
}

// Lookup returns the logger registered under name.
func Lookup(name string) (*Logger, bool) {
	namedMu.RLock()
	defer namedMu.RUnlock()
	l, ok := named[name]
	return l, ok
}

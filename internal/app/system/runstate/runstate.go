// Package runstate holds the process-wide connectivity state shared between
// the startup sequence and the status endpoints.
//
// The flags are written only by the startup sequence and by the MongoDB
// heartbeat callbacks; everything else reads them. Keeping them behind one
// struct (instead of package-level booleans) makes that single-writer
// discipline visible at the call sites.
package runstate

import (
	"sync"
	"time"
)

// Flags tracks connectivity to the document store and the mail relay, plus
// static server metadata set once the listener is bound.
type Flags struct {
	mu      sync.RWMutex
	db      bool
	mail    bool
	port    int
	started time.Time
}

// New returns Flags with both connectivity flags false.
func New() *Flags {
	return &Flags{started: time.Now().UTC()}
}

// SetDB records document store connectivity.
func (f *Flags) SetDB(ok bool) {
	f.mu.Lock()
	f.db = ok
	f.mu.Unlock()
}

// SetMail records mail relay connectivity.
func (f *Flags) SetMail(ok bool) {
	f.mu.Lock()
	f.mail = ok
	f.mu.Unlock()
}

// SetPort records the port the HTTP listener actually bound.
func (f *Flags) SetPort(port int) {
	f.mu.Lock()
	f.port = port
	f.mu.Unlock()
}

// DB reports document store connectivity.
func (f *Flags) DB() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.db
}

// Mail reports mail relay connectivity.
func (f *Flags) Mail() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.mail
}

// Port returns the bound listening port, or 0 before the listener is up.
func (f *Flags) Port() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.port
}

// Uptime returns how long the process has been running.
func (f *Flags) Uptime() time.Duration {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return time.Since(f.started)
}

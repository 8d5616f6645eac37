// Package perf records how long rendering steps take. It is off unless
// TABLINE_PERF=1, in which case lines are appended to perf.log in the state
// directory.
package perf

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/b/tmux-tabline/pkg/paths"
)

var (
	enabled  = os.Getenv("TABLINE_PERF") == "1"
	out      io.Writer
	logMutex sync.Mutex
	openOnce sync.Once
)

// writer opens the log on first use so importing the package never touches
// the filesystem.
func writer() io.Writer {
	openOnce.Do(func() {
		if out != nil {
			return
		}
		if _, err := paths.EnsureStateDir(); err != nil {
			enabled = false
			return
		}
		f, err := os.OpenFile(paths.StatePath("perf.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			enabled = false
			return
		}
		out = f
	})
	return out
}

// SetOutput enables timing and redirects it to w. A nil w disables it.
func SetOutput(w io.Writer) {
	logMutex.Lock()
	defer logMutex.Unlock()
	out = w
	enabled = w != nil
	openOnce.Do(func() {})
}

// Timer tracks elapsed time for a named operation
type Timer struct {
	name  string
	start time.Time
}

// Start begins timing an operation
func Start(name string) *Timer {
	return &Timer{name: name, start: time.Now()}
}

// Stop ends timing and logs the result
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Log("%s: %v", t.name, elapsed)
	return elapsed
}

// Track times fn.
func Track(name string, fn func()) time.Duration {
	t := Start(name)
	fn()
	return t.Stop()
}

// Log writes a custom message to the perf log
func Log(format string, args ...interface{}) {
	if !enabled {
		return
	}
	logMutex.Lock()
	defer logMutex.Unlock()
	w := writer()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "%s: %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}

// IsEnabled returns whether performance logging is enabled
func IsEnabled() bool {
	return enabled
}

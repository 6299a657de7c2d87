/*package logging holds the process-wide logger used by Copter's packages.*/
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
)

type Flag int

const (
	Nil Flag = iota
	Performance
	Debug
)

// This is handled this way so that a logger doesn't need to be passed to
// literally every function in the project.
var (
	Mode Flag = Nil

	mu     sync.RWMutex
	global = discard()
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Setup directs log output to w. Debug records are only written when mode is
// Debug. Passing a nil writer restores the default, which discards
// everything.
func Setup(w io.Writer, mode Flag) {
	mu.Lock()
	defer mu.Unlock()

	Mode = mode
	if w == nil {
		global = discard()
		return
	}

	level := slog.LevelInfo
	if mode == Debug {
		level = slog.LevelDebug
	}
	global = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: mode == Debug,
	}))
}

// L returns the current logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// MemString returns a string containing various statistics on the current
// memory usage of the process.
func MemString() string {
	ms := runtime.MemStats{}
	runtime.ReadMemStats(&ms)
	return fmt.Sprintf(
		"Alloc - %d MB; Sys - %d MB Integrated - %d MB",
		ms.Alloc>>20, ms.Sys>>20, ms.TotalAlloc>>20,
	)
}

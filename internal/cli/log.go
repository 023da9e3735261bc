// Package cli implements the treemap command-line interface.
//
// The commands scan a directory into a size-weighted tree, explore it
// interactively (view), render it to files (render) or print its hierarchy
// (tree). Rendered artifacts are kept in a file cache that the cache command
// manages. The CLI is built on cobra and logs through charmbracelet/log.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The root
// command stores the logger in the command context with log.WithContext,
// so helpers deep in a command pick it up with log.FromContext.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger. Timestamps use "15:04:05.00".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long a step took once it finishes.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with an elapsed field rounded to the
// millisecond, followed by keyvals:
//
//	14:32:01.45 INFO scanned path=./src nodes=120 elapsed=35ms
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

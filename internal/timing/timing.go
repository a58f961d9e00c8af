// SPDX-License-Identifier: EPL-2.0

// Package timing measures pipeline phases and logs them at debug level.
package timing

import (
	"context"
	"log/slog"
	"strconv"
	"time"
)

// Stopwatch times a single named phase.
type Stopwatch struct {
	log   *slog.Logger
	phase string
	start time.Time
	now   func() time.Time
}

// Start begins timing phase. A nil logger uses slog.Default().
func Start(log *slog.Logger, phase string) *Stopwatch {
	return start(log, phase, time.Now)
}

func start(log *slog.Logger, phase string, now func() time.Time) *Stopwatch {
	if log == nil {
		log = slog.Default()
	}
	return &Stopwatch{log: log, phase: phase, start: now(), now: now}
}

func (s *Stopwatch) Elapsed() time.Duration {
	return s.now().Sub(s.start)
}

// Stop logs the elapsed time and returns it. Calling Stop again logs the
// time since Start once more.
func (s *Stopwatch) Stop() time.Duration {
	d := s.Elapsed()
	s.log.LogAttrs(context.Background(), slog.LevelDebug, "phase done",
		slog.String("phase", s.phase),
		slog.String("elapsed", Seconds(d)),
	)
	return d
}

// Seconds formats d as seconds with millisecond precision, e.g. "1.250s".
func Seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64) + "s"
}

/*
 * Copyright (c) 2026 Francesco Biribo'
 *
 * Permission to use, copy, modify, and distribute this software for any purpose with or without fee is hereby granted, provided that the above copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is something that can print, using Logf, a format string
type Logger interface {
	Logf(format string, v ...any)
}

// Init configures the process-wide logrus logger: JSON output, written to
// the given file when one is configured and it can be opened, stdout
// otherwise.
func Init(logFile string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
	log.SetOutput(os.Stdout)

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Warnf("Failed to open log file (%s), using stdout: %v", logFile, err)
		} else {
			log.SetOutput(f)
		}
	}

	log.Info("Logger initialized")
	return log
}

// subsystemLogger scopes every line it writes with the subsystem's name
type subsystemLogger struct {
	name string
	log  *logrus.Logger
}

func (s *subsystemLogger) Logf(format string, v ...any) {
	s.log.WithField("subsystem", s.name).Infof(format, v...)
}

// For registers a named subsystem, returning a Logger the services can
// carry around without depending on logrus directly.
func For(log *logrus.Logger, name string) Logger {
	return &subsystemLogger{name: name, log: log}
}

// Copyright 2025 Supabase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package servenv holds the process environment shared by minisql commands.
package servenv

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/multigres/minisql/go/viperutil"

	"github.com/spf13/pflag"
)

// Logger configures the process-wide slog logger from flags, environment
// and config file. Command output goes to stdout, so logs default to stderr.
type Logger struct {
	// Logging configuration flags
	logLevel  viperutil.Value[string]
	logFormat viperutil.Value[string]
	logOutput viperutil.Value[string]

	// Targets for the "stdout" and "stderr" outputs
	stdout io.Writer
	stderr io.Writer

	// Internal state
	loggerOnce sync.Once
	logger     *slog.Logger
	file       *os.File
	loggerMu   sync.Mutex

	// Hooks for customizing logging behavior
	loggingSetupHooks []func(*slog.Logger)
	loggingHooksMu    sync.Mutex
}

func NewLogger(reg *viperutil.Registry) *Logger {
	return &Logger{
		logLevel: viperutil.Configure(reg, "log.level", viperutil.Options[string]{
			Default:  "warn",
			FlagName: "log-level",
			EnvVars:  []string{"MINISQL_LOG_LEVEL"},
		}),
		logFormat: viperutil.Configure(reg, "log.format", viperutil.Options[string]{
			Default:  "text",
			FlagName: "log-format",
			EnvVars:  []string{"MINISQL_LOG_FORMAT"},
		}),
		logOutput: viperutil.Configure(reg, "log.output", viperutil.Options[string]{
			Default:  "stderr",
			FlagName: "log-output",
			EnvVars:  []string{"MINISQL_LOG_OUTPUT"},
		}),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// RegisterFlags registers logging-related command line flags.
// This must be called before ParseFlags if using the logging system.
func (lg *Logger) RegisterFlags(fs *pflag.FlagSet) {
	fs.String("log-level", lg.logLevel.Default(), "Log level (debug, info, warn, error)")
	fs.String("log-format", lg.logFormat.Default(), "Log format (json, text)")
	fs.String("log-output", lg.logOutput.Default(), "Log output (stdout, stderr, or file path)")
	viperutil.BindFlags(fs, lg.logLevel, lg.logFormat, lg.logOutput)
}

// SetWriters replaces the writers used for the "stdout" and "stderr" log
// outputs. It has no effect once SetupLogging has run.
func (lg *Logger) SetWriters(stdout, stderr io.Writer) {
	lg.loggerMu.Lock()
	defer lg.loggerMu.Unlock()
	lg.stdout = stdout
	lg.stderr = stderr
}

// OnLoggingSetup registers a callback function to be called after the logger is created.
// This allows applications to customize the logger behavior.
func (lg *Logger) OnLoggingSetup(f func(*slog.Logger)) {
	lg.loggingHooksMu.Lock()
	defer lg.loggingHooksMu.Unlock()
	lg.loggingSetupHooks = append(lg.loggingSetupHooks, f)
}

// SetupLogging initializes the logger based on the configured flags.
// This should be called after flags are parsed but before any logging occurs.
func (lg *Logger) SetupLogging() {
	lg.loggerOnce.Do(func() {
		levelStr := lg.logLevel.Get()
		level := parseLevel(levelStr)

		lg.loggerMu.Lock()
		stdout, stderr := lg.stdout, lg.stderr
		lg.loggerMu.Unlock()

		// Determine output writer with fallback to stderr
		var output io.Writer
		outputStr := lg.logOutput.Get()
		if outputStr == "" {
			outputStr = "stderr"
		}
		switch strings.ToLower(outputStr) {
		case "stdout":
			output = stdout
		case "stderr":
			output = stderr
		default:
			// Treat as file path
			file, err := os.OpenFile(outputStr, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				output = stderr
			} else {
				output = file
				lg.file = file
			}
		}

		opts := &slog.HandlerOptions{Level: level}

		var handler slog.Handler
		formatStr := lg.logFormat.Get()
		switch strings.ToLower(formatStr) {
		case "json":
			handler = slog.NewJSONHandler(output, opts)
		default:
			handler = slog.NewTextHandler(output, opts)
		}

		newLogger := slog.New(handler)
		slog.SetDefault(newLogger)

		lg.loggerMu.Lock()
		lg.logger = newLogger
		lg.loggerMu.Unlock()

		lg.fireLoggingSetupHooks(newLogger)

		newLogger.Info("logging initialized",
			"level", levelStr,
			"format", formatStr,
			"output", outputStr,
		)
	})
}

// parseLevel maps a level name to a slog level, defaulting to warn.
func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// GetLogger returns the configured logger instance.
// SetupLogging must be called before this function.
func (lg *Logger) GetLogger() *slog.Logger {
	lg.loggerMu.Lock()
	defer lg.loggerMu.Unlock()
	if lg.logger == nil {
		// Return default slog logger if our logger hasn't been set up yet
		return slog.Default()
	}
	return lg.logger
}

// Close closes the log file, if logging goes to one.
func (lg *Logger) Close() error {
	lg.loggerMu.Lock()
	defer lg.loggerMu.Unlock()
	if lg.file == nil {
		return nil
	}
	err := lg.file.Close()
	lg.file = nil
	return err
}

// fireLoggingSetupHooks calls all registered logging setup hooks.
func (lg *Logger) fireLoggingSetupHooks(l *slog.Logger) {
	lg.loggingHooksMu.Lock()
	hooks := make([]func(*slog.Logger), len(lg.loggingSetupHooks))
	copy(hooks, lg.loggingSetupHooks)
	lg.loggingHooksMu.Unlock()

	for _, hook := range hooks {
		hook(l)
	}
}

// GetLogLevel returns the current log level setting.
func (lg *Logger) GetLogLevel() string {
	return lg.logLevel.Get()
}

// GetLogFormat returns the current log format setting.
func (lg *Logger) GetLogFormat() string {
	return lg.logFormat.Get()
}

// GetLogOutput returns the current log output setting.
func (lg *Logger) GetLogOutput() string {
	return lg.logOutput.Get()
}

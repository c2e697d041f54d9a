package config

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

// LoggerConfig configures a single log sink
type LoggerConfig struct {
	Level       string `mapstructure:"level"` // none, normal or debug
	Destination string `mapstructure:"destination"`
	Mode        string `mapstructure:"mode"` // append or overwrite
}

// LoggingConfig holds console and file sinks
type LoggingConfig struct {
	Console LoggerConfig `mapstructure:"console"`
	File    LoggerConfig `mapstructure:"file"`
}

func validLevel(level string) bool {
	switch level {
	case "", "none", "normal", "debug":
		return true
	}
	return false
}

func (conf LoggingConfig) validate() error {
	var errs []error
	if !validLevel(conf.Console.Level) {
		errs = append(errs, fmt.Errorf("logging.console.level: unknown level %q", conf.Console.Level))
	}
	if !validLevel(conf.File.Level) {
		errs = append(errs, fmt.Errorf("logging.file.level: unknown level %q", conf.File.Level))
	}
	switch conf.File.Mode {
	case "", "append", "overwrite":
	default:
		errs = append(errs, fmt.Errorf("logging.file.mode: unknown mode %q", conf.File.Mode))
	}
	if (conf.File.Level == "normal" || conf.File.Level == "debug") && conf.File.Destination == "" {
		errs = append(errs, fmt.Errorf("logging.file.destination: required when file logging is enabled"))
	}
	return multierr.Combine(errs...)
}

// EnableColorOutput reports whether stream is a terminal
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}

// Prepare returns the program logger: errors go to stderr, lower levels to
// stdout, and everything at the file level to the file sink. The returned
// closer releases the file.
func (conf *LoggingConfig) Prepare() (*zap.Logger, func() error, error) {

	consoleEncoder := func(stream *os.File) zapcore.Encoder {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeCaller = nil
		if EnableColorOutput(stream) {
			ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
			ec.TimeKey = zapcore.OmitKey
		} else {
			ec.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		return zapcore.NewConsoleEncoder(ec)
	}

	highPriority := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.ErrorLevel
	})

	var consoleCoreHP, consoleCoreLP zapcore.Core
	switch conf.Console.Level {
	case "normal", "debug":
		floor := zapcore.InfoLevel
		if conf.Console.Level == "debug" {
			floor = zapcore.DebugLevel
		}
		consoleCoreLP = zapcore.NewCore(consoleEncoder(os.Stdout), zapcore.Lock(os.Stdout),
			zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
				return floor <= lvl && lvl < zapcore.ErrorLevel
			}))
		consoleCoreHP = zapcore.NewCore(consoleEncoder(os.Stderr), zapcore.Lock(os.Stderr), highPriority)
	default:
		consoleCoreLP = zapcore.NewNopCore()
		consoleCoreHP = zapcore.NewNopCore()
	}

	fileCore := zapcore.NewNopCore()
	closer := func() error { return nil }

	var level zapcore.Level
	switch conf.File.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "normal":
		level = zapcore.InfoLevel
	}
	if conf.File.Level == "debug" || conf.File.Level == "normal" {
		flags := os.O_CREATE | os.O_WRONLY
		if conf.File.Mode == "overwrite" {
			flags |= os.O_TRUNC
		} else {
			flags |= os.O_APPEND
		}
		f, err := os.OpenFile(conf.File.Destination, flags, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to access file log destination (%s): %w", conf.File.Destination, err)
		}
		fileCore = zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.Lock(f), zap.NewAtomicLevelAt(level))
		closer = f.Close
	}

	log := zap.New(zapcore.NewTee(consoleCoreHP, consoleCoreLP, fileCore), zap.AddCaller())
	return log.Named(AppName), closer, nil
}

package logger

import (
	"fmt"
	"strings"

	"sightstory/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envDevelopment = "development"

// Options describes one process logger.
type Options struct {
	Service    string // logger name and "service" field
	Env        string // development switches to console output with callers
	Level      string // debug, info, warn, error; unknown values fall back to info
	Encoding   string // json or console; empty derives it from Env
	OutputPath string // file path, "stdout" or "stderr"; empty means stdout
}

// FromConfig takes the logging settings of the application config.
func FromConfig(cfg *config.Config, service string) Options {
	return Options{
		Service:  service,
		Env:      cfg.Env,
		Level:    cfg.LogLevel,
		Encoding: cfg.LogEncoding,
	}
}

// New builds the logger described by opts, already named after the service.
func New(opts Options) (*zap.Logger, error) {
	dev := opts.Env == envDevelopment

	level, levelErr := zapcore.ParseLevel(strings.ToLower(opts.Level))
	if opts.Level == "" {
		level, levelErr = zapcore.InfoLevel, nil
	} else if levelErr != nil {
		level = zapcore.InfoLevel
	}

	encoding := strings.ToLower(opts.Encoding)
	if encoding != "json" && encoding != "console" {
		encoding = "json"
		if dev {
			encoding = "console"
		}
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = "stdout"
	}
	sink, _, err := zap.Open(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open log output %q: %w", outputPath, err)
	}
	errSink, _, err := zap.Open("stderr")
	if err != nil {
		return nil, fmt.Errorf("failed to open error output: %w", err)
	}

	core := zapcore.NewCore(newEncoder(encoding, isTerminal(outputPath)), sink, zap.NewAtomicLevelAt(level))

	zapOpts := []zap.Option{zap.ErrorOutput(errSink)}
	if dev {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	}
	var fields []zap.Field
	if opts.Service != "" {
		fields = append(fields, zap.String("service", opts.Service))
	}
	if opts.Env != "" {
		fields = append(fields, zap.String("env", opts.Env))
	}
	if len(fields) > 0 {
		zapOpts = append(zapOpts, zap.Fields(fields...))
	}

	log := zap.New(core, zapOpts...)
	if opts.Service != "" {
		log = log.Named(opts.Service)
	}
	if levelErr != nil {
		log.Warn("Unknown log level, using info", zap.String("requested", opts.Level))
	}
	return log, nil
}

func newEncoder(encoding string, terminal bool) zapcore.Encoder {
	if encoding == "console" {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		if terminal {
			encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		return zapcore.NewConsoleEncoder(encCfg)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewJSONEncoder(encCfg)
}

func isTerminal(path string) bool {
	return path == "stdout" || path == "stderr"
}

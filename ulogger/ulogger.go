package ulogger

import (
	"github.com/blockparty-sh/cpp-slp-graph-search/settings"
)

const (
	colorBlack = iota + 30
	colorRed
	colorGreen
	colorYellow
	colorBlue
	colorMagenta
	colorCyan
	colorWhite

	colorBold     = 1
	colorDarkGray = 90
)

type Logger interface {
	LogLevel() int
	SetLogLevel(level string)
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	New(service string, options ...Option) Logger
	Duplicate(options ...Option) Logger
}

func New(service string, options ...Option) Logger {
	opts := DefaultOptions()
	for _, o := range options {
		o(opts)
	}

	switch opts.loggerType {
	case "gocore":
		return NewGoCoreLogger(service, options...)
	default:
		return NewZeroLogger(service, options...)
	}
}

// InitLogger creates the root logger of a binary from its settings.
func InitLogger(progname string, tSettings *settings.Settings) Logger {
	return New(progname,
		WithLevel(tSettings.LogLevel),
		WithLoggerType(tSettings.LoggerType),
		WithPrettyLogs(tSettings.PrettyLogs),
	)
}

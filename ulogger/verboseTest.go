package ulogger

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/ordishs/gocore"
)

// VerboseTestLogger writes through t.Logf, so log lines only show up for failing
// or -v tests, and keeps every line it accepted for assertions.
//
// Child loggers made with New share the parent's line buffer and prefix their
// lines with the service name, e.g. "[WARN] rest: ...".
type VerboseTestLogger struct {
	t       testing.TB
	service string
	level   int
	shared  *verboseTestLines
}

var levelNames = map[int]string{
	int(gocore.DEBUG): "DEBUG",
	int(gocore.INFO):  "INFO",
	int(gocore.WARN):  "WARN",
	int(gocore.ERROR): "ERROR",
	int(gocore.FATAL): "FATAL",
}

type verboseTestLines struct {
	mu    sync.Mutex
	lines []string
}

func NewVerboseTestLogger(t testing.TB) *VerboseTestLogger {
	return &VerboseTestLogger{
		t:      t,
		level:  int(gocore.DEBUG),
		shared: &verboseTestLines{},
	}
}

func (l *VerboseTestLogger) LogLevel() int {
	return l.level
}

func (l *VerboseTestLogger) SetLogLevel(level string) {
	l.level = int(gocore.NewLogLevelFromString(level))
}

func (l *VerboseTestLogger) New(service string, options ...Option) Logger {
	opts := &Options{}
	for _, o := range options {
		o(opts)
	}

	child := &VerboseTestLogger{
		t:       l.t,
		service: service,
		level:   l.level,
		shared:  l.shared,
	}

	if opts.logLevel != "" {
		child.SetLogLevel(opts.logLevel)
	}

	return child
}

func (l *VerboseTestLogger) Duplicate(options ...Option) Logger {
	return l.New(l.service, options...)
}

// Lines returns the lines logged so far by this logger and all its children.
func (l *VerboseTestLogger) Lines() []string {
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()

	return append([]string(nil), l.shared.lines...)
}

// Contains reports whether any logged line contains s.
func (l *VerboseTestLogger) Contains(s string) bool {
	for _, line := range l.Lines() {
		if strings.Contains(line, s) {
			return true
		}
	}

	return false
}

func (l *VerboseTestLogger) Debugf(format string, args ...interface{}) {
	l.log(int(gocore.DEBUG), format, args...)
}

func (l *VerboseTestLogger) Infof(format string, args ...interface{}) {
	l.log(int(gocore.INFO), format, args...)
}

func (l *VerboseTestLogger) Warnf(format string, args ...interface{}) {
	l.log(int(gocore.WARN), format, args...)
}

func (l *VerboseTestLogger) Errorf(format string, args ...interface{}) {
	l.log(int(gocore.ERROR), format, args...)
}

func (l *VerboseTestLogger) Fatalf(format string, args ...interface{}) {
	l.t.Helper()
	l.t.Fatalf("%s", l.format(int(gocore.FATAL), format, args...))
}

func (l *VerboseTestLogger) log(level int, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	line := l.format(level, format, args...)

	l.shared.mu.Lock()
	l.shared.lines = append(l.shared.lines, line)
	l.shared.mu.Unlock()

	l.t.Logf("%s", line)
}

func (l *VerboseTestLogger) format(level int, format string, args ...interface{}) string {
	msg := fmt.Sprintf(format, args...)
	name := levelNames[level]

	if l.service == "" {
		return fmt.Sprintf("[%s] %s", name, msg)
	}

	return fmt.Sprintf("[%s] %s: %s", name, l.service, msg)
}

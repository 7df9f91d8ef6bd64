package tracing

import (
	"context"
	"fmt"
	"time"

	"github.com/blockparty-sh/cpp-slp-graph-search/ulogger"
	"github.com/ordishs/gocore"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type Options func(s *TraceOptions)

type TraceOptions struct {
	ParentStat *gocore.Stat
	Histogram  prometheus.Histogram
	Counter    prometheus.Counter
	Logger     ulogger.Logger
	LogMessage string
	LogArgs    []interface{}
	DebugLog   bool
	Tags       []attribute.KeyValue
}

func WithParentStat(stat *gocore.Stat) Options {
	return func(s *TraceOptions) {
		s.ParentStat = stat
	}
}

// WithHistogram sets the prometheus histogram to be observed when the span is finished.
func WithHistogram(histogram prometheus.Histogram) Options {
	return func(s *TraceOptions) {
		s.Histogram = histogram
	}
}

// WithCounter sets the prometheus counter to be incremented when the span is finished.
func WithCounter(counter prometheus.Counter) Options {
	return func(s *TraceOptions) {
		s.Counter = counter
	}
}

// WithTag adds a string attribute to the span.
func WithTag(key, value string) Options {
	return func(s *TraceOptions) {
		s.Tags = append(s.Tags, attribute.String(key, value))
	}
}

// WithLogMessage sets the logger and log message to be used when starting the span and when the span is finished.
// The log message is formatted with fmt.Sprintf and all arguments are passed to the logger.
// The log message is logged at the INFO level. This should only be used in grpc / http calls and not internal functions.
func WithLogMessage(logger ulogger.Logger, format string, args ...interface{}) Options {
	return func(s *TraceOptions) {
		s.Logger = logger
		s.LogMessage = format
		s.LogArgs = args
		s.DebugLog = false
	}
}

// WithDebugLogMessage is WithLogMessage at the DEBUG level.
func WithDebugLogMessage(logger ulogger.Logger, format string, args ...interface{}) Options {
	return func(s *TraceOptions) {
		s.Logger = logger
		s.LogMessage = format
		s.LogArgs = args
		s.DebugLog = true
	}
}

// UTracer starts otel spans that also record a gocore stat.
type UTracer struct {
	name           string
	defaultOptions []Options
}

// Tracer returns a UTracer for the named component. Default options are applied
// before the options given to Start.
func Tracer(name string, defaultOptions ...Options) *UTracer {
	return &UTracer{
		name:           name,
		defaultOptions: defaultOptions,
	}
}

// Start starts a span and a stat named spanName. The returned function ends both;
// an error passed to it is recorded on the span and appended to the log line.
func (u *UTracer) Start(ctx context.Context, spanName string, setOptions ...Options) (context.Context, trace.Span, func(...error)) {
	options := &TraceOptions{}

	for _, opt := range u.defaultOptions {
		if opt != nil {
			opt(options)
		}
	}

	for _, opt := range setOptions {
		if opt != nil {
			opt(options)
		}
	}

	ctx, span := otel.Tracer(u.name).Start(ctx, spanName, trace.WithAttributes(options.Tags...))

	var (
		start int64
		stat  *gocore.Stat
	)

	if options.ParentStat != nil {
		start, stat, ctx = NewStatFromContext(ctx, spanName, options.ParentStat)
	} else {
		start, stat, ctx = StartStatFromContext(ctx, spanName)
	}

	startTime := time.Now()

	if options.Logger != nil && options.LogMessage != "" {
		options.log(options.LogMessage, options.LogArgs...)
	}

	return ctx, span, func(errs ...error) {
		var err error
		if len(errs) > 0 {
			err = errs[0]
		}

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		span.End()
		stat.AddTime(start)

		if options.Histogram != nil {
			options.Histogram.Observe(time.Since(startTime).Seconds())
		}

		if options.Counter != nil {
			options.Counter.Inc()
		}

		if options.Logger != nil && options.LogMessage != "" {
			done := fmt.Sprintf(" DONE in %s", time.Since(startTime))
			if err != nil {
				done += fmt.Sprintf(" with error: %v", err)
			}

			options.log(options.LogMessage+done, options.LogArgs...)
		}
	}
}

func (o *TraceOptions) log(format string, args ...interface{}) {
	if o.DebugLog {
		o.Logger.Debugf(format, args...)
		return
	}

	o.Logger.Infof(format, args...)
}

// StartTracing starts a span on the default tracer and returns the stat it records,
// for callers that do not care about the otel span itself.
func StartTracing(ctx context.Context, name string, setOptions ...Options) (context.Context, *gocore.Stat, func()) {
	ctx, _, endFn := Tracer("gsrest").Start(ctx, name, setOptions...)

	stat, _ := ctx.Value(statsKey{}).(*gocore.Stat)

	return ctx, stat, func() {
		endFn()
	}
}

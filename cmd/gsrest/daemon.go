// Package gsrest is the entry point of the REST gateway binary.
package gsrest

import (
	"log"
	"os"

	"github.com/blockparty-sh/cpp-slp-graph-search/daemon"
	"github.com/blockparty-sh/cpp-slp-graph-search/settings"
	"github.com/blockparty-sh/cpp-slp-graph-search/ulogger"
	"github.com/ordishs/gocore"
)

// RunDaemon starts the gateway and blocks until it receives SIGINT or SIGTERM.
func RunDaemon(progname, version, commit string) {
	gocore.SetInfo(progname, version, commit)

	// starts the unix socket that allows settings to be inspected at runtime
	gocore.Log(progname)

	gocore.AddAppPayloadFn("CONFIG", func() interface{} {
		return gocore.Config().GetAll()
	})

	if err := settings.LoadDotEnv(settings.DefaultDotEnvFile); err != nil {
		log.Fatalf("error loading %s: %v", settings.DefaultDotEnvFile, err)
	}

	tSettings := settings.NewSettings()
	tSettings.Version = version
	tSettings.Commit = commit

	logger := ulogger.InitLogger(progname, tSettings)

	stats := gocore.Config().Stats()
	logger.Infof("STATS\n%s\nVERSION\n-------\n%s (%s)\n\n", stats, version, commit)

	daemon.New(daemon.WithLoggerFactory(func(serviceName string) ulogger.Logger {
		return ulogger.New(serviceName,
			ulogger.WithLevel(tSettings.LogLevel),
			ulogger.WithLoggerType(tSettings.LoggerType),
			ulogger.WithPrettyLogs(tSettings.PrettyLogs),
		)
	})).Start(logger, os.Args[1:], tSettings)
}

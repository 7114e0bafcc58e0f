package logging

import (
	"bufio"
	"os"
	"strings"

	"github.com/bokysan/eppclient/internal/cliargs"
	"github.com/bokysan/eppclient/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Setup configures the global logrus logger from cliargs.General: verbosity,
// text/JSON formatting, caller reporting, and an optional log file.
func Setup() {
	SetVerbosity(cliargs.General.Verbose)

	if cliargs.General.LogReportCaller {
		log.AddHook(&ContextHook{})
	}

	if cliargs.General.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		})
	} else {
		color := strings.TrimSpace(strings.ToLower(cliargs.General.LogColor))
		log.SetFormatter(&log.TextFormatter{
			ForceColors:   color == "yes" || color == "true",
			DisableColors: color == "no" || color == "false",
			FullTimestamp: cliargs.General.LogFullTimestamp,
		})
	}
	log.SetReportCaller(cliargs.General.LogReportCaller)
	log.Infof("verbosity level: %v", VerbosityName())

	if cliargs.General.LogFile != nil && *cliargs.General.LogFile != "" && *cliargs.General.LogFile != "-" {
		f, err := os.OpenFile(*cliargs.General.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		util.MustErrorNilOrExit(errors.WithStack(err))
		log.SetOutput(bufio.NewWriter(f))
	}
}

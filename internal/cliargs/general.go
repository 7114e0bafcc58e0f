// Package cliargs holds the global command-line flags shared by every
// eppctl subcommand: verbosity, log formatting, and the path to the
// registry configuration file.
package cliargs

// General holds the flags attached to the top-level eppctl parser, bound
// via github.com/jessevdk/go-flags struct tags.
var General struct {
	Verbose               []bool  `short:"v" long:"verbose" env:"EPPCTL_VERBOSITY" description:"Show verbose debug information"`
	RegistryConfigFile    string  `short:"c" long:"config" env:"EPPCTL_REGISTRIES" description:"Registry configuration file (TOML-formatted)" required:"true"`
	Registry              string  `short:"r" long:"registry" env:"EPPCTL_REGISTRY" description:"Registry name to operate against, as declared in the registry configuration file" required:"true"`
	LogFile               *string `short:"l" long:"log-file" env:"EPPCTL_LOG_FILE" description:"Log file (appended). If unset, defaults to stderr." default:"-"`
	LogFormat             string  `short:"f" long:"log-format" env:"EPPCTL_LOG_FORMAT" description:"Log output format." choice:"text" choice:"json" default:"text"`
	LogColor              string  `short:"C" long:"log-color" env:"EPPCTL_LOG_COLOR" description:"Should log output be colored? yes, no or auto" choice:"yes" choice:"no" choice:"auto" default:"auto"`
	LogFullTimestamp      bool    `long:"log-full-timestamp" env:"EPPCTL_LOG_FULL_TIMESTAMP" description:"Display full timestamps in logs"`
	LogReportCaller       bool    `long:"log-report-caller" env:"EPPCTL_LOG_REPORT_CALLER" description:"Add the calling source location as a log field"`
	Insecure              bool    `short:"k" long:"insecure" env:"EPPCTL_INSECURE" description:"Skip TLS certificate verification (testing only)"`
	Timeout               int     `short:"t" long:"timeout" env:"EPPCTL_TIMEOUT" description:"Per-operation I/O timeout, in seconds" default:"30"`
}

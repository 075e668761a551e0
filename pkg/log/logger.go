package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/df07/go-interactive-raytracer/pkg/core"
	"github.com/op/go-logging"
)

// Level selects how much the raytracer loggers print
type Level logging.Level

// Verbosity from most to least chatty
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// Colored "[hh:mm:ss.mmm] [module] [LEVEL] message" lines
var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var leveledBackend logging.LeveledBackend

// Logger is the subset of a go-logging logger used by the commands and the web host
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for a module such as "renderer" or "server"
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink sends all module output to sink and drops the level back to Info
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(logging.INFO, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel applies level to every module
func SetLevel(level Level) {
	var loggerLevel logging.Level

	switch level {
	case Debug:
		loggerLevel = logging.DEBUG
	case Info:
		loggerLevel = logging.INFO
	case Notice:
		loggerLevel = logging.NOTICE
	case Warning:
		loggerLevel = logging.WARNING
	case Error:
		loggerLevel = logging.ERROR
	}

	leveledBackend.SetLevel(loggerLevel, "")
}

type printfLogger struct {
	logger Logger
}

func (p printfLogger) Printf(format string, args ...interface{}) {
	p.logger.Info(strings.TrimRight(fmt.Sprintf(format, args...), "\n"))
}

// Printf gives the render core a core.Logger backed by the named module, logging at Info
func Printf(name string) core.Logger {
	return printfLogger{logger: New(name)}
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}

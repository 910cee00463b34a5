package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
)

type LogStatus int

const (
	VERBOSE LogStatus = iota
	DEBUG
	INFO
	SUCCESS
	NEW
	REMOVE
	STOP
	WARNING
	ERROR
	FATAL
)

func (e LogStatus) String() string {
	return []string{
		"V",
		"D",
		"I",
		"✓",
		"+",
		"-",
		"X",
		"!",
		"!!",
		"PANIC",
	}[e]
}

func (e LogStatus) Color() *color.Color {
	return []*color.Color{
		color.New(color.FgWhite, color.Italic),                //Verbose
		color.New(color.FgWhite, color.Italic),                //Debug
		color.New(color.FgWhite),                              //Info
		color.New(color.FgHiGreen),                            //Success
		color.New(color.FgGreen, color.Italic),                //New
		color.New(color.FgYellow, color.Italic),               //Remove
		color.New(color.FgHiYellow),                           //Stop
		color.New(color.FgYellow, color.Underline),            //Warning
		color.New(color.FgHiRed, color.Bold),                  //Error
		color.New(color.FgHiRed, color.Bold, color.Underline), //PANIC
	}[e]
}

func (e LogStatus) Level() int { return int(e) }

// ParseLevel converts a level name (e.g. "debug", "WARNING") in to a
// LogStatus. Unknown names yield INFO and false.
func ParseLevel(name string) (LogStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "VERBOSE":
		return VERBOSE, true
	case "DEBUG":
		return DEBUG, true
	case "INFO":
		return INFO, true
	case "SUCCESS":
		return SUCCESS, true
	case "WARNING", "WARN":
		return WARNING, true
	case "ERROR":
		return ERROR, true
	case "FATAL":
		return FATAL, true
	}

	return INFO, false
}

type Logger interface {
	Emit(LogStatus, string, ...interface{})
	Verbosef(string, ...interface{})
	Debugf(string, ...interface{})
	Infof(string, ...interface{})
	Successf(string, ...interface{})
	Warnf(string, ...interface{})
	Errorf(string, ...interface{})
	Fatalf(string, ...interface{})
	Printf(string, ...interface{})
}

type loggerImpl struct {
	name string
}

func (l *loggerImpl) Emit(status LogStatus, message string, interpolations ...interface{}) {
	Log.Emit(status, l.name, message, interpolations...)
}

func (l *loggerImpl) Verbosef(m string, a ...interface{}) { l.Emit(VERBOSE, m, a...) }
func (l *loggerImpl) Debugf(m string, a ...interface{})   { l.Emit(DEBUG, m, a...) }
func (l *loggerImpl) Infof(m string, a ...interface{})    { l.Emit(INFO, m, a...) }
func (l *loggerImpl) Successf(m string, a ...interface{}) { l.Emit(SUCCESS, m, a...) }
func (l *loggerImpl) Warnf(m string, a ...interface{})    { l.Emit(WARNING, m, a...) }
func (l *loggerImpl) Errorf(m string, a ...interface{})   { l.Emit(ERROR, m, a...) }

// Printf allows a Logger to be handed to libraries (such as goose) which
// expect a Printf/Fatalf style logger.
func (l *loggerImpl) Printf(m string, a ...interface{}) { l.Emit(INFO, m, a...) }

// Fatalf emits the message at FATAL level and then exits the process.
func (l *loggerImpl) Fatalf(m string, a ...interface{}) {
	l.Emit(FATAL, m, a...)
	os.Exit(1)
}

type LoggerManager interface {
	GetLogger(string) Logger
	Emit(LogStatus, string, string, ...interface{})
}

var Log LoggerManager = &loggerMgr{
	offset:   0,
	minLevel: INFO,
}

type loggerMgr struct {
	sync.Mutex
	offset   int
	minLevel LogStatus
}

func (l *loggerMgr) GetLogger(name string) Logger {
	return &loggerImpl{name: name}
}

func (l *loggerMgr) Emit(status LogStatus, name string, message string, interpolations ...interface{}) {
	l.Lock()
	defer l.Unlock()

	if status < l.minLevel {
		return
	}

	if len(name) > l.offset {
		l.offset = len(name)
	}

	padding := strings.Repeat(" ", l.offset-len(name))
	msg := fmt.Sprintf("[%s] %s(%s) %s", name, padding, status, fmt.Sprintf(message, interpolations...))
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}

	status.Color().Print(msg)
}

func (l *loggerMgr) setMinLevel(level LogStatus) {
	l.Lock()
	defer l.Unlock()
	l.minLevel = level
}

func Get(name string) Logger {
	return Log.GetLogger(name)
}

// SetMinLoggingLevel changes the lowest level which will be printed
// by the default logger manager. Messages below this level are dropped.
func SetMinLoggingLevel(level int) {
	if mgr, ok := Log.(*loggerMgr); ok {
		mgr.setMinLevel(LogStatus(level))
	}
}

// Package log implements bounce's leveled logging on top of the standard
// library logger. Every level writes to its own destination, which starts out
// discarded until main hands it a writer.
// Provides info, warn, debug, fatal and performance loggers.
package log

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
)

// The prefix labels for each of the loggers
const (
	infoLabel  = "INFO"
	warnLabel  = "WARN"
	debugLabel = "DBUG"
	fatalLabel = "FATL"
	perfLabel  = "PERF"
)

// ANSI foreground text color codes
const (
	brightRed     = "91"
	brightGreen   = "92"
	brightYellow  = "93"
	brightMagenta = "95"
	brightWhite   = "97"
)

type level struct {
	label string
	color string
	*log.Logger
}

func newLevel(label, color string, flags int) *level {
	return &level{
		label:  label,
		color:  color,
		Logger: log.New(ioutil.Discard, label+" ", flags),
	}
}

func (lv *level) colorize(toggle bool) {
	if !toggle {
		lv.SetPrefix(lv.label + " ")
		return
	}
	lv.SetPrefix(fmt.Sprintf("\033[%vm%v\033[0m ", lv.color, lv.label))
}

var (
	info  = newLevel(infoLabel, brightWhite, log.LstdFlags)
	warn  = newLevel(warnLabel, brightYellow, log.LstdFlags)
	debug = newLevel(debugLabel, brightMagenta, log.LstdFlags|log.Lshortfile)
	fatal = newLevel(fatalLabel, brightRed, log.LstdFlags|log.Lshortfile|log.Lmicroseconds)
	perf  = newLevel(perfLabel, brightGreen, log.LstdFlags|log.Lmicroseconds)
)

// exit is swapped out by tests so Fatal can be observed.
var exit = os.Exit

// SetColorized toggles ANSI coloring of every level label.
func SetColorized(toggle bool) {
	for _, lv := range []*level{info, warn, debug, fatal, perf} {
		lv.colorize(toggle)
	}
}

// SetOutput points every level at the same destination.
func SetOutput(out io.Writer) {
	for _, lv := range []*level{info, warn, debug, fatal, perf} {
		lv.SetOutput(out)
	}
}

// SetInfoOutput sets the output destination for the info logger.
func SetInfoOutput(out io.Writer) { info.SetOutput(out) }

// SetWarnOutput sets the output destination for the warning logger.
func SetWarnOutput(out io.Writer) { warn.SetOutput(out) }

// SetDebugOutput sets the output destination for the debug logger.
func SetDebugOutput(out io.Writer) { debug.SetOutput(out) }

// SetFatalOutput sets the output destination for the fatal logger.
func SetFatalOutput(out io.Writer) { fatal.SetOutput(out) }

// SetPerfOutput sets the output destination for the performance logger.
func SetPerfOutput(out io.Writer) { perf.SetOutput(out) }

// Info prints to the info logger in the manner of fmt.Print.
func Info(v ...interface{}) { _ = info.Output(2, fmt.Sprint(v...)) }

// Infof prints to the info logger in the manner of fmt.Printf.
func Infof(format string, v ...interface{}) { _ = info.Output(2, fmt.Sprintf(format, v...)) }

// Warn prints to the warning logger in the manner of fmt.Print.
func Warn(v ...interface{}) { _ = warn.Output(2, fmt.Sprint(v...)) }

// Warnf prints to the warning logger in the manner of fmt.Printf.
func Warnf(format string, v ...interface{}) { _ = warn.Output(2, fmt.Sprintf(format, v...)) }

// Debug prints to the debug logger in the manner of fmt.Print.
func Debug(v ...interface{}) { _ = debug.Output(2, fmt.Sprint(v...)) }

// Debugf prints to the debug logger in the manner of fmt.Printf.
func Debugf(format string, v ...interface{}) { _ = debug.Output(2, fmt.Sprintf(format, v...)) }

// Perf prints to the performance logger in the manner of fmt.Print.
func Perf(v ...interface{}) { _ = perf.Output(2, fmt.Sprint(v...)) }

// Perff prints to the performance logger in the manner of fmt.Printf.
func Perff(format string, v ...interface{}) { _ = perf.Output(2, fmt.Sprintf(format, v...)) }

// Fatal prints to the fatal logger in the manner of fmt.Print and exits
// with status 1. Deferred functions do not run.
func Fatal(v ...interface{}) {
	_ = fatal.Output(2, fmt.Sprint(v...))
	exit(1)
}

// Fatalf prints to the fatal logger in the manner of fmt.Printf and exits
// with status 1. Deferred functions do not run.
func Fatalf(format string, v ...interface{}) {
	_ = fatal.Output(2, fmt.Sprintf(format, v...))
	exit(1)
}

// ConstErr is an error that can be declared as a constant.
type ConstErr string

func (e ConstErr) Error() string {
	return string(e)
}

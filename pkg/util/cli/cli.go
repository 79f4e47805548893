package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Silent silences all the non-error messages
var Silent bool

// Verbose allows printing info messages.
var Verbose bool

// Output is where the messages are printed.
var Output io.Writer = os.Stdout

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Level:           log.InfoLevel,
	ReportTimestamp: false,
})

// Setup applies the verbosity and color settings.
// Colors are also disabled when stdout is not a terminal.
func Setup(verbose, silent, noColors bool) {
	Verbose = verbose
	Silent = silent

	color.NoColor = noColors || !isatty.IsTerminal(os.Stdout.Fd())

	level := log.InfoLevel
	if verbose && !silent {
		level = log.DebugLevel
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
	})
}

// Debug writes a structured debug record to stderr, only
// shown in verbose mode.
func Debug(msg string, keyvals ...interface{}) {
	logger.Debug(msg, keyvals...)
}

// Dump prints a detailed representation of the values in verbose mode.
func Dump(msg string, values ...interface{}) {
	if Silent || !Verbose {
		return
	}
	fmt.Fprint(Output, "["+color.BlueString("•")+"] "+msg+"\n"+spew.Sdump(values...))
}

// Warningln formats warning message
func Warningln(content ...interface{}) {
	if Silent {
		return
	}
	fmt.Fprintln(Output, "["+color.YellowString("!")+"] "+fmt.Sprint(content...))
}

// Successln formats success message
func Successln(content ...interface{}) {
	if Silent {
		return
	}
	fmt.Fprintln(Output, "["+color.GreenString("✓")+"] "+fmt.Sprint(content...))
}

// Infoln formats info message
func Infoln(content ...interface{}) {
	if Silent {
		return
	}
	fmt.Fprintln(Output, "["+color.BlueString("•")+"] "+fmt.Sprint(content...))
}

// Verboseln formats info message
func Verboseln(content ...interface{}) {
	if Silent || !Verbose {
		return
	}
	fmt.Fprintln(Output, "["+color.BlueString("•")+"] "+fmt.Sprint(content...))
}

// Failureln formats failure message
func Failureln(content ...interface{}) {
	fmt.Fprintln(Output, "["+color.RedString("x")+"] "+fmt.Sprint(content...))
}

// Warningf formats warning message
func Warningf(format string, values ...interface{}) {
	if Silent {
		return
	}
	fmt.Fprint(Output, "["+color.YellowString("!")+"] "+fmt.Sprintf(format, values...))
}

// Successf formats success message
func Successf(format string, values ...interface{}) {
	if Silent {
		return
	}
	fmt.Fprint(Output, "["+color.GreenString("✓")+"] "+fmt.Sprintf(format, values...))
}

// Infof formats info message
func Infof(format string, values ...interface{}) {
	if Silent {
		return
	}
	fmt.Fprint(Output, "["+color.BlueString("•")+"] "+fmt.Sprintf(format, values...))
}

// Verbosef formats info message
func Verbosef(format string, values ...interface{}) {
	if Silent || !Verbose {
		return
	}
	fmt.Fprint(Output, "["+color.BlueString("•")+"] "+fmt.Sprintf(format, values...))
}

// Failuref formats failure message
func Failuref(format string, values ...interface{}) {
	fmt.Fprint(Output, "["+color.RedString("x")+"] "+fmt.Sprintf(format, values...))
}

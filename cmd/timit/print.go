package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/SanjoDeundiak/timit/pkg/lib"
	"github.com/mitchellh/colorstring"
)

const (
	beginDelimiter = "-- Begin program output --"
	endDelimiter   = "--- End program output ---"

	durationUnknown = "There was an error timing the operation."
)

func printCommand(w io.Writer, command lib.Command) {
	_, _ = fmt.Fprintf(w, "Command: timit %s\n", command)
}

func printResults(w io.Writer, outcome *lib.ProcessOutcome, nanos bool, color *colorstring.Colorize) {
	_, _ = fmt.Fprintln(w, "Results:")
	_, _ = fmt.Fprintf(w, "  Exit status: %s\n", formatExitStatus(outcome.ExitStatus, color))
	_, _ = fmt.Fprintf(w, "  Duration: %s\n", formatDuration(outcome.Duration, !nanos))
	_, _ = fmt.Fprintln(w)
}

func printError(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "Error: %s\n", err)
}

// formatExitStatus renders "<code> (success)" or "signal (failure)".
func formatExitStatus(st lib.ExitStatus, color *colorstring.Colorize) string {
	code := "signal"
	if c, ok := st.Code(); ok {
		code = strconv.Itoa(c)
	}
	explanation := "[red]failure"
	if st.Success() {
		explanation = "[green]success"
	}
	return fmt.Sprintf("%s (%s)", code, color.Color(explanation))
}

// formatDuration renders d as [HH:][MM:]SS.nnnnnnnnns, or as integer
// nanoseconds when pretty is false.
func formatDuration(d *time.Duration, pretty bool) string {
	if d == nil {
		return durationUnknown
	}
	total := d.Nanoseconds()
	if !pretty {
		return fmt.Sprintf("%dns", total)
	}

	hours := ""
	if total >= int64(time.Hour) {
		hours = fmt.Sprintf("%02d:", total/int64(time.Hour))
	}
	minutes := ""
	if total >= int64(time.Minute) {
		minutes = fmt.Sprintf("%02d:", total/int64(time.Minute)%60)
	}
	seconds := "0"
	if total >= int64(time.Second) {
		seconds = fmt.Sprintf("%02d", total/int64(time.Second)%60)
	}
	return fmt.Sprintf("%s%s%s.%09ds", hours, minutes, seconds, total%int64(time.Second))
}

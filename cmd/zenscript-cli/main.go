// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"time"
	"zenscript/internal/errors"
	"zenscript/internal/parser"

	"github.com/fatih/color"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: zenscript <file.zs>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	program, parseErr := parser.ParseSource(path, string(source))

	duration := time.Since(startTime)
	formattedDuration := formatDuration(duration)

	if parseErr != nil {
		reporter := errors.NewReporter(path, string(source))
		fmt.Print(reporter.Format(parseErr))
		color.Red("Parsing failed after %s", formattedDuration)
		os.Exit(1)
	}

	fmt.Println(program.String())
	color.Green("Successfully processed %s in %s", path, formattedDuration)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

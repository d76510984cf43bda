// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"zenscript/internal/errors"
	"zenscript/internal/parser"
)

const PROMPT = ">> "

func Start(in io.Reader) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Print(PROMPT)
		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := scanner.Text()

		program, err := parser.ParseSource("repl", line)
		if err != nil {
			reporter := errors.NewReporter("repl", line)
			fmt.Print(reporter.Format(err))
			continue
		}

		fmt.Printf("AST:\n%s\n", program.String())
	}
}

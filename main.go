/*
Ratmath is a calculator for exact rational and interval arithmetic.
Expressions are evaluated without floating point; results are integers,
fractions in lowest terms, or closed rational intervals:

    1/2 + 3/4        5/4
    0.#3             1/3
    1/7              0.#142857
    2..3/4 * 4       11
    (2/3:3/2)^2      4/9:9/4
    1.23[+-5]        49/40:247/200
    5!               120

Ratmath is released under an MIT-style license.
*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/ratmath/ratmath/internal/base"
	"github.com/ratmath/ratmath/internal/reader/parser"
	"github.com/ratmath/ratmath/internal/system/options"
	"github.com/ratmath/ratmath/internal/ui"
)

var log = logging.MustGetLogger("ratmath") //nolint:gochecknoglobals

func main() {
	options.Parse()

	level := logging.ERROR
	if options.Verbose() {
		level = logging.DEBUG
	}

	logging.SetLevel(level, "")

	b, err := base.New(options.InputBase())
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	if e := options.Expression(); e != "" {
		v, err := parser.EvaluateIn(e, b)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		fmt.Println(ui.Render(v, options.Places()))

		return
	}

	if options.Interactive() {
		ui.Run(b, options.Places())

		return
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fmt.Println(ui.Evaluate(line, b, options.Places()))
	}

	if err := scanner.Err(); err != nil {
		log.Errorf("reading stdin: %s", err)
		os.Exit(1)
	}
}

// Released under an MIT license. See LICENSE.

// Package options parses ratmath's command line.
package options

import (
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	expression  string
	inputBase   = 10
	interactive bool
	places      = 10
	verbose     bool
	usage       = `ratmath - exact rational and interval arithmetic

Usage:
  ratmath [-v] [-b BASE] [-p PLACES] -e EXPRESSION
  ratmath [-v] [-b BASE] [-p PLACES]
  ratmath -h

Options:
  -e, --expression=EXPRESSION  Evaluate the expression and exit.
  -b, --base=BASE              Numeral base for input literals [default: 10].
  -p, --places=PLACES          Decimal places for approximate output [default: 10].
  -v, --verbose                Enable debug logging.
  -h, --help                   Display this help.

If ratmath's stdin is a TTY and no expression was given, an interactive
session with line editing and history is started. Otherwise expressions
are read from stdin, one per line.
`
)

// Expression returns the one-shot expression, if any.
func Expression() string {
	return expression
}

// InputBase returns the numeral base for input literals.
func InputBase() int {
	return inputBase
}

// Interactive returns true if the session should offer line editing.
func Interactive() bool {
	return interactive
}

// Parse parses the command line.
func Parse() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	expression, _ = opts.String("--expression")

	if s, err := opts.String("--base"); err == nil {
		if b, err := strconv.Atoi(s); err == nil {
			inputBase = b
		}
	}

	if s, err := opts.String("--places"); err == nil {
		if p, err := strconv.Atoi(s); err == nil {
			places = p
		}
	}

	verbose, _ = opts.Bool("--verbose")

	interactive = expression == "" && isatty.IsTerminal(os.Stdin.Fd())
}

// Places returns the number of decimal places for approximate output.
func Places() int {
	return places
}

// Verbose returns true if debug logging was requested.
func Verbose() bool {
	return verbose
}

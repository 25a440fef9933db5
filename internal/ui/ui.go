// Released under an MIT license. See LICENSE.

// Package ui provides the interactive ratmath session.
package ui

import (
	"fmt"
	"strings"

	"github.com/op/go-logging"
	"github.com/peterh/liner"

	"github.com/ratmath/ratmath/internal/base"
	"github.com/ratmath/ratmath/internal/common"
	"github.com/ratmath/ratmath/internal/common/interface/value"
	"github.com/ratmath/ratmath/internal/common/type/integer"
	"github.com/ratmath/ratmath/internal/format"
	"github.com/ratmath/ratmath/internal/reader/parser"
	"github.com/ratmath/ratmath/internal/system/history"
)

var log = logging.MustGetLogger("ui") //nolint:gochecknoglobals

// Run reads expressions, one per prompt, and prints each result until
// the end of input. Literals are read in the numeral base b.
func Run(b *base.T, places int) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	if err := history.Load(cli.ReadHistory); err != nil {
		log.Debugf("no history: %s", err)
	}

	for {
		line, err := cli.Prompt("ratmath> ")

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		default:
			fmt.Println()

			if err := history.Save(cli.WriteHistory); err != nil {
				log.Debugf("history not saved: %s", err)
			}

			return
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cli.AppendHistory(line)

		fmt.Println(Evaluate(line, b, places))
	}
}

// Evaluate evaluates the expression line and renders the result, or
// the failure message verbatim.
func Evaluate(line string, b *base.T, places int) string {
	v, err := parser.EvaluateIn(line, b)
	if err != nil {
		return err.Error()
	}

	return Render(v, places)
}

// Render formats a result: its canonical form, followed by its exact
// positional form when that adds information, falling back to a
// rounded approximation for values whose period is too long.
func Render(v value.I, places int) string {
	s := common.String(v)

	if integer.Is(v) {
		return s
	}

	rep, err := format.Repeating(v, base.Ten)
	if err != nil {
		log.Debugf("no exact positional form: %s", err)

		return s + " = " + format.Fixed(v, base.Ten, places) + "..."
	}

	if rep == s {
		return s
	}

	return s + " = " + rep
}

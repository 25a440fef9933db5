// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import (
	"fmt"

	"github.com/ratmath/ratmath/internal/common/interface/value"
)

type Stringer = fmt.Stringer

// String returns the string value for a value, if possible.
func String(c value.I) string {
	b, ok := c.(Stringer)
	if !ok {
		panic(c.Name() + " cannot be used in a string context")
	}

	return b.String()
}

// Released under an MIT license. See LICENSE.

package decimal

import (
	"strconv"
	"strings"

	"github.com/ratmath/ratmath/internal/common/fault"
)

// Expand rewrites every run-length group {d~n} in s as the digit d
// repeated n times. The count n is always written in decimal; it is a
// length, not a numeral in the active base.
func Expand(s string) (string, error) {
	if !strings.ContainsRune(s, '{') {
		return s, nil
	}

	var sb strings.Builder

	for len(s) > 0 {
		open := strings.IndexByte(s, '{')
		if open < 0 {
			sb.WriteString(s)

			break
		}

		sb.WriteString(s[:open])
		s = s[open+1:]

		end := strings.IndexByte(s, '}')
		if end < 0 {
			return "", fault.New(fault.MalformedLiteral, "unmatched '{' in digit run")
		}

		group := s[:end]
		s = s[end+1:]

		tilde := strings.IndexByte(group, '~')
		if tilde != 1 || len(group) < 3 {
			return "", fault.Newf(fault.MalformedLiteral, "'{%s}' is not a valid digit run", group)
		}

		n, err := strconv.Atoi(group[2:])
		if err != nil || n < 1 {
			return "", fault.Newf(fault.MalformedLiteral, "'{%s}' is not a valid digit run", group)
		}

		sb.WriteString(strings.Repeat(group[:1], n))
	}

	return sb.String(), nil
}

// Compress rewrites every run of min or more identical digits in s as
// the run-length group {d~n}. Runs never cross non-digit characters.
func Compress(s string, min int) string {
	if min < 2 {
		min = 2
	}

	var sb strings.Builder

	for i := 0; i < len(s); {
		c := s[i]

		j := i + 1
		for j < len(s) && s[j] == c {
			j++
		}

		n := j - i
		if n >= min && isDigit(c) {
			sb.WriteString("{" + string(c) + "~" + strconv.Itoa(n) + "}")
		} else {
			sb.WriteString(strings.Repeat(string(c), n))
		}

		i = j
	}

	return sb.String()
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

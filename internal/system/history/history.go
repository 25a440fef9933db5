// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive session's history.
package history

import (
	"io"
	"os"
)

// Load reads history with read, which is typically liner's ReadHistory.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		return err
	}

	return f.Close()
}

// Save writes history with write, which is typically liner's
// WriteHistory.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		return err
	}

	return f.Close()
}

// SPDX-License-Identifier: MIT

package transport

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/katalvlaran/transportation/matrix"
)

// LoadFile parses the problem file at path. The file is mapped read-only
// and handed to Parse without an intermediate copy; an empty file is
// reported as ErrMalformedInput.
//
// Errors: os / mmap errors, or any Parse error.
func LoadFile[T matrix.Number](path string) (*Table[T], error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLoad, err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%s: %s is empty: %w", opLoad, path, ErrMalformedInput)
	}

	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLoad, err)
	}
	defer f.Close()

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: mmap %s: %w", opLoad, path, err)
	}
	defer data.Unmap()

	t, err := Parse[T](bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", opLoad, path, err)
	}

	return t, nil
}

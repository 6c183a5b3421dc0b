package format

import (
	"fmt"
	"os"
)

// FileNotFoundError reports a missing input file.
type FileNotFoundError struct {
	Path string
}

func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("File '%s' does not exist", e.Path)
}

func (e *FileNotFoundError) Unwrap() error {
	return os.ErrNotExist
}

package codec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFileAtomic streams write into a temporary file next to path and
// renames it into place only when write and close both succeed.
func WriteFileAtomic(path string, write func(w io.Writer) error) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+"-*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp %q failed: %w", dir, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()
	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("Close %q failed: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("os.Rename %q failed: %w", path, err)
	}
	return nil
}

// ReadAnimationFile opens and decodes the animation at path, picking the
// format from its extension.
func ReadAnimationFile(path string) (*Animation, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	r, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open %q failed: %w", path, err)
	}
	defer r.Close()
	a, err := ReadAnimation(r, f)
	if err != nil {
		return nil, fmt.Errorf("ReadAnimation %q failed: %w", path, err)
	}
	return a, nil
}

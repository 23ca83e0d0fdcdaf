package regdev

import (
	"fmt"
	"os"
)

// FileDevice talks to a regmap debugfs file. Every operation opens and closes
// the file; no locking is done, so concurrent writers race and the last one
// wins.
type FileDevice struct {
	Path string
}

// NewFileDevice returns a device for the registers file at path, or
// DefaultPath when path is empty.
func NewFileDevice(path string) *FileDevice {
	if path == "" {
		path = DefaultPath
	}
	return &FileDevice{Path: path}
}

func (f *FileDevice) Info() Info {
	return Info{Name: "debugfs", Path: f.Path}
}

func (f *FileDevice) ReadDump() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("regdev: read %s: %w", f.Path, err)
	}
	return data, nil
}

func (f *FileDevice) WriteRegister(id string, value uint64) error {
	return f.WriteRaw(id, formatValue(value))
}

// WriteRaw truncates the file and writes a single "<id> <value>" line. The
// debugfs driver treats the write as an update request for that register
// rather than as new file contents.
func (f *FileDevice) WriteRaw(id, value string) error {
	line, err := FormatWrite(id, value)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(f.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("regdev: open %s: %w", f.Path, err)
	}
	if _, err := file.WriteString(line); err != nil {
		file.Close()
		return fmt.Errorf("regdev: write %s: %w", f.Path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("regdev: close %s: %w", f.Path, err)
	}
	return nil
}

package knapsack

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Write writes one "id profit weight" line per item, with no newline after the last one.
// Nothing is written if items is empty.
func Write(w io.Writer, items []Item) error {
	bw := bufio.NewWriter(w)
	for i, it := range items {
		if i > 0 {
			if _, err := bw.WriteString("\n"); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(it.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteInstance writes inst in the text format read by Parse:
// the capacity, then one "id profit weight" line per item, with no trailing newline.
func WriteInstance(w io.Writer, inst *Instance) error {
	if _, err := fmt.Fprintf(w, "%d", inst.Capacity); err != nil {
		return err
	}
	if len(inst.Items) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return Write(w, inst.Items)
}

// WriteFile replaces the content of the file at path with the given items.
// The file is created, or truncated if the selection is empty.
func WriteFile(path string, items []Item) error {
	return writeFileAtomic(path, func(w io.Writer) error { return Write(w, items) })
}

// WriteInstanceFile replaces the content of the file at path with inst.
func WriteInstanceFile(path string, inst *Instance) error {
	return writeFileAtomic(path, func(w io.Writer) error { return WriteInstance(w, inst) })
}

// writeFileAtomic writes to a temporary file in the same directory as path, then renames it to path,
// so that readers never see a partially written file.
func writeFileAtomic(path string, write func(w io.Writer) error) error {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "could not create %q", path)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()
	if err := write(tmp); err != nil {
		return errors.Wrapf(err, "could not write %q", path)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return errors.Wrapf(err, "could not write %q", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "could not write %q", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrapf(err, "could not write %q", path)
	}
	return nil
}

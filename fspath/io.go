package fspath

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/eagleviewent/go-utilities/errors"
	"github.com/eagleviewent/go-utilities/logger"
	"go.uber.org/zap"
)

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// Exists reports whether p names an existing regular file.
func (p Path) Exists() bool {
	if p.IsEmpty() {
		return false
	}

	info, err := os.Stat(p.Raw())

	return err == nil && !info.IsDir()
}

// DirExists reports whether p names an existing directory.
func (p Path) DirExists() bool {
	if p.IsEmpty() {
		return false
	}

	info, err := os.Stat(p.Raw())

	return err == nil && info.IsDir()
}

// PathExists reports whether the directory holding p exists.
func (p Path) PathExists() bool {
	return p.Dir().DirExists()
}

// EnsureDir creates the directory holding p and any missing parents.
func (p Path) EnsureDir() error {
	if p.IsEmpty() {
		return errors.NewInvalidArgument("path is empty")
	}

	if err := os.MkdirAll(p.Dir().Raw(), dirPerm); err != nil {
		return fmt.Errorf("create directory %q: %w", p.Dir().Raw(), err)
	}

	return nil
}

// ReadAllText returns the content of the file, or "" when it does
// not exist.
func (p Path) ReadAllText() (string, error) {
	if !p.Exists() {
		return "", nil
	}

	b, err := os.ReadFile(p.Raw())
	if err != nil {
		return "", fmt.Errorf("read %q: %w", p.Raw(), err)
	}

	return string(b), nil
}

// SaveText writes text to the file, replacing its content. When the
// directory is missing it is created if createDirs is set, otherwise
// nothing is written. Failures are logged to log and reported as false.
func (p Path) SaveText(log *zap.Logger, text string, createDirs bool) bool {
	log = logger.WithCallingContext(log, "fspath", "SaveText").
		With(zap.String("path", p.Raw()))

	if p.IsEmpty() {
		log.Warn("cannot save text to an empty path")

		return false
	}

	if !p.PathExists() {
		if !createDirs {
			log.Warn("directory does not exist")

			return false
		}

		if err := p.EnsureDir(); err != nil {
			log.Error("could not create directory", zap.Error(err))

			return false
		}
	}

	if err := os.WriteFile(p.Raw(), []byte(text), filePerm); err != nil {
		log.Error("could not save text", zap.Error(err))

		return false
	}

	return true
}

// CopyTo copies the file to dest, creating dest's directory when
// needed. An existing dest is replaced only when overwrite is set.
func (p Path) CopyTo(dest Path, overwrite bool) error {
	if err := p.checkTransfer(dest, overwrite); err != nil {
		return err
	}

	src, err := os.Open(p.Raw())
	if err != nil {
		return fmt.Errorf("open %q: %w", p.Raw(), err)
	}

	defer src.Close() // nolint: errcheck

	out, err := os.OpenFile(dest.Raw(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("create %q: %w", dest.Raw(), err)
	}

	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()

		return fmt.Errorf("copy %q to %q: %w", p.Raw(), dest.Raw(), err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("close %q: %w", dest.Raw(), err)
	}

	return nil
}

// MoveTo moves the file to dest, creating dest's directory when
// needed. An existing dest is replaced only when overwrite is set.
func (p Path) MoveTo(dest Path, overwrite bool) error {
	if err := p.checkTransfer(dest, overwrite); err != nil {
		return err
	}

	if err := os.Rename(p.Raw(), dest.Raw()); err == nil {
		return nil
	}

	// Rename fails across devices.
	if err := p.CopyTo(dest, true); err != nil {
		return err
	}

	if err := os.Remove(p.Raw()); err != nil {
		return fmt.Errorf("remove %q: %w", p.Raw(), err)
	}

	return nil
}

func (p Path) checkTransfer(dest Path, overwrite bool) error {
	if !p.Exists() {
		return fmt.Errorf("%w: file %q does not exist", errors.ErrNotFound, p.Raw())
	}

	if dest.IsEmpty() {
		return errors.NewInvalidArgument("destination is empty")
	}

	if p.sameFile(dest) {
		return errors.NewInvalidArgument("destination %q is the source file", dest.Raw())
	}

	if dest.Exists() && !overwrite {
		return fmt.Errorf("%w: file %q already exists", errors.ErrAlreadyExists, dest.Raw())
	}

	return dest.EnsureDir()
}

// sameFile reports whether p and dest resolve to the same file, by
// absolute path or, when both exist, by file identity.
func (p Path) sameFile(dest Path) bool {
	a, errA := filepath.Abs(p.Raw())
	b, errB := filepath.Abs(dest.Raw())

	if errA == nil && errB == nil && a == b {
		return true
	}

	si, err := os.Stat(p.Raw())
	if err != nil {
		return false
	}

	di, err := os.Stat(dest.Raw())
	if err != nil {
		return false
	}

	return os.SameFile(si, di)
}

// IsLocked reports whether the file cannot be opened for reading.
func (p Path) IsLocked() bool {
	f, err := os.Open(p.Raw())
	if err != nil {
		return true
	}

	_ = f.Close()

	return false
}

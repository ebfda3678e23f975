// Package fsx relocates files into the output tree. Both operations refuse
// to replace an existing destination.
package fsx

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// renameFunc is swapped in tests to simulate EXDEV.
var renameFunc = os.Rename

// Op names the relocation that failed.
type Op string

const (
	OpCopy Op = "copy"
	OpMove Op = "move"
)

// RelocationError reports a failed copy or move of Src to Dst.
type RelocationError struct {
	Op  Op
	Src string
	Dst string
	Err error
}

func (e *RelocationError) Error() string {
	return fmt.Sprintf("%s %q -> %q: %v", e.Op, e.Src, e.Dst, e.Err)
}

func (e *RelocationError) Unwrap() error { return e.Err }

// IsRelocation reports whether err is a [*RelocationError].
func IsRelocation(err error) bool {
	var e *RelocationError
	return errors.As(err, &e)
}

// Copy copies src to dst, keeping the permission bits and the access and
// modification times. dst must not exist. A partially written dst is
// removed on failure.
func Copy(src, dst string) error {
	if err := copyFile(src, dst); err != nil {
		return &RelocationError{Op: OpCopy, Src: src, Dst: dst, Err: err}
	}
	return nil
}

// Move renames src to dst. When the two are on different filesystems the
// file is copied and the source removed afterwards. dst must not exist.
func Move(src, dst string) error {
	if err := noClobber(dst); err != nil {
		return &RelocationError{Op: OpMove, Src: src, Dst: dst, Err: err}
	}
	err := renameFunc(src, dst)
	if err == nil {
		return nil
	}
	if !isEXDEV(err) {
		return &RelocationError{Op: OpMove, Src: src, Dst: dst, Err: err}
	}

	if err := copyFile(src, dst); err != nil {
		return &RelocationError{Op: OpMove, Src: src, Dst: dst, Err: err}
	}
	if err := os.Remove(src); err != nil {
		return &RelocationError{Op: OpMove, Src: src, Dst: dst, Err: fmt.Errorf("copied but could not remove source: %w", err)}
	}
	return nil
}

// noClobber returns an error wrapping fs.ErrExist when dst is present.
func noClobber(dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("destination %w", fs.ErrExist)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return err
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}

	// O_EXCL makes the existence check and the create one step.
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fi.Mode().Perm())
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("destination %w", fs.ErrExist)
		}
		return err
	}
	defer func() {
		if err != nil {
			_ = out.Close()
			_ = os.Remove(dst)
		}
	}()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	if err = out.Sync(); err != nil {
		return err
	}
	if err = out.Close(); err != nil {
		return err
	}
	// The umask may have narrowed the create mode.
	if err = os.Chmod(dst, fi.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, accessTime(fi), fi.ModTime())
}

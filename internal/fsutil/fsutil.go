// Package fsutil bundles the few filesystem primitives the reorganization is built from.
// All of them operate on an afero.Fs so that callers can swap the real disk for an in-memory tree.
package fsutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/afero"
)

const chmodBits = os.ModePerm | os.ModeSetuid | os.ModeSetgid | os.ModeSticky

// Lstat describes the entry at path without following a final symlink if the filesystem supports it.
func Lstat(fs afero.Fs, path string) (os.FileInfo, error) {
	if lstater, ok := fs.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return fs.Stat(path)
}

// Exists reports whether anything (including a dangling symlink) occupies path.
func Exists(fs afero.Fs, path string) (bool, error) {
	_, err := Lstat(fs, path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}

// Remove deletes the entry at path: recursively for real directories, directly for files and symlinks.
func Remove(fs afero.Fs, path string) error {
	info, err := Lstat(fs, path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}

// Move relocates src to dst. A rename is tried first; if src and dst live on different devices
// the entry is copied and the original removed afterwards.
func Move(fs afero.Fs, src, dst string) error {
	err := fs.Rename(src, dst)
	if err == nil || !isCrossDevice(err) {
		return err
	}

	info, err := Lstat(fs, src)
	if err != nil {
		return err
	}
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return moveSymlink(fs, src, dst)
	case info.IsDir():
		if err := CopyDir(fs, src, dst); err != nil {
			return fmt.Errorf("cannot copy directory across devices: %w", err)
		}
		return fs.RemoveAll(src)
	default:
		if err := CopyFile(fs, src, dst); err != nil {
			return fmt.Errorf("cannot copy file across devices: %w", err)
		}
		return fs.Remove(src)
	}
}

func moveSymlink(fs afero.Fs, src, dst string) error {
	reader, canRead := fs.(afero.LinkReader)
	linker, canLink := fs.(afero.Linker)
	if !canRead || !canLink {
		if err := CopyFile(fs, src, dst); err != nil {
			return err
		}
		return fs.Remove(src)
	}
	target, err := reader.ReadlinkIfPossible(src)
	if err != nil {
		return err
	}
	if err := linker.SymlinkIfPossible(target, dst); err != nil {
		return err
	}
	return fs.Remove(src)
}

func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}

// CopyFile copies the regular file (or symlink target) at src to dst, replacing dst's content.
// Permission bits and modification time are carried over.
func CopyFile(fs afero.Fs, src, dst string) error {
	info, err := fs.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("cannot copy %s: is a directory", src)
	}

	in, err := fs.Open(src)
	if err != nil {
		return fmt.Errorf("cannot open file: %w", err)
	}
	defer in.Close()

	out, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("cannot create file: %w", err)
	}
	if _, err = io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("cannot read/write file content: %w", err)
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("cannot finish writing file: %w", err)
	}
	return copyMetadata(fs, dst, info)
}

// CopyDir recursively copies the directory src to dst, which must not exist yet.
// Symlinks below src are followed. Copying continues past failing entries; all failures are returned joined.
func CopyDir(fs afero.Fs, src, dst string) error {
	info, err := fs.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("cannot copy %s: not a directory", src)
	}
	if err := fs.Mkdir(dst, 0o700); err != nil {
		return fmt.Errorf("cannot make dir: %w", err)
	}

	entries, err := afero.ReadDir(fs, src)
	if err != nil {
		return fmt.Errorf("cannot list directory: %w", err)
	}

	var errs []error
	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())
		if entry.Mode()&os.ModeSymlink != 0 {
			resolved, err := fs.Stat(from)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			entry = resolved
		}
		if entry.IsDir() {
			err = CopyDir(fs, from, to)
		} else {
			err = CopyFile(fs, from, to)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", from, err))
		}
	}

	if err := copyMetadata(fs, dst, info); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func copyMetadata(fs afero.Fs, dst string, src os.FileInfo) error {
	if err := fs.Chmod(dst, src.Mode()&chmodBits); err != nil {
		return fmt.Errorf("cannot set permissions: %w", err)
	}
	if err := fs.Chtimes(dst, time.Now(), src.ModTime()); err != nil {
		return fmt.Errorf("cannot set modification time: %w", err)
	}
	return nil
}

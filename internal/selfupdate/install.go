package selfupdate

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
)

// replaceExecutable swaps the file at target for binary, keeping its mode.
// The new file is staged next to the target so the final rename stays on
// one filesystem. The previous executable is moved to target+".old" during
// the swap and put back if the swap fails; Windows refuses to delete a
// running executable, so a leftover .old file there is expected.
func replaceExecutable(target string, binary []byte) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	staged, err := stage(filepath.Dir(target), binary, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(staged) }()

	old := target + ".old"
	_ = os.Remove(old)
	if err := os.Rename(target, old); err != nil {
		return fmt.Errorf("move current executable aside: %w", err)
	}
	if err := os.Rename(staged, target); err != nil {
		if rerr := os.Rename(old, target); rerr != nil {
			return fmt.Errorf("swap failed (%v) and restore failed: %w", err, rerr)
		}
		return fmt.Errorf("swap executable: %w", err)
	}
	_ = os.Remove(old)
	return nil
}

// stage writes binary to a temp file in dir and reads it back to make sure
// the bytes on disk are the bytes that were verified.
func stage(dir string, binary []byte, mode os.FileMode) (string, error) {
	f, err := os.CreateTemp(dir, "."+BinaryName+"-update-*")
	if err != nil {
		return "", fmt.Errorf("create staging file: %w", err)
	}
	name := f.Name()
	fail := func(err error) (string, error) {
		_ = f.Close()
		_ = os.Remove(name)
		return "", err
	}

	if _, err := f.Write(binary); err != nil {
		return fail(fmt.Errorf("write staging file: %w", err))
	}
	if err := f.Sync(); err != nil {
		return fail(fmt.Errorf("sync staging file: %w", err))
	}
	if err := f.Chmod(mode); err != nil {
		return fail(fmt.Errorf("chmod staging file: %w", err))
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("close staging file: %w", err)
	}

	written, err := os.ReadFile(name)
	if err != nil {
		_ = os.Remove(name)
		return "", fmt.Errorf("re-read staging file: %w", err)
	}
	if sha256.Sum256(written) != sha256.Sum256(binary) {
		_ = os.Remove(name)
		return "", fmt.Errorf("%w: staged file differs from download", ErrChecksum)
	}
	return name, nil
}

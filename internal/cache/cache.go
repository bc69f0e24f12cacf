// Package cache is Hawk's on-disk `.bc` bytecode cache: given a `.hawk`
// source path, it decides whether a sibling `.bc` file is already
// up to date and, if not, writes a fresh one. The filename validation and
// modified-time bookkeeping are adapted from the teacher's
// pkg/vfs.VirtualDisk guest-file layer, retargeted from an in-memory
// virtual disk shared by a running CPU to a real filesystem sidecar file
// written once per compile.
package cache

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
)

// validStem matches the source filename (without its .hawk extension)
// the same way the teacher's VirtualDisk restricts guest filenames: short,
// alphanumeric-plus-underscore names only.
var validStem = regexp.MustCompile(`^[a-zA-Z0-9_]{1,64}$`)

var ErrInvalidPath = errors.New("cache: source path is not a valid .hawk filename")

// Sidecar returns the `.bc` path a `.hawk` source path caches to, or
// ErrInvalidPath if the source's base name doesn't pass the filename
// sanity check.
func Sidecar(sourcePath string) (string, error) {
	dir := filepath.Dir(sourcePath)
	base := filepath.Base(sourcePath)
	stem := base[:len(base)-len(filepath.Ext(base))]
	if !validStem.MatchString(stem) {
		return "", ErrInvalidPath
	}
	return filepath.Join(dir, stem+".bc"), nil
}

// Fresh reports whether the sidecar `.bc` file at bcPath exists and its
// modification time is at or after sourcePath's — the same "no need to
// redo work already reflected on disk" check the teacher's
// startDiskSyncer applies to its own dirty-flag flush cadence, just
// keyed on a real file timestamp instead of an in-memory dirty flag.
func Fresh(sourcePath, bcPath string) bool {
	srcInfo, err := os.Stat(sourcePath)
	if err != nil {
		return false
	}
	bcInfo, err := os.Stat(bcPath)
	if err != nil {
		return false
	}
	return !bcInfo.ModTime().Before(srcInfo.ModTime())
}

// Load reads a cached bytecode packet.
func Load(bcPath string) ([]byte, error) {
	return os.ReadFile(bcPath)
}

// Store writes code to bcPath, validating the path the same way Fresh's
// counterpart in the teacher validates a guest filename before a write.
func Store(sourcePath string, code []byte) (string, error) {
	bcPath, err := Sidecar(sourcePath)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(bcPath, code, 0o644); err != nil {
		return "", err
	}
	return bcPath, nil
}

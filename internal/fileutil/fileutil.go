// Package fileutil provides file and path utility functions, including the
// overwrite/backup/skip save policies used when writing .tex output.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Save policies for existing output files.
const (
	PolicyOverwrite = "overwrite"
	PolicyBackup    = "backup"
	PolicySkip      = "skip"
)

// File permission constants.
const (
	DirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	FilePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for file utility operations.
var (
	ErrInvalidPolicy = errors.New("invalid save policy")
	ErrBackupFailed  = errors.New("failed to back up existing file")
)

// ValidatePolicy checks that policy names a known save policy.
func ValidatePolicy(policy string) error {
	switch policy {
	case PolicyOverwrite, PolicyBackup, PolicySkip:
		return nil
	}
	return fmt.Errorf("%w: %q (must be overwrite, backup, or skip)", ErrInvalidPolicy, policy)
}

// Save writes data to path according to the policy. The parent directory is
// created on demand. Returns saved=false when the policy is skip and the
// file already exists; backupPath is non-empty when a backup was taken.
func Save(path string, data []byte, policy string) (saved bool, backupPath string, err error) {
	if err := ValidatePolicy(policy); err != nil {
		return false, "", err
	}

	exists := FileExists(path)
	if exists && policy == PolicySkip {
		return false, "", nil
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, DirPermissions); err != nil {
			return false, "", fmt.Errorf("creating output directory: %w", err)
		}
	}

	if exists && policy == PolicyBackup {
		backupPath = BackupPath(path)
		if err := os.Rename(path, backupPath); err != nil {
			return false, "", fmt.Errorf("%w: %v", ErrBackupFailed, err)
		}
	}

	if err := os.WriteFile(path, data, FilePermissions); err != nil {
		return false, backupPath, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, backupPath, nil
}

// BackupPath returns the backup name for a path (path + ".bak").
func BackupPath(path string) string {
	return path + ".bak"
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a name. A string containing path separators (/, \) is treated as a path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

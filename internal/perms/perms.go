// Package perms centralizes file and directory permission constants used
// when persisting generator output.
package perms

import "os"

const (
	// RegularFile permissions for generated files (gallery output, logs).
	// Mode 0644: owner read/write, group read, others read.
	RegularFile os.FileMode = 0o644

	// RegularDir permissions for created directories (output parents).
	// Mode 0755: owner read/write/execute, group and others read/execute.
	RegularDir os.FileMode = 0o755
)

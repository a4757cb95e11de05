package git

import (
	"bytes"
	"os"
)

// ManagedMarker is written into every hook script hookman generates.
const ManagedMarker = "# Generated by hookman"

// IsManagedHook checks if a hook file was generated by hookman
func IsManagedHook(hookPath string) bool {
	content, err := os.ReadFile(hookPath)
	if err != nil {
		return false
	}
	return bytes.Contains(content, []byte(ManagedMarker))
}

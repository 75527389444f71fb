package config

import (
	"path"
	"runtime"
	"strings"
)

// PathStyle names the path-separator convention of the host.
// Mount paths handed to the engine must always be POSIX-style, so
// normalization is a pure function of (raw path, style) rather than of
// the operating system the binary was compiled for.
type PathStyle string

const (
	// StylePOSIX covers hosts using forward-slash paths.
	StylePOSIX PathStyle = "posix"
	// StyleWindows covers hosts using backslash paths with drive letters.
	StyleWindows PathStyle = "windows"
)

// HostPathStyle returns the style of the running host.
func HostPathStyle() PathStyle {
	if runtime.GOOS == "windows" {
		return StyleWindows
	}
	return StylePOSIX
}

// MountPath normalizes a host path into the POSIX form the engine expects
// in bind mount specifications. Windows separators are rewritten to
// forward slashes; the drive letter prefix is preserved.
func MountPath(raw string, style PathStyle) string {
	if raw == "" {
		return raw
	}
	if style == StyleWindows {
		raw = strings.ReplaceAll(raw, `\`, "/")
	}
	return path.Clean(raw)
}

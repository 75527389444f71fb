package config

import "testing"

func TestMountPath(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		style PathStyle
		want  string
	}{
		{"posix absolute", "/home/ci/config", StylePOSIX, "/home/ci/config"},
		{"posix trailing slash", "/home/ci/config/", StylePOSIX, "/home/ci/config"},
		{"posix redundant segments", "/home/ci/../ci/config", StylePOSIX, "/home/ci/config"},
		{"windows drive path", `C:\Users\ci\config`, StyleWindows, "C:/Users/ci/config"},
		{"windows mixed separators", `C:\Users/ci\config`, StyleWindows, "C:/Users/ci/config"},
		{"windows trailing backslash", `D:\grid\`, StyleWindows, "D:/grid"},
		{"backslash kept literal on posix", `/home/ci/dir\name`, StylePOSIX, `/home/ci/dir\name`},
		{"empty", "", StylePOSIX, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MountPath(tt.raw, tt.style)
			if got != tt.want {
				t.Errorf("MountPath(%q, %q) = %q, want %q", tt.raw, tt.style, got, tt.want)
			}
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, "selenoid", cfg.Gateway.Name)
	assert.Equal(t, "selenoid-ui", cfg.UI.Name)
	assert.Equal(t, 4444, cfg.Gateway.Port)
	assert.Equal(t, 8080, cfg.UI.Port)
	assert.Equal(t, "latest-release", cfg.Gateway.Version)
	assert.Equal(t, "latest-release", cfg.UI.Version)
	assert.Equal(t, "./browsers.json", cfg.BrowsersFile)
	assert.Equal(t, "/var/run/docker.sock", cfg.EngineSocket)
	assert.True(t, cfg.FailFast)
	assert.False(t, cfg.SkipPull)
	assert.Equal(t, HostPathStyle(), cfg.PathStyle)

	assert.Equal(t, "aerokube/selenoid:latest-release", cfg.GatewayImage())
	assert.Equal(t, "aerokube/selenoid-ui:latest-release", cfg.UIImage())
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
gateway:
  version: "1.10.12"
  port: 4445
  memory: "512m"
  cpus: 1.5
  args: ["-limit", "8"]
ui:
  version: "1.10.4"
browsers_file: ./conf/browsers.json
skip_pull: true
fail_fast: false
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gridkit.yaml"), []byte(yaml), 0o644))

	cfg, err := NewLoader(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, "aerokube/selenoid:1.10.12", cfg.GatewayImage())
	assert.Equal(t, "aerokube/selenoid-ui:1.10.4", cfg.UIImage())
	assert.Equal(t, 4445, cfg.Gateway.Port)
	assert.Equal(t, []string{"-limit", "8"}, cfg.Gateway.Args)
	assert.Equal(t, "./conf/browsers.json", cfg.BrowsersFile)
	assert.True(t, cfg.SkipPull)
	assert.False(t, cfg.FailFast)

	mem, err := cfg.GatewayMemoryBytes()
	require.NoError(t, err)
	assert.Equal(t, int64(512*1024*1024), mem)
	assert.Equal(t, int64(1.5e9), cfg.GatewayNanoCPUs())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GRIDKIT_GATEWAY_VERSION", "1.11.0")
	t.Setenv("GRIDKIT_SKIP_PULL", "true")

	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, "aerokube/selenoid:1.11.0", cfg.GatewayImage())
	assert.True(t, cfg.SkipPull)
}

func TestLoadRejectsUnknownPathStyle(t *testing.T) {
	t.Setenv("GRIDKIT_PATH_STYLE", "vms")

	_, err := NewLoader(t.TempDir()).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path_style")
}

func TestLoadRejectsBadMemoryLimit(t *testing.T) {
	t.Setenv("GRIDKIT_GATEWAY_MEMORY", "lots")

	_, err := NewLoader(t.TempDir()).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory")
}

func TestMountDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BrowsersFile = "/home/ci/project/browsers.json"
	cfg.PathStyle = StylePOSIX

	dir, err := cfg.MountDir()
	require.NoError(t, err)
	assert.Equal(t, "/home/ci/project", dir)
}

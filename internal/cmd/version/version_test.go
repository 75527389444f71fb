package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridkit-dev/gridkit/internal/cmdutil"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "gridkit 1.2.3 (2026-08-31)", Format("1.2.3", "2026-08-31"))
	assert.Equal(t, "gridkit dev", Format("dev", ""))
}

func TestNewCmdVersion(t *testing.T) {
	f := &cmdutil.Factory{Version: "1.2.3", BuildDate: "2026-08-31"}
	cmd := NewCmdVersion(f)

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "gridkit 1.2.3 (2026-08-31)\n", buf.String())
}

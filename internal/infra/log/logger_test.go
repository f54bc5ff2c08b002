package log_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"csv-charts/internal/infra/log"
)

func TestInit_WritesFileEntries(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, log.Init(dir))

	log.LogInfo("Chart generated", log.RequestID("abc123"), zap.Int("rows", 4), zap.Float64("ratio", 0.5))
	log.Sync()

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	line := string(data)
	assert.Contains(t, line, "INFO Chart generated")
	assert.Contains(t, line, `"request_id":"abc123"`)
	assert.Contains(t, line, `"rows":4`)
	assert.Contains(t, line, `"ratio":0.5`)
}

func TestInit_ConsoleShowsSuccessAndErrors(t *testing.T) {
	var console bytes.Buffer
	defer log.SetConsoleOutput(zapcore.AddSync(&console))()
	dir := t.TempDir()
	require.NoError(t, log.Init(dir))

	log.LogSuccess("Chart generated", zap.Int64("duration_ms", 42))
	log.LogError("Write failed", zap.String("output", "out.png"))
	log.LogDebug("Input validated", zap.String("path", "data.csv"))
	log.LogInfo("Chart request")
	log.Sync()

	out := console.String()
	assert.Contains(t, out, "SUCCESS")
	assert.Contains(t, out, "✓ Chart generated (42ms)")
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "✗ Write failed")
	assert.NotContains(t, out, "Input validated")
	assert.NotContains(t, out, "Chart request")

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	file := string(data)
	assert.Contains(t, file, "INFO Chart generated")
	assert.Contains(t, file, `"duration_ms":42`)
	assert.Contains(t, file, "ERROR Write failed")
	assert.Contains(t, file, "DEBUG Input validated")
}

func TestGenerateRequestID(t *testing.T) {
	a, b := log.GenerateRequestID(), log.GenerateRequestID()

	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)
}

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZapLogger_WritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZapLogger(&buf, "info")

	log.With("module", "billing").Info(context.Background(), "connected", "attempt", 2)
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.Contains(t, out, `"msg":"connected"`)
	assert.Contains(t, out, `"module":"billing"`)
	assert.Contains(t, out, `"attempt":2`)
	assert.Contains(t, out, `"level":"info"`)
}

func TestZapLogger_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	log := NewZapLogger(&buf, "warn")

	log.Debug(context.Background(), "hidden")
	log.Info(context.Background(), "hidden too")
	log.Warn(context.Background(), "shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestNew_SelectsBackend(t *testing.T) {
	var buf bytes.Buffer

	_, ok := New(&buf, "info", FormatZap).(*ZapLogger)
	assert.True(t, ok)

	_, ok = New(&buf, "info", FormatJSON).(*SlogLogger)
	assert.True(t, ok)

	l := New(&buf, "error", FormatText)
	l.Info(context.Background(), "dropped")
	l.Error(context.Background(), "kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "msg=kept")
}

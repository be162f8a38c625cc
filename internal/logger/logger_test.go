// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesRoleAndCaller(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "folio-test")

	l.Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"role":"folio-test"`)
	assert.Contains(t, out, `"func":`)
	assert.Contains(t, out, `"message":"hello"`)
}

func TestNewClientLogger_WritesToLogsFile(t *testing.T) {
	dir := t.TempDir()
	l := NewClientLogger("folio-client", dir)

	l.Info().Msg("from client")

	data, err := os.ReadFile(filepath.Join(dir, "logs"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "from client")
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	assert.True(t, SetLevel("warn"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	assert.False(t, SetLevel("loud"))
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	assert.False(t, SetLevel(""))
}

func TestGetChildLogger_DoesNotLeakFields(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "parent")

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc")
	})

	parent.Info().Msg("parent line")
	assert.NotContains(t, buf.String(), "trace_id")

	buf.Reset()
	child.Info().Msg("child line")
	assert.Contains(t, buf.String(), `"trace_id":"abc"`)
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("ctx line")
	assert.Contains(t, buf.String(), "ctx line")
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	FromRequest(req).Info().Msg("req line")
	assert.Contains(t, buf.String(), "req line")
}

func TestNop_NeverNil(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	l.Info().Msg("discarded")
}

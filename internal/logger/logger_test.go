package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	nexuserrors "github.com/alexisbeaulieu97/nexus/pkg/errors"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"route": "/about", "method": "GET"})
	log.Info("request served")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "request served", entry["message"])
	require.Equal(t, "/about", entry["route"])
	require.Equal(t, "GET", entry["method"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"request_id": "abc"})
	log.Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "abc", entry["request_id"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	ctx := WithContext(context.Background(), log)
	require.Same(t, log, FromContext(ctx))

	FromContext(context.Background()).Info("dropped")
	require.Empty(t, buf.String())
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	id := NewRequestID()
	require.Len(t, id, 36)
	require.NotEqual(t, id, NewRequestID())

	ctx := WithRequestID(context.Background(), id)
	require.Equal(t, id, RequestID(ctx))
	require.Empty(t, RequestID(context.Background()))
}

func TestIsTerminalFalseForBuffers(t *testing.T) {
	t.Parallel()

	require.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestLoggerErrorAddsTypedDetail(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want logEntry
	}{
		{
			name: "parse",
			err:  nexuserrors.NewParseError("content.yaml", 7, errors.New("bad indent")),
			want: logEntry{"kind": "parse", "path": "content.yaml", "line": float64(7)},
		},
		{
			name: "validation",
			err:  fmt.Errorf("load: %w", nexuserrors.NewValidationError("hero.title", "required", nil)),
			want: logEntry{"kind": "validation", "field": "hero.title"},
		},
		{
			name: "submission",
			err:  nexuserrors.NewSubmissionError(502, errors.New("bad gateway")),
			want: logEntry{"kind": "submission", "status": float64(502)},
		},
		{
			name: "render",
			err:  nexuserrors.NewRenderError("/about", errors.New("closed")),
			want: logEntry{"kind": "render", "route": "/about"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			log, err := New(Options{Writer: buf})
			require.NoError(t, err)
			log.Error(tc.err, "failed")

			var entry logEntry
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			for key, value := range tc.want {
				require.Equal(t, value, entry[key], key)
			}
		})
	}
}

func TestNilLoggerIsSilent(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("x")
		log.Error(errors.New("boom"), "x")
		require.Nil(t, log.WithFields(map[string]any{"a": 1}))
	})
}

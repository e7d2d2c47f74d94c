package script

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webweaver/studio/pkg/recording"
)

func writeScript(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeScript(t, "checkout.yaml", `
name: checkout
steps:
  - type: nav.goto
    payload:
      url: https://shop.example.com/cart
  - type: wait
    delayMs: 250
  - type: dom.click
    payload:
      selector: "#checkout"
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "checkout", s.Name)
	require.Len(t, s.Steps, 3)
	assert.Equal(t, "nav.goto", s.Steps[0].Type)
	assert.Equal(t, "https://shop.example.com/cart", s.Steps[0].Payload["url"])
	assert.Equal(t, 250, s.Steps[1].DelayMs)
	assert.Equal(t, "#checkout", s.Steps[2].Payload["selector"])
	assert.NoError(t, s.Validate())
}

func TestLoadJSON(t *testing.T) {
	path := writeScript(t, "checkout.json", `{
    "name": "checkout",
    "steps": [
        {"type": "nav.goto", "payload": {"url": "https://shop.example.com"}},
        {"type": "dom.click", "payload": {"selector": "#buy"}, "delayMs": 10}
    ]
}`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "checkout", s.Name)
	require.Len(t, s.Steps, 2)
	assert.Equal(t, "dom.click", s.Steps[1].Type)
	assert.Equal(t, 10, s.Steps[1].DelayMs)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "gone.yaml"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := Load(writeScript(t, "empty.yaml", ""))
		assert.ErrorContains(t, err, "empty")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load(writeScript(t, "steps.txt", "steps: []"))
		assert.ErrorContains(t, err, "unsupported script format")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeScript(t, "bad.yaml", "steps: [{"))
		assert.ErrorContains(t, err, "parsing YAML")
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Load(writeScript(t, "bad.json", "{"))
		assert.ErrorContains(t, err, "parsing JSON")
	})
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		script  Script
		wantErr string
	}{
		{
			name:    "no steps",
			script:  Script{},
			wantErr: "no steps",
		},
		{
			name: "unknown type",
			script: Script{Steps: []Step{
				{Type: "nav.goto"},
				{Type: "scroll"},
			}},
			wantErr: `step 2: unknown event type "scroll"`,
		},
		{
			name: "negative delay",
			script: Script{Steps: []Step{
				{Type: "wait", DelayMs: -5},
			}},
			wantErr: "step 1: negative delayMs",
		},
		{
			name: "valid",
			script: Script{Steps: []Step{
				{Type: "nav.goto"},
				{Type: "dom.click"},
				{Type: "wait"},
			}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.script.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tc.wantErr)
			}
		})
	}
}

func startSession(t *testing.T) *recording.Session {
	t.Helper()
	sess := recording.New(recording.SessionConfig{
		RecordingsDir: t.TempDir(),
		Browser:       "chromium",
		BaseURL:       "https://shop.example.com",
	}, nil)
	require.NoError(t, sess.Start("scripted"))
	return sess
}

func TestRunAppendsSteps(t *testing.T) {
	s := Script{Steps: []Step{
		{Type: "nav.goto", Payload: map[string]any{"url": "https://shop.example.com"}},
		{Type: "dom.click", Payload: map[string]any{"selector": "#buy"}},
		{Type: "wait"},
	}}

	sess := startSession(t)
	require.NoError(t, s.Run(context.Background(), sess, RunOptions{}))
	require.NoError(t, sess.Stop())

	doc, err := recording.LoadDocument(sess.FilePath())
	require.NoError(t, err)
	require.Len(t, doc.Recording.Events, 3)
	assert.Equal(t, recording.EventNavGoto, doc.Recording.Events[0].Type)
	assert.JSONEq(t, `{"url":"https://shop.example.com"}`, string(doc.Recording.Events[0].Payload))
	assert.Equal(t, recording.EventDomClick, doc.Recording.Events[1].Type)
	assert.Equal(t, recording.EventWait, doc.Recording.Events[2].Type)
	// A payload-less step persists as an empty object.
	assert.JSONEq(t, `{}`, string(doc.Recording.Events[2].Payload))
}

func TestRunRejectsInvalidScript(t *testing.T) {
	s := Script{Steps: []Step{{Type: "scroll"}}}
	sess := startSession(t)

	err := s.Run(context.Background(), sess, RunOptions{})
	assert.ErrorContains(t, err, "unknown event type")
	assert.Equal(t, 0, sess.EventCount())
}

func TestRunSkipDelays(t *testing.T) {
	s := Script{Steps: []Step{
		{Type: "nav.goto", DelayMs: 30000},
		{Type: "dom.click", DelayMs: 30000},
	}}
	sess := startSession(t)

	start := time.Now()
	require.NoError(t, s.Run(context.Background(), sess, RunOptions{SkipDelays: true}))
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, 2, sess.EventCount())
}

func TestRunContextCancel(t *testing.T) {
	s := Script{Steps: []Step{
		{Type: "nav.goto"},
		{Type: "dom.click", DelayMs: 60000},
	}}
	sess := startSession(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.Run(ctx, sess, RunOptions{})
	assert.True(t, errors.Is(err, context.Canceled))
	// The first step has no delay and lands before the cancelled wait.
	assert.Equal(t, 1, sess.EventCount())
}

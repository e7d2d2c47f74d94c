// Package script loads and runs capture scripts: files that replay a
// sequence of browser events into a recording session, standing in for
// the inspector's live event feed. No browser is launched.
package script

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/webweaver/studio/pkg/recording"
)

// ErrNotFound indicates the script file does not exist.
var ErrNotFound = errors.New("script file not found")

// Step is one scripted event. Payload is the event payload as authored;
// DelayMs is an optional pause before the event fires.
type Step struct {
	Type    string         `yaml:"type" json:"type"`
	Payload map[string]any `yaml:"payload,omitempty" json:"payload,omitempty"`
	DelayMs int            `yaml:"delayMs,omitempty" json:"delayMs,omitempty"`
}

// Script is a named sequence of steps.
type Script struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	Steps []Step `yaml:"steps" json:"steps"`
}

// RunOptions control script playback.
type RunOptions struct {
	// SkipDelays ignores every step's delayMs.
	SkipDelays bool
}

// Load reads a script from a YAML (.yaml/.yml) or JSON (.json) file,
// chosen by extension.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("script file is empty: %s", path)
	}

	var s Script
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parsing YAML script: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parsing JSON script: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported script format: %s (want .yaml, .yml or .json)", filepath.Ext(path))
	}
	return &s, nil
}

// Validate checks that the script has steps and that every step carries a
// known event type and a non-negative delay. Errors name the offending
// step, counted from 1.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return errors.New("script has no steps")
	}
	for i, st := range s.Steps {
		if recording.EventTypeFromString(st.Type) == recording.EventUnknown {
			return fmt.Errorf("step %d: unknown event type %q", i+1, st.Type)
		}
		if st.DelayMs < 0 {
			return fmt.Errorf("step %d: negative delayMs %d", i+1, st.DelayMs)
		}
	}
	return nil
}

// Run validates the script and appends its steps to the session in order.
// Each step's delay is slept before the event fires unless opts.SkipDelays
// is set; ctx cancels mid-delay.
func (s *Script) Run(ctx context.Context, sess *recording.Session, opts RunOptions) error {
	if err := s.Validate(); err != nil {
		return err
	}
	for i, st := range s.Steps {
		if !opts.SkipDelays && st.DelayMs > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(st.DelayMs) * time.Millisecond):
			}
		}

		payload, err := st.payloadJSON()
		if err != nil {
			return fmt.Errorf("step %d: encoding payload: %w", i+1, err)
		}
		if err := sess.AppendEvent(recording.EventTypeFromString(st.Type), payload); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// payloadJSON renders the authored payload as JSON. A step without a
// payload yields nil; the session writes that as an empty object.
func (st *Step) payloadJSON() (json.RawMessage, error) {
	if st.Payload == nil {
		return nil, nil
	}
	return json.Marshal(st.Payload)
}

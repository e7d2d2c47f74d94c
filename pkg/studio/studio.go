package studio

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/webweaver/studio/pkg/logging"
	"github.com/webweaver/studio/pkg/recording"
	"github.com/webweaver/studio/pkg/solution"
)

var (
	// ErrNoSolution is returned by operations that require an open solution.
	ErrNoSolution = errors.New("no solution is open")

	// ErrNotRecording is returned by recording operations when no session
	// is active.
	ErrNotRecording = errors.New("no recording is active")
)

// Studio binds the state controller, the open solution, and the active
// recording session, keeping the three in lockstep: the machine is in a
// recording state exactly while a session is active. Not safe for
// concurrent use.
type Studio struct {
	log        *slog.Logger
	controller *Controller
	sol        *solution.Solution
	session    *recording.Session
}

// New returns a studio with no solution open. A nil logger is replaced
// with a no-op logger.
func New(log *slog.Logger) *Studio {
	if log == nil {
		log = logging.Nop()
	}
	return &Studio{
		log:        log,
		controller: NewController(),
	}
}

// Controller exposes the state machine, primarily so callers can register
// a transition listener and flip the UI-ready flag.
func (s *Studio) Controller() *Controller {
	return s.controller
}

// State returns the controller's current state.
func (s *Studio) State() State {
	return s.controller.State()
}

// Solution returns the open solution, or nil.
func (s *Studio) Solution() *solution.Solution {
	return s.sol
}

// Session returns the active recording session, or nil.
func (s *Studio) Session() *recording.Session {
	return s.session
}

// OpenSolution loads the .wws file at path and makes it the open solution.
// An active recording against the previous solution is stopped first; a
// flush failure there is logged, not returned, because the new solution
// loaded fine.
func (s *Studio) OpenSolution(path string) (*solution.Solution, error) {
	sol, err := solution.Load(path)
	if err != nil {
		return nil, err
	}
	s.finishSession()
	s.sol = sol
	s.controller.SolutionLoaded()
	s.log.Info("solution opened", "name", sol.Name, "path", path)
	return sol, nil
}

// CloseSolution closes the open solution, stopping any active recording.
// Closing when nothing is open is a no-op.
func (s *Studio) CloseSolution() {
	if s.sol == nil {
		return
	}
	s.finishSession()
	s.log.Info("solution closed", "name", s.sol.Name)
	s.sol = nil
	s.controller.SolutionClosed()
}

// finishSession stops and discards the active session, if any.
func (s *Studio) finishSession() {
	if s.session == nil {
		return
	}
	if s.session.IsRecording() {
		if err := s.session.Stop(); err != nil {
			s.log.Warn("flushing recording on close", "error", err)
		}
	}
	s.session = nil
}

// StartRecording starts a new recording session named name against the
// open solution and moves the machine to StateRecordingRunning. It fails
// with ErrNoSolution when nothing is open, with recording.ErrSessionActive
// when a session is already running or paused, and leaves the machine in
// StateSolutionLoaded when the session cannot create its file.
func (s *Studio) StartRecording(name string) error {
	if s.sol == nil {
		return ErrNoSolution
	}
	if s.session != nil && s.session.IsRecording() {
		return recording.ErrSessionActive
	}
	// Recording starts from the idle state only; hide the inspector first.
	if s.controller.State() == StateInspecting {
		s.controller.InspectorToggle(false)
	}

	sess := recording.New(s.sol.SessionConfig(), s.log)
	if err := sess.Start(name); err != nil {
		return err
	}
	s.session = sess
	s.controller.RecordStartStop()
	return nil
}

// StopRecording finalizes the active session and returns the path of the
// finished .wwrec file. The machine returns to StateSolutionLoaded even
// when the final flush fails; the flush error is returned.
func (s *Studio) StopRecording() (string, error) {
	if s.session == nil || !s.session.IsRecording() {
		return "", ErrNotRecording
	}
	path := s.session.FilePath()
	err := s.session.Stop()
	s.session = nil
	s.controller.RecordStartStop()
	return path, err
}

// PauseRecording toggles the machine between StateRecordingRunning and
// StateRecordingPaused. The session itself keeps its file open either way;
// pausing only signals the event source to hold its feed.
func (s *Studio) PauseRecording() error {
	if s.session == nil || !s.session.IsRecording() {
		return ErrNotRecording
	}
	s.controller.RecordPause()
	return nil
}

// CaptureEvent appends one event to the active session. While the machine
// is paused the event is dropped silently, mirroring a held feed.
func (s *Studio) CaptureEvent(t recording.EventType, payload json.RawMessage) error {
	if s.session == nil || !s.session.IsRecording() {
		return ErrNotRecording
	}
	if s.controller.State() == StateRecordingPaused {
		return nil
	}
	return s.session.AppendEvent(t, payload)
}

// SetInspecting shows or hides the element inspector. It requires an open
// solution and no active recording session.
func (s *Studio) SetInspecting(shown bool) error {
	if s.sol == nil {
		return ErrNoSolution
	}
	if s.session != nil && s.session.IsRecording() {
		return recording.ErrSessionActive
	}
	s.controller.InspectorToggle(shown)
	return nil
}

// Recordings lists the recordings of the open solution, newest first.
func (s *Studio) Recordings() ([]recording.Metadata, error) {
	if s.sol == nil {
		return nil, ErrNoSolution
	}
	return s.sol.DiscoverRecordings(s.log)
}

// RecordingsMatching lists the open solution's recordings whose names
// match the glob pattern, newest first.
func (s *Studio) RecordingsMatching(pattern string) ([]recording.Metadata, error) {
	if s.sol == nil {
		return nil, ErrNoSolution
	}
	return s.sol.DiscoverRecordingsMatching(s.log, pattern)
}

package monitor

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
)

// DefaultInterval is how often the background loop checks for meetings.
const DefaultInterval = 2 * time.Second

// Engine owns the monitoring loop: it probes watched processes, detects
// meeting-state edges, issues pause/resume commands on those edges, and
// publishes a consistent status snapshot after every tick.
//
// Three independently locked cells back the engine, each with a single
// writer: run state (Start/Stop), watch config (SetWatchConfig), and the
// published snapshot (the tick). No lock is held across a probe or media
// call, so a slow pgrep or AppleScript never stalls a Status reader.
type Engine struct {
	detector *Detector
	media    MediaController
	interval time.Duration
	logger   *log.Logger

	runMu   sync.Mutex
	running bool
	stop    chan struct{}

	cfgMu sync.RWMutex
	names []string

	// tickMu serializes ticks: the loop, a synchronous Tick from a test,
	// and a stale tick surviving a rapid Stop/Start can never overlap.
	// previousInMeeting is only touched under it.
	tickMu            sync.Mutex
	previousInMeeting bool

	statusMu sync.RWMutex
	status   Status
}

func NewEngine(detector *Detector, media MediaController, names []string, interval time.Duration, logger *log.Logger) *Engine {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{
		detector: detector,
		media:    media,
		interval: interval,
		logger:   logger,
		names:    normalizeNames(names),
	}
}

// Start launches the background tick loop. Calling Start on a running
// engine is a no-op.
func (e *Engine) Start() {
	e.runMu.Lock()
	defer e.runMu.Unlock()
	if e.running {
		return
	}
	e.running = true
	e.stop = make(chan struct{})
	e.publishRunState(true, "monitoring started")
	go e.loop(e.stop)
}

// Stop prevents any further ticks from being scheduled. A tick already in
// flight completes and publishes normally. Idempotent.
func (e *Engine) Stop() {
	e.runMu.Lock()
	defer e.runMu.Unlock()
	if !e.running {
		return
	}
	e.running = false
	close(e.stop)
	e.publishRunState(false, "monitoring stopped")
}

// Toggle flips the run state and reports whether the engine is now running.
func (e *Engine) Toggle() bool {
	if e.Running() {
		e.Stop()
		return false
	}
	e.Start()
	return true
}

// Running reports whether the background loop is active.
func (e *Engine) Running() bool {
	e.runMu.Lock()
	defer e.runMu.Unlock()
	return e.running
}

func (e *Engine) loop(stop chan struct{}) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	// First check right away rather than one interval in, unless a rapid
	// Stop already beat this goroutine to it.
	select {
	case <-stop:
		return
	default:
		e.Tick()
	}

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			e.Tick()
		}
	}
}

// Tick performs one probe→decide→act→publish cycle. The loop calls it on
// every interval; tests may call it directly for deterministic sequences.
func (e *Engine) Tick() {
	e.tickMu.Lock()
	defer e.tickMu.Unlock()

	meeting := e.detector.Detect(e.WatchConfig())

	var action string
	switch {
	case meeting.InMeeting && !e.previousInMeeting:
		action = e.issue(ActionPause, "meeting started")
	case !meeting.InMeeting && e.previousInMeeting:
		action = e.issue(ActionPlay, "meeting ended")
	}
	e.previousInMeeting = meeting.InMeeting

	// Refresh playback state unconditionally so the snapshot reflects
	// reality even on command-free ticks.
	music, err := e.media.Status()
	if err != nil {
		e.logger.Printf("playback state unavailable: %v", err)
		music = MusicStatus{}
	}

	e.statusMu.Lock()
	e.status.MeetingStatus = meeting
	e.status.MusicStatus = music
	e.status.LastCheck = time.Now()
	if action != "" {
		e.status.LastAction = action
	}
	e.statusMu.Unlock()
}

// issue forwards one command to the media controller. Command failures are
// never fatal: they become the last-action description and the tick goes on.
func (e *Engine) issue(action Action, reason string) string {
	verb, done := "pause", "paused"
	call := e.media.Pause
	if action == ActionPlay {
		verb, done = "resume", "resumed"
		call = e.media.Play
	}

	if _, err := call(); err != nil {
		e.logger.Printf("failed to %s music (%s): %v", verb, reason, err)
		return fmt.Sprintf("failed to %s music (%s): %v", verb, reason, err)
	}
	return fmt.Sprintf("%s music (%s)", done, reason)
}

// Status returns the latest published snapshot. Safe to call from any
// goroutine at any time; before the first tick it reports not-in-meeting
// with no playback info.
func (e *Engine) Status() Status {
	e.statusMu.RLock()
	defer e.statusMu.RUnlock()
	s := e.status
	s.MeetingStatus.ActiveApps = append([]MeetingApp(nil), s.MeetingStatus.ActiveApps...)
	return s
}

// SetWatchConfig atomically replaces the watched process names. Empty and
// whitespace-only names are dropped and duplicates collapse; the new set
// takes effect on the next tick.
func (e *Engine) SetWatchConfig(names []string) {
	normalized := normalizeNames(names)
	e.cfgMu.Lock()
	e.names = normalized
	e.cfgMu.Unlock()
}

// WatchConfig returns a copy of the currently watched process names.
func (e *Engine) WatchConfig() []string {
	e.cfgMu.RLock()
	defer e.cfgMu.RUnlock()
	return append([]string(nil), e.names...)
}

// ManualControl forwards a play/pause command directly to the media
// controller, bypassing meeting-state logic. It updates the last-action
// field but leaves edge tracking alone: a manual pause during a meeting
// does not count as that meeting's pause.
func (e *Engine) ManualControl(action Action) (string, error) {
	var (
		detail string
		err    error
		verb   string
		done   string
	)
	switch action {
	case ActionPause:
		verb, done = "pause", "paused"
		detail, err = e.media.Pause()
	case ActionPlay:
		verb, done = "resume", "resumed"
		detail, err = e.media.Play()
	default:
		return "", fmt.Errorf("unsupported music action %q", action)
	}

	var msg string
	if err != nil {
		msg = fmt.Sprintf("failed to %s music (manual): %v", verb, err)
	} else {
		msg = fmt.Sprintf("%s music (manual)", done)
		if detail != "" {
			msg += ": " + detail
		}
	}

	e.statusMu.Lock()
	e.status.LastAction = msg
	e.statusMu.Unlock()

	return msg, err
}

// publishRunState is called with runMu held so run-state transitions are
// linearized with each other.
func (e *Engine) publishRunState(active bool, action string) {
	e.statusMu.Lock()
	e.status.IsActive = active
	e.status.LastAction = action
	e.status.LastCheck = time.Now()
	e.statusMu.Unlock()
}

// normalizeNames trims whitespace, drops empty entries, and removes
// duplicates while preserving first-seen order.
func normalizeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

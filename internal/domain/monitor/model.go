package monitor

import "time"

// MeetingApp is one watched process name with its observed liveness.
type MeetingApp struct {
	Name      string `json:"name"`
	IsRunning bool   `json:"is_running"`
}

// MeetingStatus is the result of probing every watched process name once.
type MeetingStatus struct {
	InMeeting  bool         `json:"in_meeting"`
	ActiveApps []MeetingApp `json:"active_apps"`
	Timestamp  time.Time    `json:"timestamp"`
}

// MusicStatus reflects what the media session reported, not what the
// engine asked it to do.
type MusicStatus struct {
	IsPlaying  bool   `json:"is_playing"`
	PlayerName string `json:"player_name,omitempty"`
	TrackInfo  string `json:"track_info,omitempty"`
}

// Status is the snapshot published after every tick. All fields come from
// the same tick; readers never see a mix of two cycles.
type Status struct {
	IsActive      bool          `json:"is_active"`
	LastAction    string        `json:"last_action,omitempty"`
	LastCheck     time.Time     `json:"last_check"`
	MeetingStatus MeetingStatus `json:"meeting_status"`
	MusicStatus   MusicStatus   `json:"music_status"`
}

// Action is a playback command forwarded to the media controller.
type Action string

const (
	ActionPlay  Action = "play"
	ActionPause Action = "pause"
)

// PresenceProbe answers whether a process with the exact given name is
// currently alive. A transient failure must surface as an error, never as
// a false positive.
type PresenceProbe interface {
	IsRunning(name string) (bool, error)
}

// MediaController is the boundary to whatever media player is active.
type MediaController interface {
	// Status reports the current playback state.
	Status() (MusicStatus, error)
	// Pause pauses playback. The returned string describes what was done
	// (e.g. which players were paused) and may be empty.
	Pause() (string, error)
	// Play resumes playback, symmetric to Pause.
	Play() (string, error)
}

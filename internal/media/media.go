// Package media controls the active macOS music player through AppleScript.
// Spotify is checked first, then the Music app; neither is ever launched by
// the scripts. When no known player responds to a command, a media key
// press is sent as a fallback.
package media

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/kfstorm/sound-break/internal/domain/monitor"
)

type Controller struct{}

func New() *Controller {
	return &Controller{}
}

// CheckOsascript verifies that osascript is available on PATH.
func (c *Controller) CheckOsascript() error {
	if _, err := exec.LookPath("osascript"); err != nil {
		return fmt.Errorf("osascript not found on PATH")
	}
	return nil
}

// Status queries the current playback state across known players.
func (c *Controller) Status() (monitor.MusicStatus, error) {
	out, err := runScript(statusScript)
	if err != nil {
		return monitor.MusicStatus{}, fmt.Errorf("querying playback state: %w", err)
	}
	return parseStatus(out)
}

// Pause pauses whichever known player is currently playing. The returned
// string describes what happened, e.g. "Paused: Spotify".
func (c *Controller) Pause() (string, error) {
	out, err := runScript(pauseScript)
	if err != nil {
		return "", fmt.Errorf("pausing music: %w", err)
	}
	return out, nil
}

// Play resumes whichever known player is currently paused.
func (c *Controller) Play() (string, error) {
	out, err := runScript(playScript)
	if err != nil {
		return "", fmt.Errorf("resuming music: %w", err)
	}
	return out, nil
}

func runScript(script string) (string, error) {
	out, err := exec.Command("osascript", "-e", script).Output()
	if err != nil {
		return "", fmt.Errorf("osascript: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// parseStatus decodes the pipe-delimited "isPlaying|player|track" line the
// status script returns.
func parseStatus(out string) (monitor.MusicStatus, error) {
	parts := strings.SplitN(out, "|", 3)
	if len(parts) < 3 {
		return monitor.MusicStatus{}, fmt.Errorf("unexpected playback state output %q", out)
	}
	return monitor.MusicStatus{
		IsPlaying:  parts[0] == "true",
		PlayerName: parts[1],
		TrackInfo:  parts[2],
	}, nil
}

const statusScript = `
tell application "System Events"
	try
		set isPlaying to false
		set playerName to ""
		set trackInfo to ""

		set spotifyRunning to (count of (every process whose name is "Spotify")) > 0
		if spotifyRunning then
			tell application "Spotify"
				if player state is playing then
					set isPlaying to true
					set playerName to "Spotify"
					set trackInfo to (artist of current track) & " - " & (name of current track)
				end if
			end tell
		end if

		if not isPlaying then
			set musicRunning to (count of (every process whose name is "Music")) > 0
			if musicRunning then
				tell application "Music"
					if player state is playing then
						set isPlaying to true
						set playerName to "Music"
						try
							set trackInfo to (artist of current track) & " - " & (name of current track)
						on error
							set trackInfo to "Unknown Track"
						end try
					end if
				end tell
			end if
		end if

		return (isPlaying as string) & "|" & playerName & "|" & trackInfo
	on error errMsg
		return "false||Error: " & errMsg
	end try
end tell
`

const pauseScript = `
tell application "System Events"
	set pausedApps to {}

	set spotifyRunning to (count of (every process whose name is "Spotify")) > 0
	if spotifyRunning then
		tell application "Spotify"
			if player state is playing then
				pause
				set pausedApps to pausedApps & {"Spotify"}
			end if
		end tell
	end if

	set musicRunning to (count of (every process whose name is "Music")) > 0
	if musicRunning then
		tell application "Music"
			if player state is playing then
				pause
				set pausedApps to pausedApps & {"Music"}
			end if
		end tell
	end if

	if length of pausedApps is 0 then
		key code 16 using {function down}
		return "Used media key fallback"
	end if

	return "Paused: " & (pausedApps as string)
end tell
`

const playScript = `
tell application "System Events"
	set resumedApps to {}

	set spotifyRunning to (count of (every process whose name is "Spotify")) > 0
	if spotifyRunning then
		tell application "Spotify"
			if player state is paused then
				play
				set resumedApps to resumedApps & {"Spotify"}
			end if
		end tell
	end if

	set musicRunning to (count of (every process whose name is "Music")) > 0
	if musicRunning then
		tell application "Music"
			if player state is paused then
				play
				set resumedApps to resumedApps & {"Music"}
			end if
		end tell
	end if

	if length of resumedApps is 0 then
		key code 16 using {function down}
		return "Used media key fallback"
	end if

	return "Resumed: " & (resumedApps as string)
end tell
`

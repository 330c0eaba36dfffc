// Package ui renders a live terminal view of the monitor, filling the role
// the macOS tray menu plays in a desktop build: current monitoring, meeting
// and music state, with keys for toggling and manual playback control.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kfstorm/sound-break/internal/domain/monitor"
)

const refreshEvery = time.Second

type tickMsg time.Time

type WatchModel struct {
	engine *monitor.Engine
	status monitor.Status
}

func NewWatchModel(engine *monitor.Engine) WatchModel {
	return WatchModel{
		engine: engine,
		status: engine.Status(),
	}
}

func (m WatchModel) Init() tea.Cmd {
	return refresh()
}

func refresh() tea.Cmd {
	return tea.Tick(refreshEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.status = m.engine.Status()
		return m, refresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "s":
			m.engine.Toggle()
			m.status = m.engine.Status()
			return m, nil
		case "p":
			m.engine.ManualControl(monitor.ActionPause)
			m.status = m.engine.Status()
			return m, nil
		case "r":
			m.engine.ManualControl(monitor.ActionPlay)
			m.status = m.engine.Status()
			return m, nil
		}
	}
	return m, nil
}

func (m WatchModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("SoundBreak — Meeting Music Controller"))
	b.WriteString("\n\n")

	if m.status.IsActive {
		b.WriteString(activeStyle.Render("✅ Monitoring active"))
	} else {
		b.WriteString(inactiveStyle.Render("⏸️  Monitoring stopped"))
	}
	b.WriteString("\n")

	if m.status.MeetingStatus.InMeeting {
		b.WriteString(activeStyle.Render("🎤 In meeting"))
	} else {
		b.WriteString(dimStyle.Render("📵 Not in meeting"))
	}
	b.WriteString("\n")

	music := m.status.MusicStatus
	switch {
	case music.IsPlaying && music.TrackInfo != "":
		b.WriteString(activeStyle.Render(fmt.Sprintf("🎵 %s: %s", music.PlayerName, music.TrackInfo)))
	case music.IsPlaying:
		b.WriteString(activeStyle.Render("🎵 Music playing"))
	default:
		b.WriteString(dimStyle.Render("⏸️  Music not playing"))
	}
	b.WriteString("\n\n")

	for _, app := range m.status.MeetingStatus.ActiveApps {
		if app.IsRunning {
			b.WriteString(activeStyle.Render("  ● " + app.Name))
		} else {
			b.WriteString(dimStyle.Render("  ○ " + app.Name))
		}
		b.WriteString("\n")
	}
	if len(m.status.MeetingStatus.ActiveApps) > 0 {
		b.WriteString("\n")
	}

	if m.status.LastAction != "" {
		b.WriteString(dimStyle.Render("Last action: " + m.status.LastAction))
		b.WriteString("\n")
	}
	if !m.status.LastCheck.IsZero() {
		b.WriteString(dimStyle.Render("Last check: " + m.status.LastCheck.Format("15:04:05")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("s toggle monitoring • p pause • r resume • q quit"))
	b.WriteString("\n")

	return b.String()
}

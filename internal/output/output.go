package output

import (
	"fmt"
	"io"
	"time"
)

type Formatter struct {
	w io.Writer
}

func NewFormatter(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

func (f *Formatter) MonitoringStarted(names []string, interval time.Duration) {
	fmt.Fprintf(f.w, "▶️  Monitoring started (every %s), watching %d process(es). Ctrl+C to stop.\n", interval, len(names))
	for _, name := range names {
		fmt.Fprintf(f.w, "   • %s\n", name)
	}
}

func (f *Formatter) MonitoringStopped() {
	fmt.Fprintf(f.w, "⏹️  Monitoring stopped\n")
}

func (f *Formatter) MeetingLine(inMeeting bool) {
	if inMeeting {
		fmt.Fprintf(f.w, "🎤 In meeting\n")
	} else {
		fmt.Fprintf(f.w, "📵 Not in meeting\n")
	}
}

func (f *Formatter) AppLine(name string, running bool) {
	if running {
		fmt.Fprintf(f.w, "  ✅ %s: running\n", name)
	} else {
		fmt.Fprintf(f.w, "  ⚪ %s: not running\n", name)
	}
}

func (f *Formatter) MusicLine(playing bool, player, track string) {
	switch {
	case playing && track != "":
		fmt.Fprintf(f.w, "🎵 Music playing — %s: %s\n", player, track)
	case playing:
		fmt.Fprintf(f.w, "🎵 Music playing — %s\n", player)
	default:
		fmt.Fprintf(f.w, "⏸️  Music not playing\n")
	}
}

func (f *Formatter) ActionLine(action string) {
	fmt.Fprintf(f.w, "🕘 Last action: %s\n", action)
}

func (f *Formatter) WatchListHeader(count int) {
	fmt.Fprintf(f.w, "👀 Watched processes (%d):\n\n", count)
}

func (f *Formatter) WatchListItem(name string) {
	fmt.Fprintf(f.w, "  • %s\n", name)
}

func (f *Formatter) Error(msg string) {
	fmt.Fprintf(f.w, "❌ %s\n", msg)
}

func (f *Formatter) Info(msg string) {
	fmt.Fprintf(f.w, "ℹ️  %s\n", msg)
}

func (f *Formatter) Success(msg string) {
	fmt.Fprintf(f.w, "✅ %s\n", msg)
}

func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.w, "⚠️  %s\n", msg)
}

func (f *Formatter) SetupCheck(name string, ok bool, detail string) {
	if ok {
		fmt.Fprintf(f.w, "  ✅ %s: %s\n", name, detail)
	} else {
		fmt.Fprintf(f.w, "  ❌ %s: %s\n", name, detail)
	}
}

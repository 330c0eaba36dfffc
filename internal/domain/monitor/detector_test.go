package monitor

import (
	"bytes"
	"errors"
	"log"
	"testing"
)

func TestDetectUnionAcrossNames(t *testing.T) {
	tests := []struct {
		name    string
		running map[string]bool
		names   []string
		want    bool
	}{
		{
			name:    "none running",
			running: map[string]bool{},
			names:   []string{"zoom.us", "Microsoft Teams"},
			want:    false,
		},
		{
			name:    "one of two running",
			running: map[string]bool{"Microsoft Teams": true},
			names:   []string{"zoom.us", "Microsoft Teams"},
			want:    true,
		},
		{
			name:    "all running",
			running: map[string]bool{"zoom.us": true, "Microsoft Teams": true},
			names:   []string{"zoom.us", "Microsoft Teams"},
			want:    true,
		},
		{
			name:  "no watched names",
			names: nil,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := &fakeProbe{fn: func(name string) (bool, error) {
				return tt.running[name], nil
			}}
			detector := NewDetector(probe, log.New(bytes.NewBuffer(nil), "", 0))

			got := detector.Detect(tt.names)
			if got.InMeeting != tt.want {
				t.Errorf("in_meeting = %v, want %v", got.InMeeting, tt.want)
			}
			if len(got.ActiveApps) != len(tt.names) {
				t.Fatalf("active apps = %v, want one entry per name", got.ActiveApps)
			}
			for i, name := range tt.names {
				app := got.ActiveApps[i]
				if app.Name != name || app.IsRunning != tt.running[name] {
					t.Errorf("app %d = %+v, want {%s %v}", i, app, name, tt.running[name])
				}
			}
		})
	}
}

func TestDetectProbeErrorDegradesName(t *testing.T) {
	var logBuf bytes.Buffer
	probe := &fakeProbe{fn: func(name string) (bool, error) {
		if name == "zoom.us" {
			return false, errors.New("pgrep: boom")
		}
		return true, nil
	}}
	detector := NewDetector(probe, log.New(&logBuf, "", 0))

	got := detector.Detect([]string{"zoom.us", "Microsoft Teams"})

	// The failed name reads as not running, the healthy one still counts.
	if !got.InMeeting {
		t.Error("in_meeting = false, want true from the healthy name")
	}
	if got.ActiveApps[0].IsRunning {
		t.Error("failed probe reported as running")
	}
	if !got.ActiveApps[1].IsRunning {
		t.Error("healthy name not reported as running")
	}
	if logBuf.Len() == 0 {
		t.Error("probe failure was not logged")
	}
}

package monitor

import (
	"log"
	"time"
)

// Detector derives a MeetingStatus from a set of watched process names.
//
// Detection is exact-match only: names must match the process list entry
// exactly, as reported by the probe. A single running match means the user
// is in a meeting; there is no quorum or priority among watched names.
type Detector struct {
	probe  PresenceProbe
	logger *log.Logger
}

func NewDetector(probe PresenceProbe, logger *log.Logger) *Detector {
	if logger == nil {
		logger = log.Default()
	}
	return &Detector{probe: probe, logger: logger}
}

// Detect probes every name and reports the union: in a meeting if any
// watched process is alive. A probe failure for one name degrades that
// name to "not running" and the remaining names are still checked.
func (d *Detector) Detect(names []string) MeetingStatus {
	apps := make([]MeetingApp, 0, len(names))
	inMeeting := false

	for _, name := range names {
		running, err := d.probe.IsRunning(name)
		if err != nil {
			d.logger.Printf("probe %q failed, treating as not running: %v", name, err)
			running = false
		}
		apps = append(apps, MeetingApp{Name: name, IsRunning: running})
		if running {
			inMeeting = true
		}
	}

	return MeetingStatus{
		InMeeting:  inMeeting,
		ActiveApps: apps,
		Timestamp:  time.Now(),
	}
}

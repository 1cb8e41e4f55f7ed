// Package suppression decides whether a reminder would interrupt a call or a screen share.
package suppression

import "strings"

// Snapshot is a point-in-time read of the running applications.
type Snapshot struct {
	AppIdentifiers []string
	ProcessNames   []string
}

// Empty reports whether the snapshot carries no data.
func (snapshot Snapshot) Empty() bool {
	return len(snapshot.AppIdentifiers) == 0 && len(snapshot.ProcessNames) == 0
}

// Reason explains a suppression decision.
type Reason string

const (
	ReasonNone            Reason = ""
	ReasonScreenSharing   Reason = "screen_sharing_service"
	ReasonSharingProcess  Reason = "active_share_process"
	ReasonConferencingApp Reason = "conferencing_app"
)

// Result is the outcome of Check.
type Result struct {
	Suppress bool
	Reason   Reason
	Match    string
}

var (
	// Running at all means the screen is being shared or recorded.
	definiteIndicators = []string{
		"com.apple.screensharing.agent",
		"com.apple.ScreenSharing",
		"com.apple.screencaptureui",
	}

	// Installed or open, possibly in a call.
	conferencingApps = []string{
		"us.zoom.xos",
		"com.microsoft.teams",
		"com.microsoft.teams2",
		"com.cisco.webexmeetingsapp",
		"com.webex.meetingmanager",
		"com.hnc.Discord",
		"com.tinyspeck.slackmacgap",
		"com.skype.skype",
		"com.apple.FaceTime",
		"com.google.meet",
		"com.gotomeeting.GoToMeeting",
	}

	// Helper processes that only exist while a share is running.
	activeSharingProcesses = []string{
		"CptHost",
		"caphost",
		"ScreenSharingAgent",
	}

	executableIdentifiers = map[string]string{
		"zoom.us":              "us.zoom.xos",
		"zoom":                 "us.zoom.xos",
		"microsoft teams":      "com.microsoft.teams",
		"msteams":              "com.microsoft.teams2",
		"teams":                "com.microsoft.teams",
		"webex":                "com.cisco.webexmeetingsapp",
		"cisco webex meetings": "com.cisco.webexmeetingsapp",
		"discord":              "com.hnc.Discord",
		"slack":                "com.tinyspeck.slackmacgap",
		"skype":                "com.skype.skype",
		"facetime":             "com.apple.FaceTime",
		"gotomeeting":          "com.gotomeeting.GoToMeeting",
		"screensharingagent":   "com.apple.screensharing.agent",
		"screen sharing":       "com.apple.ScreenSharing",
		"screencaptureui":      "com.apple.screencaptureui",
	}
)

// Detector matches snapshots against fixed identifier sets.
type Detector struct {
	definite     map[string]string
	conferencing map[string]string
	sharing      map[string]string
}

// NewDetector returns a detector with the built-in identifier sets.
func NewDetector() *Detector {
	return &Detector{
		definite:     lowerSet(definiteIndicators),
		conferencing: lowerSet(conferencingApps),
		sharing:      lowerSet(activeSharingProcesses),
	}
}

// Check evaluates the snapshot. Screen-sharing indicators suppress regardless of
// suppressDuringCalls; conferencing apps only suppress when it is set.
func (detector *Detector) Check(snapshot Snapshot, suppressDuringCalls bool) Result {
	if match, ok := findAny(detector.definite, snapshot.AppIdentifiers); ok {
		return Result{Suppress: true, Reason: ReasonScreenSharing, Match: match}
	}
	for _, name := range snapshot.ProcessNames {
		if match, ok := lookupProcess(detector.sharing, name); ok {
			return Result{Suppress: true, Reason: ReasonSharingProcess, Match: match}
		}
	}
	if suppressDuringCalls {
		if match, ok := findAny(detector.conferencing, snapshot.AppIdentifiers); ok {
			return Result{Suppress: true, Reason: ReasonConferencingApp, Match: match}
		}
	}
	return Result{}
}

// ShouldSuppress reports whether a reminder should be skipped.
func (detector *Detector) ShouldSuppress(snapshot Snapshot, suppressDuringCalls bool) bool {
	return detector.Check(snapshot, suppressDuringCalls).Suppress
}

// IdentifierForExecutable maps a process executable name to a known app identifier.
func IdentifierForExecutable(executable string) (string, bool) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(executable)), ".exe")
	return lookupProcess(executableIdentifiers, name)
}

// commNameLength is the kernel's p_comm limit. Process tables read through it
// report longer executable names cut to this many bytes.
const commNameLength = 16

// lookupProcess matches a process name exactly, or as the p_comm-truncated form
// of a longer known name.
func lookupProcess(set map[string]string, name string) (string, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if value, ok := set[name]; ok {
		return value, true
	}
	if len(name) != commNameLength {
		return "", false
	}
	for key, value := range set {
		if len(key) > commNameLength && key[:commNameLength] == name {
			return value, true
		}
	}
	return "", false
}

func lowerSet(values []string) map[string]string {
	set := make(map[string]string, len(values))
	for _, value := range values {
		set[strings.ToLower(value)] = value
	}
	return set
}

func findAny(set map[string]string, values []string) (string, bool) {
	for _, value := range values {
		if canonical, ok := set[strings.ToLower(strings.TrimSpace(value))]; ok {
			return canonical, true
		}
	}
	return "", false
}

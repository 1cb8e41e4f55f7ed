package suppression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefiniteIndicatorIgnoresFlag(t *testing.T) {
	detector := NewDetector()
	snapshot := Snapshot{AppIdentifiers: []string{"com.apple.finder", "com.apple.screensharing.agent"}}

	for _, flag := range []bool{true, false} {
		result := detector.Check(snapshot, flag)
		assert.True(t, result.Suppress)
		assert.Equal(t, ReasonScreenSharing, result.Reason)
		assert.Equal(t, "com.apple.screensharing.agent", result.Match)
	}
}

func TestActiveSharingProcessIgnoresFlag(t *testing.T) {
	detector := NewDetector()
	snapshot := Snapshot{ProcessNames: []string{"launchd", "CptHost"}}

	for _, flag := range []bool{true, false} {
		result := detector.Check(snapshot, flag)
		assert.True(t, result.Suppress)
		assert.Equal(t, ReasonSharingProcess, result.Reason)
	}
}

func TestConferencingAppDependsOnFlag(t *testing.T) {
	detector := NewDetector()
	snapshot := Snapshot{AppIdentifiers: []string{"us.zoom.xos"}}

	assert.True(t, detector.ShouldSuppress(snapshot, true))
	assert.False(t, detector.ShouldSuppress(snapshot, false))

	result := detector.Check(snapshot, true)
	assert.Equal(t, ReasonConferencingApp, result.Reason)
	assert.Equal(t, "us.zoom.xos", result.Match)
}

func TestNoRelevantIdentifiers(t *testing.T) {
	detector := NewDetector()
	snapshots := []Snapshot{
		{},
		{AppIdentifiers: []string{"com.apple.Safari", "com.apple.Terminal"}, ProcessNames: []string{"bash", "Finder"}},
		// Conferencing identifiers only count as app identifiers, not process names.
		{ProcessNames: []string{"us.zoom.xos"}},
	}

	for _, snapshot := range snapshots {
		for _, flag := range []bool{true, false} {
			result := detector.Check(snapshot, flag)
			assert.False(t, result.Suppress)
			assert.Equal(t, ReasonNone, result.Reason)
		}
	}
}

func TestMatchingIsCaseInsensitive(t *testing.T) {
	detector := NewDetector()

	assert.True(t, detector.ShouldSuppress(Snapshot{AppIdentifiers: []string{"COM.HNC.DISCORD"}}, true))
	assert.True(t, detector.ShouldSuppress(Snapshot{ProcessNames: []string{" cpthost "}}, false))
}

func TestReferenceSetsAreDisjoint(t *testing.T) {
	for _, identifier := range definiteIndicators {
		assert.NotContains(t, conferencingApps, identifier)
	}
}

func TestIdentifierForExecutable(t *testing.T) {
	identifier, ok := IdentifierForExecutable("zoom.us")
	assert.True(t, ok)
	assert.Equal(t, "us.zoom.xos", identifier)

	identifier, ok = IdentifierForExecutable("Discord.exe")
	assert.True(t, ok)
	assert.Equal(t, "com.hnc.Discord", identifier)

	_, ok = IdentifierForExecutable("vim")
	assert.False(t, ok)
}

func TestSnapshotEmpty(t *testing.T) {
	assert.True(t, Snapshot{}.Empty())
	assert.False(t, Snapshot{ProcessNames: []string{"x"}}.Empty())
}

func TestTruncatedProcessNames(t *testing.T) {
	detector := NewDetector()

	assert.True(t, detector.ShouldSuppress(Snapshot{ProcessNames: []string{"ScreenSharingAge"}}, false))
	assert.False(t, detector.ShouldSuppress(Snapshot{ProcessNames: []string{"ScreenSharingAg"}}, false))

	identifier, ok := IdentifierForExecutable("ScreenSharingAge")
	assert.True(t, ok)
	assert.Equal(t, "com.apple.screensharing.agent", identifier)

	identifier, ok = IdentifierForExecutable("Cisco Webex Meet")
	assert.True(t, ok)
	assert.Equal(t, "com.cisco.webexmeetingsapp", identifier)

	_, ok = IdentifierForExecutable("screensharingxyz")
	assert.False(t, ok)
}

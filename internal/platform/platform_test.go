package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceLockIsExclusive(t *testing.T) {
	name := "crashbreak-test-" + t.Name()
	lock, err := AcquireInstanceLock(name)
	require.NoError(t, err)

	_, err = AcquireInstanceLock(name)
	assert.True(t, errors.Is(err, ErrAlreadyRunning))

	require.NoError(t, lock.Release())
	again, err := AcquireInstanceLock(name)
	require.NoError(t, err)
	assert.NoError(t, again.Release())
}

func TestReleaseNilLock(t *testing.T) {
	var lock *InstanceLock
	assert.NoError(t, lock.Release())
}

func TestLockAddressIsStable(t *testing.T) {
	assert.Equal(t, lockAddress("CrashBreak"), lockAddress("CrashBreak"))
}

func TestNewLoginItemValidates(t *testing.T) {
	_, err := newLoginItem(" ", "/usr/bin/crashbreak")
	assert.Error(t, err)

	_, err = newLoginItem("CrashBreak", "")
	assert.Error(t, err)

	item, err := newLoginItem("Crash Break", "/usr/bin/crashbreak")
	require.NoError(t, err)
	assert.Equal(t, "crash-break", item.slug())
}

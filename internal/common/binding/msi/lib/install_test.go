package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetInternalUIReachesEngine(t *testing.T) {
	fake := newFakeEngine()
	fake.install(t)

	SetInternalUI(UILevelNone)
	assert.Equal(t, UILevelNone, fake.uiLevel)
}

func TestEnableLogVerbose(t *testing.T) {
	fake := newFakeEngine()
	fake.install(t)

	require.NoError(t, EnableLog(`C:\temp\install.log`))
	assert.Equal(t, logModeVerbose, fake.logMode)
	assert.Equal(t, `C:\temp\install.log`, fake.logPath)
}

func TestEnableLogFailure(t *testing.T) {
	fake := newFakeEngine()
	fake.enableRet = 1622
	fake.install(t)

	err := EnableLog(`C:\temp\install.log`)
	var engineErr *Error
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, uint32(1622), engineErr.Code)
}

func TestEnableLogRejectsEmbeddedNul(t *testing.T) {
	fake := newFakeEngine()
	fake.install(t)

	err := EnableLog("C:\\temp\\bad\x00name.log")
	assert.ErrorIs(t, err, ErrStringHasNul)
	assert.Zero(t, fake.nativeCalls, "no native call may run for an unrepresentable string")
}

func TestInstallProductSuccess(t *testing.T) {
	fake := newFakeEngine()
	fake.install(t)

	require.NoError(t, InstallProduct(`C:\pkg\app.msi`, "A=1 B=2"))
	assert.Equal(t, []string{`C:\pkg\app.msi|A=1 B=2`}, fake.installed)
}

func TestInstallProductFailureCode(t *testing.T) {
	fake := newFakeEngine()
	fake.installRet = 1603
	fake.install(t)

	err := InstallProduct(`C:\pkg\app.msi`, "")
	var engineErr *Error
	require.ErrorAs(t, err, &engineErr)
	assert.Equal(t, uint32(1603), engineErr.Code)
	assert.Len(t, fake.installed, 1, "the install call is attempted exactly once")
}

func TestInstallProductRejectsEmbeddedNul(t *testing.T) {
	fake := newFakeEngine()
	fake.install(t)

	err := InstallProduct("C:\\pkg\\app.msi", "A=\x00")
	assert.ErrorIs(t, err, ErrStringHasNul)
	assert.Empty(t, fake.installed)
}

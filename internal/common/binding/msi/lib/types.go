package lib

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Public Go types and engine status codes

// Engine status codes (winerror values carried by the installer ABI)
const (
	ErrorSuccess            uint32 = 0
	ErrorCallNotImplemented uint32 = 120
	ErrorMoreData           uint32 = 234
)

// nullInteger marks a field holding no integer. The engine stores the exact
// minimum 32-bit signed pattern, so absence is an equality check, never a
// range check.
const nullInteger int32 = math.MinInt32

// Engine log mode for EnableLog (INSTALLLOGMODE_VERBOSE)
const logModeVerbose uint32 = 0x00001000

// UILevel controls how much of the engine's built-in UI is shown during
// install (INSTALLUILEVEL values).
type UILevel uint32

const (
	UILevelDefault UILevel = 1
	UILevelNone    UILevel = 2
	UILevelBasic   UILevel = 3
	UILevelReduced UILevel = 4
	UILevelFull    UILevel = 5
)

func (l UILevel) String() string {
	switch l {
	case UILevelDefault:
		return "default"
	case UILevelNone:
		return "none"
	case UILevelBasic:
		return "basic"
	case UILevelReduced:
		return "reduced"
	case UILevelFull:
		return "full"
	}
	return fmt.Sprintf("UILevel(%d)", uint32(l))
}

// ParseUILevel maps a CLI token to a UILevel.
func ParseUILevel(value string) (UILevel, error) {
	switch strings.ToLower(value) {
	case "", "default":
		return UILevelDefault, nil
	case "none":
		return UILevelNone, nil
	case "basic":
		return UILevelBasic, nil
	case "reduced":
		return UILevelReduced, nil
	case "full":
		return UILevelFull, nil
	}
	return 0, fmt.Errorf("unknown UI level %q (want default|none|basic|reduced|full)", value)
}

// InstallMessage identifies the category of one engine message. The category
// occupies the high byte of the raw callback message type; the low bytes
// carry dialog flags and are not part of the category.
type InstallMessage uint32

const (
	InstallMessageFatalExit    InstallMessage = 0x00000000
	InstallMessageError        InstallMessage = 0x01000000
	InstallMessageWarning      InstallMessage = 0x02000000
	InstallMessageUser         InstallMessage = 0x03000000
	InstallMessageInfo         InstallMessage = 0x04000000
	InstallMessageActionStart  InstallMessage = 0x08000000
	InstallMessageActionData   InstallMessage = 0x09000000
	InstallMessageCommonData   InstallMessage = 0x0B000000
	InstallMessageInitialize   InstallMessage = 0x0C000000
	InstallMessageTerminate    InstallMessage = 0x0D000000
	InstallMessageInstallStart InstallMessage = 0x1A000000
	InstallMessageInstallEnd   InstallMessage = 0x1B000000
)

const messageCategoryMask uint32 = 0xFF000000

// messageCategories lists every category exactly once; the registration mask
// is their union.
var messageCategories = []InstallMessage{
	InstallMessageFatalExit,
	InstallMessageError,
	InstallMessageWarning,
	InstallMessageUser,
	InstallMessageInfo,
	InstallMessageActionStart,
	InstallMessageActionData,
	InstallMessageCommonData,
	InstallMessageInitialize,
	InstallMessageTerminate,
	InstallMessageInstallStart,
	InstallMessageInstallEnd,
}

func (m InstallMessage) String() string {
	switch m {
	case InstallMessageFatalExit:
		return "FatalExit"
	case InstallMessageError:
		return "Error"
	case InstallMessageWarning:
		return "Warning"
	case InstallMessageUser:
		return "User"
	case InstallMessageInfo:
		return "Info"
	case InstallMessageActionStart:
		return "ActionStart"
	case InstallMessageActionData:
		return "ActionData"
	case InstallMessageCommonData:
		return "CommonData"
	case InstallMessageInitialize:
		return "Initialize"
	case InstallMessageTerminate:
		return "Terminate"
	case InstallMessageInstallStart:
		return "InstallStart"
	case InstallMessageInstallEnd:
		return "InstallEnd"
	}
	return fmt.Sprintf("InstallMessage(0x%08X)", uint32(m))
}

// Disposition is the answer a handler gives the engine for one message. The
// engine consumes it immediately to decide how its own dialog proceeds.
type Disposition int32

const (
	DispositionDefault Disposition = 0
	DispositionOK      Disposition = 1 // IDOK
	DispositionCancel  Disposition = 2 // IDCANCEL
)

// Error is a non-success status returned by a native engine call.
type Error struct {
	Code uint32
}

func (e *Error) Error() string {
	if text, ok := resultText[e.Code]; ok {
		return fmt.Sprintf("msi: %s (code %d)", text, e.Code)
	}
	return fmt.Sprintf("msi: engine call failed (code %d)", e.Code)
}

func errorFromCode(code uint32) *Error {
	return &Error{Code: code}
}

// resultText translates well-known installer result codes (must match
// winerror.h / msi.h documentation)
var resultText = map[uint32]string{
	87:   "invalid parameter",
	120:  "engine entry point is not available on this platform",
	1601: "the installer service could not be accessed",
	1602: "the user canceled the installation",
	1603: "fatal error during installation",
	1618: "another installation is already in progress",
	1619: "the installation package could not be opened",
	1620: "the installation package is invalid",
	1622: "the log file could not be opened",
	1625: "the installation is forbidden by system policy",
	1633: "the platform is not supported by this package",
	1638: "another version of this product is already installed",
	3010: "a restart is required to complete the installation",
}

var (
	// ErrTextDecode reports bytes from the retrieval protocol that are not
	// valid UTF-8 after truncation.
	ErrTextDecode = errors.New("msi: engine text is not valid UTF-8")

	// ErrStringHasNul reports a string that cannot cross the native boundary
	// because it contains an embedded NUL.
	ErrStringHasNul = errors.New("msi: string contains an embedded NUL")
)

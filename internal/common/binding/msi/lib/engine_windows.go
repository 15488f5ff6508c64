//go:build windows

package lib

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Windows engine calls go through the system msi.dll. ANSI entry points are
// used on purpose: the retrieval protocol hands back raw bytes that are
// validated as UTF-8 by the portable layer.
var (
	msiDLL = windows.NewLazySystemDLL("msi.dll")

	procMsiCloseHandle         = msiDLL.NewProc("MsiCloseHandle")
	procMsiRecordGetFieldCount = msiDLL.NewProc("MsiRecordGetFieldCount")
	procMsiRecordGetString     = msiDLL.NewProc("MsiRecordGetStringA")
	procMsiRecordGetInteger    = msiDLL.NewProc("MsiRecordGetInteger")
	procMsiRecordIsNull        = msiDLL.NewProc("MsiRecordIsNull")
	procMsiFormatRecord        = msiDLL.NewProc("MsiFormatRecordA")
	procMsiSetInternalUI       = msiDLL.NewProc("MsiSetInternalUI")
	procMsiEnableLog           = msiDLL.NewProc("MsiEnableLogA")
	procMsiSetExternalUIRecord = msiDLL.NewProc("MsiSetExternalUIRecord")
	procMsiInstallProduct      = msiDLL.NewProc("MsiInstallProductA")
)

// uiRecordCallback is created once per process; the engine re-enters it on
// the blocking install call stack.
var uiRecordCallback = syscall.NewCallback(func(context, messageType, record uintptr) uintptr {
	return uintptr(dispatchUIRecord(context, uint32(messageType), Handle(record)))
})

func init() {
	eng = Engine{
		CloseHandle:         windowsCloseHandle,
		RecordGetFieldCount: windowsRecordGetFieldCount,
		RecordGetString:     windowsRecordGetString,
		RecordGetInteger:    windowsRecordGetInteger,
		RecordIsNull:        windowsRecordIsNull,
		FormatRecord:        windowsFormatRecord,
		SetInternalUI:       windowsSetInternalUI,
		EnableLog:           windowsEnableLog,
		SetExternalUIRecord: windowsSetExternalUIRecord,
		InstallProduct:      windowsInstallProduct,
	}
}

// bufPtr returns a writable pointer for the engine. The ANSI entry points
// reject a NULL value pointer even for the zero-capacity probe call.
func bufPtr(buf []byte) *byte {
	if len(buf) == 0 {
		return new(byte)
	}
	return &buf[0]
}

func windowsCloseHandle(h Handle) uint32 {
	ret, _, _ := procMsiCloseHandle.Call(uintptr(h))
	return uint32(ret)
}

func windowsRecordGetFieldCount(h Handle) uint32 {
	ret, _, _ := procMsiRecordGetFieldCount.Call(uintptr(h))
	return uint32(ret)
}

func windowsRecordGetString(h Handle, field uint32, buf []byte, n *uint32) uint32 {
	ret, _, _ := procMsiRecordGetString.Call(
		uintptr(h),
		uintptr(field),
		uintptr(unsafe.Pointer(bufPtr(buf))),
		uintptr(unsafe.Pointer(n)),
	)
	return uint32(ret)
}

func windowsRecordGetInteger(h Handle, field uint32) int32 {
	ret, _, _ := procMsiRecordGetInteger.Call(uintptr(h), uintptr(field))
	return int32(uint32(ret))
}

func windowsRecordIsNull(h Handle, field uint32) bool {
	ret, _, _ := procMsiRecordIsNull.Call(uintptr(h), uintptr(field))
	return ret != 0
}

func windowsFormatRecord(install, record Handle, buf []byte, n *uint32) uint32 {
	ret, _, _ := procMsiFormatRecord.Call(
		uintptr(install),
		uintptr(record),
		uintptr(unsafe.Pointer(bufPtr(buf))),
		uintptr(unsafe.Pointer(n)),
	)
	return uint32(ret)
}

func windowsSetInternalUI(level UILevel) UILevel {
	// no window handle: the engine owns its own top-level UI
	ret, _, _ := procMsiSetInternalUI.Call(uintptr(level), 0)
	return UILevel(ret)
}

func windowsEnableLog(mode uint32, path string, attributes uint32) uint32 {
	p, err := windows.BytePtrFromString(path)
	if err != nil {
		return uint32(windows.ERROR_INVALID_PARAMETER)
	}
	ret, _, _ := procMsiEnableLog.Call(uintptr(mode), uintptr(unsafe.Pointer(p)), uintptr(attributes))
	return uint32(ret)
}

func windowsSetExternalUIRecord(context uintptr, filter uint32) uint32 {
	// the previous handler comes back through the out parameter and is
	// dropped; nothing re-registers it in a single-shot process
	var previous uintptr
	ret, _, _ := procMsiSetExternalUIRecord.Call(
		uiRecordCallback,
		uintptr(filter),
		context,
		uintptr(unsafe.Pointer(&previous)),
	)
	return uint32(ret)
}

func windowsInstallProduct(path, commandLine string) uint32 {
	p, err := windows.BytePtrFromString(path)
	if err != nil {
		return uint32(windows.ERROR_INVALID_PARAMETER)
	}
	c, err := windows.BytePtrFromString(commandLine)
	if err != nil {
		return uint32(windows.ERROR_INVALID_PARAMETER)
	}
	ret, _, _ := procMsiInstallProduct.Call(
		uintptr(unsafe.Pointer(p)),
		uintptr(unsafe.Pointer(c)),
	)
	return uint32(ret)
}

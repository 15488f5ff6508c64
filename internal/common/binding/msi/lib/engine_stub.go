//go:build !windows

package lib

// Off Windows there is no installer engine. Every entry point reports
// ERROR_CALL_NOT_IMPLEMENTED so the failure surfaces as a typed engine
// error instead of a crash.

func init() {
	eng = Engine{
		CloseHandle:         func(Handle) uint32 { return ErrorCallNotImplemented },
		RecordGetFieldCount: func(Handle) uint32 { return 0 },
		RecordGetString: func(Handle, uint32, []byte, *uint32) uint32 {
			return ErrorCallNotImplemented
		},
		RecordGetInteger: func(Handle, uint32) int32 { return nullInteger },
		RecordIsNull:     func(Handle, uint32) bool { return true },
		FormatRecord: func(Handle, Handle, []byte, *uint32) uint32 {
			return ErrorCallNotImplemented
		},
		SetInternalUI: func(UILevel) UILevel { return UILevelDefault },
		EnableLog: func(uint32, string, uint32) uint32 {
			return ErrorCallNotImplemented
		},
		SetExternalUIRecord: func(uintptr, uint32) uint32 {
			return ErrorCallNotImplemented
		},
		InstallProduct: func(string, string) uint32 {
			return ErrorCallNotImplemented
		},
	}
}

package lib

// Engine is the raw native call surface of the installer. Exactly one
// implementation is wired per platform at init (engine_windows.go,
// engine_stub.go); tests substitute fakes through SwapEngine.
//
// String retrieval entry points use the in/out length convention of the
// legacy ABI: *n carries the buffer capacity in, the written or required
// length (excluding the terminator) out.
type Engine struct {
	CloseHandle         func(h Handle) uint32
	RecordGetFieldCount func(h Handle) uint32
	RecordGetString     func(h Handle, field uint32, buf []byte, n *uint32) uint32
	RecordGetInteger    func(h Handle, field uint32) int32
	RecordIsNull        func(h Handle, field uint32) bool
	FormatRecord        func(install, record Handle, buf []byte, n *uint32) uint32
	SetInternalUI       func(level UILevel) UILevel
	EnableLog           func(mode uint32, path string, attributes uint32) uint32
	SetExternalUIRecord func(context uintptr, filter uint32) uint32
	InstallProduct      func(path, commandLine string) uint32
}

var eng Engine

// SwapEngine replaces the native call surface and returns the previous one.
// The install flow is single-threaded; the swap needs no synchronization.
func SwapEngine(e Engine) Engine {
	previous := eng
	eng = e
	return previous
}

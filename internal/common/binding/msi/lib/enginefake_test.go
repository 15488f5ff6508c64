package lib

import (
	"testing"
)

// fakeField is one record field as a fake engine would serve it.
type fakeField struct {
	bytes     []byte // raw text bytes handed back by the retrieval protocol
	reportLen uint32 // first-pass length report; 0 means len(bytes)
	integer   int32
	null      bool
}

// fakeEngine emulates the two-pass retrieval contract and counts handle
// traffic so lifetime properties can be asserted.
type fakeEngine struct {
	records map[Handle]map[uint32]fakeField
	format  map[Handle][]byte

	closed      map[Handle]int
	nativeCalls int

	formatRet   uint32 // non-zero forces the first format pass to fail
	getRet      uint32 // non-zero forces the first string pass to fail
	registerRet uint32
	enableRet   uint32
	installRet  uint32

	context    uintptr
	filter     uint32
	logMode    uint32
	logPath    string
	uiLevel    UILevel
	installed  []string
	registered int
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		records: make(map[Handle]map[uint32]fakeField),
		format:  make(map[Handle][]byte),
		closed:  make(map[Handle]int),
	}
}

func (f *fakeEngine) setField(h Handle, field uint32, ff fakeField) {
	if f.records[h] == nil {
		f.records[h] = make(map[uint32]fakeField)
	}
	f.records[h][field] = ff
}

// serveText implements the legacy in/out length convention over raw bytes.
func serveText(text []byte, reportLen uint32, buf []byte, n *uint32) uint32 {
	need := uint32(len(text))
	if *n < need+1 {
		if reportLen == 0 {
			reportLen = need
		}
		*n = reportLen
		return ErrorMoreData
	}
	copy(buf, text)
	*n = need
	return ErrorSuccess
}

func (f *fakeEngine) install(t *testing.T) {
	t.Helper()
	previous := SwapEngine(Engine{
		CloseHandle: func(h Handle) uint32 {
			f.nativeCalls++
			f.closed[h]++
			return ErrorSuccess
		},
		RecordGetFieldCount: func(h Handle) uint32 {
			f.nativeCalls++
			var max uint32
			for field := range f.records[h] {
				if field > max {
					max = field
				}
			}
			return max
		},
		RecordGetString: func(h Handle, field uint32, buf []byte, n *uint32) uint32 {
			f.nativeCalls++
			if f.getRet != 0 {
				return f.getRet
			}
			// absent fields come back as empty text, as the engine does
			ff := f.records[h][field]
			return serveText(ff.bytes, ff.reportLen, buf, n)
		},
		RecordGetInteger: func(h Handle, field uint32) int32 {
			f.nativeCalls++
			ff, ok := f.records[h][field]
			if !ok {
				return nullInteger
			}
			return ff.integer
		},
		RecordIsNull: func(h Handle, field uint32) bool {
			f.nativeCalls++
			ff, ok := f.records[h][field]
			return !ok || ff.null
		},
		FormatRecord: func(install, record Handle, buf []byte, n *uint32) uint32 {
			f.nativeCalls++
			if f.formatRet != 0 {
				return f.formatRet
			}
			return serveText(f.format[record], 0, buf, n)
		},
		SetInternalUI: func(level UILevel) UILevel {
			f.nativeCalls++
			previous := f.uiLevel
			f.uiLevel = level
			if previous == 0 {
				previous = UILevelDefault
			}
			return previous
		},
		EnableLog: func(mode uint32, path string, attributes uint32) uint32 {
			f.nativeCalls++
			if f.enableRet != 0 {
				return f.enableRet
			}
			f.logMode = mode
			f.logPath = path
			return ErrorSuccess
		},
		SetExternalUIRecord: func(context uintptr, filter uint32) uint32 {
			f.nativeCalls++
			if f.registerRet != 0 {
				return f.registerRet
			}
			f.registered++
			f.context = context
			f.filter = filter
			return ErrorSuccess
		},
		InstallProduct: func(path, commandLine string) uint32 {
			f.nativeCalls++
			f.installed = append(f.installed, path+"|"+commandLine)
			return f.installRet
		},
	})
	t.Cleanup(func() { SwapEngine(previous) })
}

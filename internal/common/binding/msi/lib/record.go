package lib

import (
	"unicode/utf8"
)

// Record is an engine-owned collection of typed fields describing one
// message or data row. Field indices are 1-based; index 0 is reserved for
// the record's template string.
type Record struct {
	handle *OwnedHandle
}

// NewRecord wraps an engine-issued record handle, taking ownership of it.
func NewRecord(h Handle) *Record {
	return &Record{handle: ownHandle(h)}
}

// Close releases the underlying record handle.
func (r *Record) Close() {
	r.handle.Close()
}

// FieldCount returns the engine-reported number of fields.
func (r *Record) FieldCount() uint32 {
	return eng.RecordGetFieldCount(r.handle.Handle())
}

// getText runs the engine's two-pass length-query/retrieve protocol against
// one entry point. The first pass must report ERROR_MORE_DATA with the
// required length; the second pass may report a SHORTER final length than
// the first (locale/truncation effects), and the shorter one wins. Both
// passes form one logical unit; nothing may interleave on the same handle.
func getText(call func(buf []byte, n *uint32) uint32) (string, error) {
	var n uint32
	if ret := call(nil, &n); ret != ErrorMoreData {
		return "", errorFromCode(ret)
	}

	n++
	buf := make([]byte, n)
	if ret := call(buf, &n); ret != ErrorSuccess {
		return "", errorFromCode(ret)
	}

	buf = buf[:n]
	if !utf8.Valid(buf) {
		return "", ErrTextDecode
	}
	return string(buf), nil
}

// StringData returns the text of a field. Index 0 yields the template
// string.
func (r *Record) StringData(field uint32) (string, error) {
	return getText(func(buf []byte, n *uint32) uint32 {
		return eng.RecordGetString(r.handle.Handle(), field, buf, n)
	})
}

// IntegerData returns the signed 32-bit value of a field. The second result
// is false when the raw value equals the engine's null-integer sentinel;
// every other value, including zero and negatives, is returned as-is.
func (r *Record) IntegerData(field uint32) (int32, bool) {
	value := eng.RecordGetInteger(r.handle.Handle(), field)
	if value == nullInteger {
		return 0, false
	}
	return value, true
}

// IsNull reports whether a field is null. This is independent of
// IntegerData: a null field may still carry a stale sentinel-equal integer.
func (r *Record) IsNull(field uint32) bool {
	return eng.RecordIsNull(r.handle.Handle(), field)
}

// String substitutes the record's fields into its template through the
// engine's own formatting, using the null install-context handle. Display
// must not fail, so any error collapses to a fixed placeholder.
func (r *Record) String() string {
	text, err := getText(func(buf []byte, n *uint32) uint32 {
		return eng.FormatRecord(Handle(0), r.handle.Handle(), buf, n)
	})
	if err != nil {
		return "(record)"
	}
	return text
}

package lib

import (
	cgoruntime "runtime/cgo"
)

// RecordHandler consumes one engine message and directs how the engine
// proceeds with any interactive dialog for it. The record is valid only for
// the duration of the call.
type RecordHandler func(message InstallMessage, record *Record) Disposition

// messageFilter returns the registration mask covering every message
// category, so no engine message is silently dropped. Fixed for the life of
// one install operation.
func messageFilter() uint32 {
	var mask uint32
	for _, m := range messageCategories {
		mask |= uint32(m)
	}
	return mask
}

// ExternalUI keeps the handler context alive for the duration of one
// registration.
type ExternalUI struct {
	context cgoruntime.Handle
	done    bool
}

// SetExternalHandler registers handler with the engine for all message
// categories. One context is created here for the whole operation and reused
// by every re-entrant callback during the blocking install call; it must
// stay alive and unmoved until Close.
func SetExternalHandler(handler RecordHandler) (*ExternalUI, error) {
	context := cgoruntime.NewHandle(handler)
	if ret := eng.SetExternalUIRecord(uintptr(context), messageFilter()); ret != ErrorSuccess {
		context.Delete()
		return nil, errorFromCode(ret)
	}
	return &ExternalUI{context: context}, nil
}

// Close releases the handler context exactly once. The engine keeps whatever
// handler is currently registered; the previous one is not restored.
func (u *ExternalUI) Close() {
	if !u.done {
		u.context.Delete()
		u.done = true
	}
}

// dispatchUIRecord is the native-callable bridge. The engine re-enters here
// synchronously on the install call stack, once per message, handing over a
// callback-scoped record handle. The handler reference is reconstructed from
// the long-lived context without taking ownership; the record is wrapped as
// owning and released when the call returns, never retained.
func dispatchUIRecord(context uintptr, messageType uint32, record Handle) int32 {
	defer func() { _ = recover() }()

	handler, ok := cgoruntime.Handle(context).Value().(RecordHandler)
	if !ok || handler == nil {
		return int32(DispositionDefault)
	}

	rec := NewRecord(record)
	defer rec.Close()

	return int32(handler(InstallMessage(messageType&messageCategoryMask), rec))
}

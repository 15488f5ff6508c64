// Msitrace — Windows Installer package installation tracer
// Copyright (C) 2026 Дмитрий Удалов dmitry@udalov.online
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package lib

import (
	"fmt"
	"runtime"
)

// Handle is an opaque engine-issued identifier. It has no meaning outside
// engine calls and compares only by raw value. The zero value doubles as the
// null install-context handle.
type Handle uint32

func (h Handle) String() string {
	return fmt.Sprintf("MSIHANDLE (%d)", uint32(h))
}

// OwnedHandle releases the underlying engine resource exactly once. The
// non-owning Handle value can be borrowed freely; only the owner closes.
type OwnedHandle struct {
	value Handle
}

func ownHandle(h Handle) *OwnedHandle {
	oh := &OwnedHandle{value: h}
	runtime.SetFinalizer(oh, (*OwnedHandle).Close)
	return oh
}

// Handle borrows the underlying value without transferring ownership.
func (oh *OwnedHandle) Handle() Handle {
	return oh.value
}

// Close releases the handle. Safe to call more than once; release failures
// from the engine are not surfaced.
func (oh *OwnedHandle) Close() {
	if oh.value != 0 {
		eng.CloseHandle(oh.value)
		oh.value = 0
		runtime.SetFinalizer(oh, nil)
	}
}

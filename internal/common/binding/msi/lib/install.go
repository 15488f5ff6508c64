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
	"strings"
)

// SetInternalUI sets the engine's built-in UI level for the process and
// returns the previous level. Must run before any other engine call of the
// install flow.
func SetInternalUI(level UILevel) UILevel {
	return eng.SetInternalUI(level)
}

// EnableLog enables verbose engine logging to the file at path.
func EnableLog(path string) error {
	if err := checkNoNul(path); err != nil {
		return err
	}
	if ret := eng.EnableLog(logModeVerbose, path, 0); ret != ErrorSuccess {
		return errorFromCode(ret)
	}
	return nil
}

// InstallProduct performs one blocking install of the package at path with
// the given legacy command line. Progress re-enters the handler registered
// with SetExternalHandler on this same call stack. Attempted exactly once;
// never retried.
func InstallProduct(path, commandLine string) error {
	if err := checkNoNul(path); err != nil {
		return err
	}
	if err := checkNoNul(commandLine); err != nil {
		return err
	}
	if ret := eng.InstallProduct(path, commandLine); ret != ErrorSuccess {
		return errorFromCode(ret)
	}
	return nil
}

func checkNoNul(s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return ErrStringHasNul
	}
	return nil
}

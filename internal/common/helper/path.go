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

package helper

import (
	"os"
	"path/filepath"
	"strings"
)

// extendedLengthPrefix — префикс путей расширенной длины Windows.
const extendedLengthPrefix = `\\?\`

// CanonicalizePackagePath проверяет, что пакет существует, и приводит путь к
// каноническому абсолютному виду без префикса расширенной длины.
func CanonicalizePackagePath(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	return StripExtendedPrefix(abs), nil
}

// StripExtendedPrefix убирает префикс \\?\ перед показом пути и передачей
// его движку.
func StripExtendedPrefix(path string) string {
	return strings.TrimPrefix(path, extendedLengthPrefix)
}

// ResolveLogPath разворачивает путь файла журнала относительно текущего
// каталога; пустой путь остаётся пустым.
func ResolveLogPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, path), nil
}

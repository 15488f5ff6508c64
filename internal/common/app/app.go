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

package app

// Глобальный логгер приложения
var Log LoggerImpl

// Инициализируем заглушку автоматически при импорте модуля для тестов
func init() {
	if Log == nil {
		Log = &testLogger{}
	}
}

// LoggerImpl интерфейс для логирования
type LoggerImpl interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Warning(args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
}

// testLogger простая реализация LoggerImpl для тестов
type testLogger struct{}

func (l *testLogger) Debug(...interface{})          {}
func (l *testLogger) Debugf(string, ...interface{}) {}
func (l *testLogger) Info(...interface{})           {}
func (l *testLogger) Warn(...interface{})           {}
func (l *testLogger) Warning(...interface{})        {}
func (l *testLogger) Error(...interface{})          {}
func (l *testLogger) Errorf(string, ...interface{}) {}
func (l *testLogger) Fatal(...interface{})          {}

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
	"errors"
	"strings"
)

// ValidateProperty проверяет токен свойства установки PROPERTY=VALUE.
// Токен должен быть непустым и содержать ровно один знак равенства:
// "A=" и "A=1" корректны, "A", "A=1=2" и "" — нет.
func ValidateProperty(value string) error {
	if value == "" {
		return errors.New("property cannot be empty")
	}
	if strings.Count(value, "=") != 1 {
		return errors.New("requires PROP= or PROP=VALUE")
	}
	return nil
}

// JoinProperties собирает legacy-командную строку движка: свойства через
// один пробел, порядок аргументов сохраняется.
func JoinProperties(properties []string) string {
	return strings.Join(properties, " ")
}

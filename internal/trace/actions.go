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

package trace

import (
	"context"
	"errors"
	"fmt"
	"msitrace/internal/common/binding/msi"
	"msitrace/internal/common/binding/msi/lib"
	"msitrace/internal/common/helper"

	"github.com/urfave/cli/v3"
)

// runInstall разбирает аргументы, проверяет их и запускает установку.
func runInstall(ctx context.Context, cmd *cli.Command) error {
	request, err := buildRequest(cmd)
	if err != nil {
		return err
	}
	return msi.NewActions().InstallPackage(*request)
}

// buildRequest превращает аргументы команды в запрос установки:
// первый позиционный аргумент — путь пакета, остальные — свойства.
func buildRequest(cmd *cli.Command) (*msi.InstallRequest, error) {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return nil, errors.New("PACKAGE argument is required")
	}

	packagePath, err := helper.CanonicalizePackagePath(args[0])
	if err != nil {
		return nil, err
	}

	properties := args[1:]
	for _, property := range properties {
		if err = helper.ValidateProperty(property); err != nil {
			return nil, fmt.Errorf("property %q: %w", property, err)
		}
	}

	level, err := lib.ParseUILevel(cmd.String("ui"))
	if err != nil {
		return nil, err
	}

	logPath, err := helper.ResolveLogPath(cmd.String("log"))
	if err != nil {
		return nil, err
	}

	return &msi.InstallRequest{
		PackagePath: packagePath,
		LogPath:     logPath,
		UI:          level,
		Properties:  properties,
	}, nil
}

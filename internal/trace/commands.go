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
	"msitrace/internal/common/app"

	"github.com/urfave/cli/v3"
)

// Command возвращает корневую команду msitrace.
func Command(cfg *app.Configuration) *cli.Command {
	return &cli.Command{
		Name:      "msitrace",
		Usage:     "Install a Windows Installer package and trace every engine message",
		ArgsUsage: "PACKAGE [PROPERTY=VALUE...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "engine log file path, resolved against the current directory",
			},
			&cli.StringFlag{
				Name:  "ui",
				Usage: "engine UI level: default, none, basic, reduced or full",
				Value: cfg.DefaultUILevel,
			},
		},
		Action: runInstall,
	}
}

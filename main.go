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

package main

import (
	"context"
	"fmt"
	"msitrace/internal/common/app"
	"msitrace/internal/trace"
	"os"
)

func main() {
	appConfig, err := app.LoadConfig()
	cliError(err)

	app.InitLogger(appConfig)
	app.Log.Debug("starting msitrace…")

	rootCommand := trace.Command(appConfig)

	if err = rootCommand.Run(context.Background(), os.Args); err != nil {
		cliError(err)
	}
}

// cliError печатает ошибку в stderr и завершает процесс с ненулевым кодом
func cliError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "msitrace:", err)
	os.Exit(1)
}

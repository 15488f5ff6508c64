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

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger настраивает глобальный логгер. Stdout принадлежит строкам
// трассировки сообщений движка, поэтому диагностика уходит в файл, в stderr
// (режим разработки) или отбрасывается.
func InitLogger(cfg *Configuration) {
	log := logrus.New()

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		ForceColors:   false,
		DisableQuote:  true,
	})

	switch {
	case cfg.PathLogFile != "":
		file, err := os.OpenFile(cfg.PathLogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			log.SetOutput(os.Stderr)
		} else {
			log.SetOutput(file)
		}
	case cfg.DevMode:
		log.SetOutput(os.Stderr)
	default:
		log.SetOutput(io.Discard)
	}

	if cfg.DevMode {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	Log = log
}

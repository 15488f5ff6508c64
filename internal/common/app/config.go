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
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// configFileName — имя файла конфигурации в текущем каталоге
const configFileName = "config.yml"

// Configuration основная конфигурация приложения
type Configuration struct {
	Environment    string `yaml:"environment" env:"MSITRACE_ENV" env-default:"prod"`
	PathLogFile    string `yaml:"pathLogFile" env:"MSITRACE_LOG_FILE"`
	DefaultUILevel string `yaml:"defaultUILevel" env:"MSITRACE_UI" env-default:"default"`

	// Runtime flags
	DevMode bool `yaml:"-"`
}

// LoadConfig загружает конфигурацию из config.yml (если он есть) и
// переменных окружения.
func LoadConfig() (*Configuration, error) {
	cfg := &Configuration{}

	if _, err := os.Stat(configFileName); err == nil {
		if err = cleanenv.ReadConfig(configFileName, cfg); err != nil {
			return nil, err
		}
	} else if err = cleanenv.ReadEnv(cfg); err != nil {
		return nil, err
	}

	cfg.DevMode = cfg.Environment != "prod"
	return cfg, nil
}

// SaveExample записывает файл конфигурации с текущими значениями,
// чтобы было что править руками.
func (c *Configuration) SaveExample(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

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
	"os"
	"path/filepath"
	"testing"

	"msitrace/internal/common/app"
	"msitrace/internal/common/binding/msi"
	"msitrace/internal/common/binding/msi/lib"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// parseArgs прогоняет аргументы через корневую команду и возвращает
// собранный запрос установки.
func parseArgs(t *testing.T, args ...string) (*msi.InstallRequest, error) {
	t.Helper()

	var request *msi.InstallRequest
	var buildErr error

	cmd := Command(&app.Configuration{DefaultUILevel: "default"})
	cmd.Action = func(ctx context.Context, c *cli.Command) error {
		request, buildErr = buildRequest(c)
		return nil
	}

	require.NoError(t, cmd.Run(context.Background(), append([]string{"msitrace"}, args...)))
	return request, buildErr
}

func stubPackage(t *testing.T) string {
	t.Helper()
	pkg := filepath.Join(t.TempDir(), "app.msi")
	require.NoError(t, os.WriteFile(pkg, []byte("stub"), 0o644))
	return pkg
}

func TestBuildRequestRequiresPackage(t *testing.T) {
	_, err := parseArgs(t)
	assert.ErrorContains(t, err, "PACKAGE")
}

func TestBuildRequestValidatesProperties(t *testing.T) {
	pkg := stubPackage(t)

	tests := []struct {
		name     string
		property string
		wantErr  bool
	}{
		{"Name only", "A", true},
		{"Two equals", "A=1=2", true},
		{"Empty value ok", "A=", false},
		{"Name and value ok", "A=1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request, err := parseArgs(t, pkg, tt.property)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{tt.property}, request.Properties)
		})
	}
}

func TestBuildRequestPreservesPropertyOrder(t *testing.T) {
	request, err := parseArgs(t, stubPackage(t), "Z=9", "A=1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Z=9", "A=1"}, request.Properties)
}

func TestBuildRequestParsesUILevel(t *testing.T) {
	request, err := parseArgs(t, "--ui", "none", stubPackage(t))
	require.NoError(t, err)
	assert.Equal(t, lib.UILevelNone, request.UI)

	_, err = parseArgs(t, "--ui", "loud", stubPackage(t))
	assert.Error(t, err)
}

func TestBuildRequestResolvesLogAgainstCwd(t *testing.T) {
	request, err := parseArgs(t, "--log", "install.log", stubPackage(t))
	require.NoError(t, err)

	wd, _ := os.Getwd()
	assert.Equal(t, filepath.Join(wd, "install.log"), request.LogPath)
}

func TestBuildRequestMissingPackage(t *testing.T) {
	_, err := parseArgs(t, filepath.Join(t.TempDir(), "missing.msi"))
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "main.toml"), []byte(content), 0o600)
	require.NoError(t, err)

	return dir + "/"
}

func TestReadConfig(t *testing.T) {
	testCases := []struct {
		name          string
		toml          string
		envJSON       string
		expectedError error
		check         func(t *testing.T, c Config)
	}{
		{
			name: "minimal valid config with defaults",
			toml: `
Title = "BrightPage"
[Webserver]
Port = 8080
URL = "http://localhost:8080"
`,
			check: func(t *testing.T, c Config) {
				assert.Equal(t, EngineSQLite, c.DB.Engine)
				assert.Equal(t, 5, c.Webserver.ShutDownTime)
				assert.Equal(t, DefaultSessionExpiry, c.Webserver.Session.ExpiryTime)
				assert.Equal(t, "./uploads", c.Uploads.Dir)
				assert.Equal(t, int64(DefaultUploadMaxSize), c.Uploads.MaxSize)
				assert.Equal(t, "/uploads", c.Uploads.PublicPath)
			},
		},
		{
			name: "missing port",
			toml: `
[Webserver]
URL = "http://localhost"
`,
			expectedError: ErrWebServerPortCanNotBeZero,
		},
		{
			name: "missing url",
			toml: `
[Webserver]
Port = 8080
`,
			expectedError: ErrEmptyURL,
		},
		{
			name: "unknown db engine",
			toml: `
[Webserver]
Port = 8080
URL = "http://localhost"
[DB]
Engine = "oracle"
`,
			expectedError: ErrUnknownDBEngine,
		},
		{
			name: "env json override wins",
			toml: `
Title = "from-toml"
[Webserver]
Port = 8080
URL = "http://localhost"
`,
			envJSON: `{"Title":"from-env"}`,
			check: func(t *testing.T, c Config) {
				assert.Equal(t, "from-env", c.Title)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTestConfig(t, tc.toml)

			if tc.envJSON != "" {
				t.Setenv(EnvConfigJSON, tc.envJSON)
			}

			c, err := ReadConfig(path)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}

			require.NoError(t, err)

			if tc.check != nil {
				tc.check(t, c)
			}
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadReplacements(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		expected Replacements
		wantErr  string
	}{
		{
			name: "yaml",
			file: "replacements.yml",
			content: `application: svc
environment: prod
placeholders:
  - db_pass
  - API_KEY
`,
			expected: Replacements{Application: "svc", Environment: "prod", Placeholders: []string{"db_pass", "API_KEY"}},
		},
		{
			name: "toml",
			file: "replacements.toml",
			content: `application = "svc"
environment = "staging"
placeholders = ["db_host"]
`,
			expected: Replacements{Application: "svc", Environment: "staging", Placeholders: []string{"db_host"}},
		},
		{
			name:     "no placeholders",
			file:     "replacements.yaml",
			content:  "application: svc\nenvironment: dev\n",
			expected: Replacements{Application: "svc", Environment: "dev"},
		},
		{
			name:    "missing application",
			file:    "replacements.yml",
			content: "environment: prod\nplaceholders: [a]\n",
			wantErr: "invalid replacements",
		},
		{
			name:    "separator in environment",
			file:    "replacements.yml",
			content: "application: svc\nenvironment: prod/eu\n",
			wantErr: "invalid replacements",
		},
		{
			name:    "empty placeholder",
			file:    "replacements.yml",
			content: "application: svc\nenvironment: prod\nplaceholders: ['']\n",
			wantErr: "invalid replacements",
		},
		{
			name:    "malformed yaml",
			file:    "replacements.yml",
			content: "application: [svc\n",
			wantErr: "decoding replacements",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)

			got, err := LoadReplacements(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLoadReplacementsMissingFile(t *testing.T) {
	_, err := LoadReplacements(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)), "expected not-exist cause, got %v", err)
}

func TestGetEnvironmentVariablesDefaults(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	os.Unsetenv("AWS_REGION")

	settings, err := GetEnvironmentVariables[Settings]()
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", settings.Region)
	assert.Equal(t, "replacements.yml", settings.ReplacementsPath)
	assert.Equal(t, "variables.yml", settings.VariablesPath)
	assert.Equal(t, "replacement_params.yml", settings.SnapshotPath)
	assert.Equal(t, "config/*.default.php", settings.TemplateGlob)
	assert.Equal(t, "config", settings.OutputDir)
	assert.Equal(t, ".default", settings.Marker)
	assert.Equal(t, 30*time.Second, settings.RetryTimeout)
	assert.Equal(t, 5, settings.PublishConcurrency)
}

func TestGetEnvironmentVariablesOverrides(t *testing.T) {
	t.Setenv("AWS_REGION", "us-east-2")
	t.Setenv("CONFSYNC_OUTPUT_DIR", "out")
	t.Setenv("CONFSYNC_RETRY_TIMEOUT", "0s")

	settings, err := GetEnvironmentVariables[Settings]()
	require.NoError(t, err)

	assert.Equal(t, "us-east-2", settings.Region)
	assert.Equal(t, "out", settings.OutputDir)
	assert.Zero(t, settings.RetryTimeout)
}

func TestGetEnvironmentVariablesInvalid(t *testing.T) {
	t.Setenv("CONFSYNC_PUBLISH_CONCURRENCY", "many")

	_, err := GetEnvironmentVariables[Settings]()
	require.Error(t, err)
}

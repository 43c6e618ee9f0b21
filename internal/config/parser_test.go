package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	taskerrors "github.com/alexisbeaulieu97/taskgate/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseConfigValidDocument(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
version: 1.0.0
name: sample
settings:
  timeout: 5
tasks:
  - id: build
    command: "echo build"
  - id: deploy
    name: Deploy
    command: "echo deploy"
    depends_on: [build]
    timeout: 10
    conditions:
      - type: env_set
        params:
          variable: HOME
      - type: mutually_exclusive
        negate: false
        params:
          class: deploy
`)

	cfg, err := ParseConfig(path)
	require.NoError(t, err)
	require.Equal(t, "sample", cfg.Name)
	require.Equal(t, 5, cfg.Settings.Timeout)
	require.Len(t, cfg.Tasks, 2)

	deploy := cfg.Tasks[1]
	require.Equal(t, "Deploy", deploy.DisplayName())
	require.Equal(t, []string{"build"}, deploy.DependsOn)
	require.Equal(t, 10, deploy.Timeout)
	require.Len(t, deploy.Conditions, 2)
	require.Equal(t, "env_set", deploy.Conditions[0].Type)
	require.Equal(t, "HOME", deploy.Conditions[0].Params["variable"])
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	var parseErr *taskerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseConfigMalformedYAMLReportsLine(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "version: 1.0.0\nname: sample\ntasks: [\n")

	_, err := ParseConfig(path)

	var parseErr *taskerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
}

func TestParseConfigRejectsInvalidDocument(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
version: 1.0.0
name: sample
tasks:
  - id: build
    command: "echo build"
    depends_on: [missing]
`)

	_, err := ParseConfig(path)

	var validationErr *taskerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestTaskSpecDisplayNameFallsBackToID(t *testing.T) {
	t.Parallel()

	require.Equal(t, "build", TaskSpec{ID: "build"}.DisplayName())
	require.Equal(t, "Build", TaskSpec{ID: "build", Name: "Build"}.DisplayName())
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smarthome-sdk/devicetool/pkg/config"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Error(err)
		}
	})
}

func TestResolveProjectExplicitWins(t *testing.T) {
	project, err := config.ResolveProject("my-project", "ignored.json", "cid")
	require.NoError(t, err)
	require.Equal(t, "my-project", project)
}

func TestResolveProjectFromClientSecretPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"installed":{"project_id":"proj-1"}}`), 0o600))

	project, err := config.ResolveProject("", path, "cid")
	require.NoError(t, err)
	require.Equal(t, "proj-1", project)
}

func TestResolveProjectDefaultFilename(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "client_secret_cid.json"), []byte(`{"installed":{"project_id":"proj-2"}}`), 0o600))

	project, err := config.ResolveProject("", "", "cid")
	require.NoError(t, err)
	require.Equal(t, "proj-2", project)
}

func TestResolveProjectMissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := config.ResolveProject("", "", "cid")
	var projErr *config.ProjectError
	require.ErrorAs(t, err, &projErr)
	require.Equal(t, "client_secret_cid.json", projErr.Path)
	require.Contains(t, err.Error(), "--client-secret")
}

func TestResolveProjectMissingField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"installed":{}}`), 0o600))

	_, err := config.ResolveProject("", path, "cid")
	var projErr *config.ProjectError
	require.ErrorAs(t, err, &projErr)
}

func TestDefaultCredentialsPath(t *testing.T) {
	path := config.DefaultCredentialsPath()
	require.Equal(t, "credentials.json", filepath.Base(path))
	require.Equal(t, "google-oauthlib-tool", filepath.Base(filepath.Dir(path)))
}

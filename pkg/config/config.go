package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultEndpoint is the hostname of the device registry API.
	DefaultEndpoint = "embeddedassistant.googleapis.com"

	credentialsDir  = "google-oauthlib-tool"
	credentialsFile = "credentials.json"
)

// ProjectError reports that no project id could be resolved from the flags
// or the client secret file.
type ProjectError struct {
	Path string
	Err  error
}

func (e *ProjectError) Error() string {
	return fmt.Sprintf("error loading client secret %s: %v.\nRun again with --client-secret or --project, or copy the %s file into the current directory", e.Path, e.Err, e.Path)
}

func (e *ProjectError) Unwrap() error { return e.Err }

// DefaultCredentialsPath returns the credentials file location that
// google-oauthlib-tool writes under the per-OS user config directory.
func DefaultCredentialsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(credentialsDir, credentialsFile)
	}
	return filepath.Join(dir, credentialsDir, credentialsFile)
}

// ClientSecretName returns the conventional client secret filename for a
// client id.
func ClientSecretName(clientID string) string {
	return fmt.Sprintf("client_secret_%s.json", clientID)
}

// clientSecret is the part of the downloaded client secret file we care
// about.
type clientSecret struct {
	Installed struct {
		ProjectID string `json:"project_id"`
	} `json:"installed"`
}

// ResolveProject determines the target project id. An explicit id wins.
// Otherwise the client secret file is parsed for its project_id field,
// defaulting to client_secret_<clientID>.json in the current directory when
// no path is given.
func ResolveProject(explicit, path, clientID string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if path == "" {
		path = ClientSecretName(clientID)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", &ProjectError{Path: path, Err: err}
	}
	var secret clientSecret
	if err := json.Unmarshal(raw, &secret); err != nil {
		return "", &ProjectError{Path: path, Err: err}
	}
	if secret.Installed.ProjectID == "" {
		return "", &ProjectError{Path: path, Err: errors.New("missing installed.project_id field")}
	}
	return secret.Installed.ProjectID, nil
}

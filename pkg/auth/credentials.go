package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
)

// DefaultTokenURI is used when the credentials file does not name a token
// endpoint.
const DefaultTokenURI = "https://oauth2.googleapis.com/token"

// Credentials mirrors the token file written by google-oauthlib-tool.
type Credentials struct {
	ClientID     string   `json:"client_id"`
	ClientSecret string   `json:"client_secret"`
	RefreshToken string   `json:"refresh_token"`
	TokenURI     string   `json:"token_uri"`
	Scopes       []string `json:"scopes"`
}

// Session is an authorized HTTP session for the registry API. The client
// attaches a bearer token to every request and refreshes it as needed.
type Session struct {
	Client   *http.Client
	ClientID string
}

// CredentialError reports a failure to load the credentials file or to
// refresh the access token.
type CredentialError struct {
	Err error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("error loading credentials: %v.\nRun google-oauthlib-tool to initialize new OAuth 2.0 credentials", e.Err)
}

func (e *CredentialError) Unwrap() error { return e.Err }

// Load reads the credentials file at path, performs one refresh against the
// token endpoint and returns an authorized session. The refresh happens
// eagerly so a dead refresh token fails at startup, not mid-command.
func Load(ctx context.Context, path string) (*Session, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &CredentialError{Err: err}
	}

	var creds Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, &CredentialError{Err: err}
	}

	tokenURI := creds.TokenURI
	if tokenURI == "" {
		tokenURI = DefaultTokenURI
	}

	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: tokenURI},
		Scopes:       creds.Scopes,
	}

	src := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: creds.RefreshToken})
	token, err := src.Token()
	if err != nil {
		return nil, &CredentialError{Err: err}
	}

	client := oauth2.NewClient(ctx, oauth2.ReuseTokenSource(token, src))
	return &Session{Client: client, ClientID: creds.ClientID}, nil
}

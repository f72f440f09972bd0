// Package gauth turns Google credential files into API client options.
package gauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Scopes are the permissions requested for calendar, mail and document access.
var Scopes = []string{
	calendar.CalendarScope,
	gmail.GmailReadonlyScope,
	docs.DocumentsReadonlyScope,
}

// ErrNoToken is returned when desktop OAuth credentials are used without a token file.
var ErrNoToken = errors.New("oauth desktop credentials require a token file; run scripts/gauth first")

// Config locates the credential material.
type Config struct {
	CredentialsPath string
	TokenPath       string
	Scopes          []string
}

// ClientOption builds an option.ClientOption from the files named in cfg.
func ClientOption(ctx context.Context, cfg Config) (option.ClientOption, error) {
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var token []byte
	if cfg.TokenPath != "" {
		token, err = os.ReadFile(cfg.TokenPath)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read token file: %w", err)
		}
	}
	return ClientOptionFromJSON(ctx, data, token, cfg.Scopes)
}

// ClientOptionFromJSON accepts either a service account key or OAuth installed-app
// credentials. The latter needs a previously issued token.
func ClientOptionFromJSON(ctx context.Context, credentialsJSON, tokenJSON []byte, scopes []string) (option.ClientOption, error) {
	if len(scopes) == 0 {
		scopes = Scopes
	}

	// Try service account first
	jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, scopes...)
	if err == nil {
		return option.WithTokenSource(jwtCfg.TokenSource(ctx)), nil
	}

	oauthCfg, oauthErr := OAuthConfig(credentialsJSON, scopes)
	if oauthErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	if len(tokenJSON) == 0 {
		return nil, ErrNoToken
	}
	var tok oauth2.Token
	if err := json.Unmarshal(tokenJSON, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	return option.WithTokenSource(oauthCfg.TokenSource(ctx, &tok)), nil
}

// OAuthConfig parses OAuth installed-app credentials.
func OAuthConfig(credentialsJSON []byte, scopes []string) (*oauth2.Config, error) {
	var creds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if err := json.Unmarshal(credentialsJSON, &creds); err != nil {
		return nil, err
	}
	if creds.Installed.ClientID == "" {
		return nil, errors.New("missing installed.client_id")
	}

	cfg := &oauth2.Config{
		ClientID:     creds.Installed.ClientID,
		ClientSecret: creds.Installed.ClientSecret,
		Scopes:       scopes,
		Endpoint:     google.Endpoint,
	}
	if len(creds.Installed.RedirectURIs) > 0 {
		cfg.RedirectURL = creds.Installed.RedirectURIs[0]
	}
	return cfg, nil
}

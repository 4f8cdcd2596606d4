package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// GoogleService verifies Google ID-token assertions against the tokeninfo
// endpoint.
type GoogleService struct {
	clientID string
	client   *http.Client
}

// NewGoogleService creates a GoogleService bound to an OAuth client ID.
func NewGoogleService(clientID string) *GoogleService {
	return &GoogleService{
		clientID: clientID,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// GoogleIdentity is the subset of token claims the application uses.
type GoogleIdentity struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type tokenInfoResponse struct {
	Aud           string `json:"aud"`
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// ErrGoogleNotConfigured is returned when no client ID is set.
var ErrGoogleNotConfigured = errors.New("google sign-in is not configured")

// VerifyIDToken checks the assertion with Google and returns the verified
// identity claims.
func (s *GoogleService) VerifyIDToken(idToken string) (GoogleIdentity, error) {
	if s.clientID == "" {
		return GoogleIdentity{}, ErrGoogleNotConfigured
	}

	endpoint := "https://oauth2.googleapis.com/tokeninfo?id_token=" + url.QueryEscape(idToken)
	resp, err := s.client.Get(endpoint)
	if err != nil {
		return GoogleIdentity{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GoogleIdentity{}, fmt.Errorf("tokeninfo returned status %d", resp.StatusCode)
	}

	var info tokenInfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return GoogleIdentity{}, err
	}

	if info.Aud != s.clientID {
		return GoogleIdentity{}, errors.New("token audience mismatch")
	}

	if info.EmailVerified != "true" || info.Email == "" {
		return GoogleIdentity{}, errors.New("token email not verified")
	}

	return GoogleIdentity{
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}

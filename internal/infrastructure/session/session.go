package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

// CookieName is the browser cookie carrying the OAuth session document.
const CookieName = "_oauth2_access_v2"

// ErrMalformedSession marks a session cookie that could not be decoded.
var ErrMalformedSession = errors.New("malformed session cookie")

// Session is the decoded OAuth session document.
type Session struct {
	AccessToken string `json:"access_token"`
	IdentityID  string `json:"identity_canonical_id"`
}

// ParseCookieValue decodes the URL-encoded JSON session document from the
// raw cookie value.
func ParseCookieValue(value string) (*Session, error) {
	decoded, err := url.QueryUnescape(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSession, err)
	}

	var s Session
	if err := json.Unmarshal([]byte(decoded), &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSession, err)
	}
	if s.AccessToken == "" || s.IdentityID == "" {
		return nil, fmt.Errorf("%w: missing access token or identity id", ErrMalformedSession)
	}
	return &s, nil
}

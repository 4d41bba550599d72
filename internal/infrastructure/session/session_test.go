package session

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCookieValue(t *testing.T) {
	raw := url.QueryEscape(`{"access_token":"tok-123","identity_canonical_id":"identity-9"}`)

	s, err := ParseCookieValue(raw)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", s.AccessToken)
	assert.Equal(t, "identity-9", s.IdentityID)
}

func TestParseCookieValue_ExtraFieldsIgnored(t *testing.T) {
	raw := url.QueryEscape(`{"access_token":"tok","identity_canonical_id":"id","expires_at":12345}`)

	s, err := ParseCookieValue(raw)
	require.NoError(t, err)
	assert.Equal(t, "tok", s.AccessToken)
}

func TestParseCookieValue_Malformed(t *testing.T) {
	for name, value := range map[string]string{
		"not json":      url.QueryEscape("hello"),
		"bad escape":    "%zz",
		"missing token": url.QueryEscape(`{"identity_canonical_id":"id"}`),
		"missing id":    url.QueryEscape(`{"access_token":"tok"}`),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCookieValue(value)
			assert.ErrorIs(t, err, ErrMalformedSession)
		})
	}
}

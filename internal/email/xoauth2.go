package email

import (
	"errors"
	"fmt"
	"net/smtp"

	"golang.org/x/oauth2"
)

// xoauth2Auth implements the SASL XOAUTH2 mechanism used by Gmail and
// Office 365 SMTP relays. Tokens are fetched lazily from the source, so
// expiry and refresh are the token source's concern.
type xoauth2Auth struct {
	user string
	ts   oauth2.TokenSource
}

// XOAUTH2 returns an smtp.Auth that authenticates user with bearer tokens
// from ts. Pair it with oauth2/clientcredentials for machine accounts.
func XOAUTH2(user string, ts oauth2.TokenSource) smtp.Auth {
	return &xoauth2Auth{user: user, ts: ts}
}

func (a *xoauth2Auth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	if !server.TLS {
		return "", nil, errors.New("xoauth2: refusing to send bearer token over plaintext connection")
	}
	tok, err := a.ts.Token()
	if err != nil {
		return "", nil, fmt.Errorf("xoauth2: fetch token: %w", err)
	}
	resp := fmt.Sprintf("user=%s\x01auth=Bearer %s\x01\x01", a.user, tok.AccessToken)
	return "XOAUTH2", []byte(resp), nil
}

func (a *xoauth2Auth) Next(_ []byte, more bool) ([]byte, error) {
	if more {
		// The server sent a base64 error payload; an empty reply makes it
		// fail the exchange with a proper SMTP error.
		return []byte{}, nil
	}
	return nil, nil
}

package session

import (
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/tutaexport/tuta-export/internal/auth"
	"github.com/tutaexport/tuta-export/internal/transport"
	"github.com/tutaexport/tuta-export/internal/wire"
)

// ClientIdentifier is sent to the session service to identify this client.
const ClientIdentifier = "tuta-export"

// generateIDBytesLength is the number of leading access-token bytes that
// belong to the session list id rather than the session's own element id.
const generateIDBytesLength = 9

// Session is the authenticated handle returned by Login: an access token,
// the immutable group-key table it unwrapped, and the raw user record.
type Session struct {
	UserID      string
	AccessToken wire.Base64URL
	GroupKeys   *GroupKeys
	UserData    wire.UserResponse
}

// Login runs the full handshake: fetch KDF parameters, derive the
// passphrase key, exchange the auth verifier for an access token, load
// the user record, and build the group-key table.
func Login(ctx context.Context, client *transport.Client, host, mailAddress, password string) (*Session, error) {
	var saltResp wire.SaltServiceResponse
	saltReq := transport.NewRequest(host, transport.PrefixSys, "saltservice").
		WithMethod("GET").
		WithBody(wire.SaltServiceRequest{MailAddress: mailAddress}).
		WithQuery("mailAddress", mailAddress)
	if err := client.Do(ctx, saltReq, &saltResp); err != nil {
		return nil, fmt.Errorf("login: salt service: %w", err)
	}

	passphraseKey, err := auth.DerivePassphraseKey(saltResp.KdfVersion, password, saltResp.Salt)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	verifier := auth.AuthVerifier(passphraseKey)

	var sessionResp wire.SessionServiceResponse
	sessionReq := transport.NewRequest(host, transport.PrefixSys, "sessionservice").
		WithMethod("POST").
		WithBody(wire.SessionServiceRequest{
			AuthVerifier:     wire.Base64URL(verifier),
			ClientIdentifier: ClientIdentifier,
			MailAddress:      mailAddress,
		})
	if err := client.Do(ctx, sessionReq, &sessionResp); err != nil {
		return nil, fmt.Errorf("login: session service: %w", err)
	}
	if len(sessionResp.Challenges) > 0 {
		return nil, fmt.Errorf("login: %w", ErrChallengeRequired)
	}

	var userResp wire.UserResponse
	userReq := transport.NewRequest(host, transport.PrefixSys, "user/"+sessionResp.User).
		WithAccessToken(sessionResp.AccessToken.String())
	if err := client.Do(ctx, userReq, &userResp); err != nil {
		return nil, fmt.Errorf("login: fetch user: %w", err)
	}

	groupKeys, err := buildGroupKeys(passphraseKey, userResp)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &Session{
		UserID:      sessionResp.User,
		AccessToken: sessionResp.AccessToken,
		GroupKeys:   groupKeys,
		UserData:    userResp,
	}, nil
}

// Logout deletes the session's server-side record. It is safe (and
// expected) to call even if the command that used the session failed.
func Logout(ctx context.Context, client *transport.Client, host string, s *Session) error {
	elementID := sessionElementID(s.AccessToken)
	path := fmt.Sprintf("session/%s/%s", s.UserData.Auth.Sessions, elementID)
	req := transport.NewRequest(host, transport.PrefixSys, path).
		WithMethod("DELETE").
		WithAccessToken(s.AccessToken.String())
	if err := client.Do(ctx, req, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// sessionElementID derives the session's element id from its access
// token: SHA-256 of every byte after the first 9, base64url-encoded.
func sessionElementID(accessToken wire.Base64URL) string {
	sum := sha256.Sum256(accessToken[generateIDBytesLength:])
	return wire.Base64URL(sum[:]).String()
}

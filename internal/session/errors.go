package session

import "errors"

var (
	// ErrChallengeRequired is returned when the session service demands a
	// two-factor challenge this client cannot answer.
	ErrChallengeRequired = errors.New("not implemented: challenges")

	// ErrGroupKeyNotFound is returned when GroupKeys.Get is asked for a
	// group it never unwrapped a key for.
	ErrGroupKeyNotFound = errors.New("group key not found")

	// ErrNoMailGroup is returned when the user has no membership of type Mail.
	ErrNoMailGroup = errors.New("no mail group found")

	// ErrDuplicateMailGroup is returned when the user has more than one
	// membership of type Mail, which the server should never produce.
	ErrDuplicateMailGroup = errors.New("duplicate group membership for mail type")

	// ErrMissingUserGroupKey is returned when the user's own group has no
	// wrapped key to unwrap with the passphrase key.
	ErrMissingUserGroupKey = errors.New("user group key must be set")
)

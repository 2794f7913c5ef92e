// Package auth derives the user's passphrase key from their password and
// the server-supplied KDF parameters, and computes the auth verifier sent
// to the session service.
package auth

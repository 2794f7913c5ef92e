// Package session implements login and logout against the sys services:
// deriving the passphrase key, exchanging it for an access token, and
// building the immutable group-key table every other package reads from.
package session

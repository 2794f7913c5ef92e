// Package folders lists the mail folders visible to a session: resolving
// the mailbox pointer, then streaming and decrypting the folder records
// it contains.
package folders

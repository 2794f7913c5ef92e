// Package mail lists and downloads individual mails: decrypting listing
// metadata (subject, sender), then on download, fetching and decrypting
// the detail blob (headers, body, recipients) and every attachment blob
// referenced by the listing entry.
package mail

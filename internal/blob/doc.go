// Package blob implements the blob access protocol: acquiring a
// short-lived access token for an archive, then fetching the mail detail
// blob (JSON) or an attachment blob (raw bytes) from whichever blob
// server the token authorizes.
package blob

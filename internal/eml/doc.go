// Package eml assembles a decrypted mail into an RFC 822/2045 document:
// server-delivered headers with the Content-Type line stripped, or
// synthesized headers when none were delivered, followed by a
// multipart/related body and attachment parts.
package eml

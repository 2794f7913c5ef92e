// Package wire defines the JSON request/response records exchanged with
// the Tutanota REST services and their serialization rules: a literal
// "_format" tag, decimal-string enumerations, base64 binary fields, and
// millisecond-timestamp dates.
package wire

// Package export drives the download command: selecting a folder,
// streaming its mails with bounded concurrency, assembling each into an
// EML document, and writing it atomically to the target directory.
package export

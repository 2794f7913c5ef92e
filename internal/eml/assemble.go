package eml

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"

	"github.com/tutaexport/tuta-export/internal/mail"
)

// boundary is the fixed multipart boundary every export uses. It never
// collides with real mail content since it is never derived from it.
const boundary = "----------79Bu5A16qPEYcVIZL@tutanota"

const newline = "\r\n"

var (
	lineEndingRe    = regexp.MustCompile(`\r?\n`)
	contentTypeRe   = regexp.MustCompile(`(?i)^Content-Type: .*`)
	startWithSpaces = regexp.MustCompile(`^\s+.*`)
)

// Assemble renders a decrypted mail as an RFC 822/2045 document with
// CRLF line endings: inherited or synthesized headers, a
// multipart/related body part, and one part per attachment.
func Assemble(m *mail.DownloadedMail) (string, error) {
	var lines []string

	if m.HasHeaders {
		headers, err := removeContentType(splitHeaderLines(m.Headers))
		if err != nil {
			return "", fmt.Errorf("eml: %w", err)
		}
		lines = append(lines, headers...)
	} else {
		lines = append(lines, synthesizeHeaders(m)...)
	}
	lines = append(lines, fmt.Sprintf(`Content-Type: multipart/related; boundary="%s"`, boundary))

	lines = appendIntermediateDelimiter(lines)
	lines = append(lines, "Content-Type: text/html; charset=UTF-8")
	lines = append(lines, "Content-Transfer-Encoding: base64")
	lines = append(lines, "")
	lines = appendChunked(lines, base64.StdEncoding.EncodeToString(m.Body))

	for _, a := range m.Attachments {
		lines = appendIntermediateDelimiter(lines)
		lines = append(lines, fmt.Sprintf("Content-Type: %s; name=%s", a.MimeType, utf8HeaderValue(a.Name)))
		lines = append(lines, "Content-Transfer-Encoding: base64")
		lines = append(lines, fmt.Sprintf("Content-Disposition: attachment; filename=%s", utf8HeaderValue(a.Name)))
		if a.Cid != "" {
			lines = append(lines, fmt.Sprintf("Content-Id: <%s>", a.Cid))
		}
		lines = append(lines, "")
		lines = appendChunked(lines, base64.StdEncoding.EncodeToString(a.Data))
	}

	lines = appendFinalDelimiter(lines)
	return strings.Join(lines, newline), nil
}

// synthesizeHeaders builds a minimal header block when the server
// delivered none: sender, MIME version, subject, and any non-empty
// recipient lists.
func synthesizeHeaders(m *mail.DownloadedMail) []string {
	var lines []string
	sender := m.Mail.Sender
	lines = append(lines, fmt.Sprintf("From: %s <%s>", sender.Name, sender.Address))
	lines = append(lines, "MIME-Version: 1.0")

	if m.Mail.Subject == "" {
		lines = append(lines, "Subject: ")
	} else {
		lines = append(lines, fmt.Sprintf("Subject: %s", utf8HeaderValue(m.Mail.Subject)))
	}

	if line := recipientsHeaderLine("To", m.To); line != "" {
		lines = append(lines, line)
	}
	if line := recipientsHeaderLine("Cc", m.Cc); line != "" {
		lines = append(lines, line)
	}
	if line := recipientsHeaderLine("Bcc", m.Bcc); line != "" {
		lines = append(lines, line)
	}
	return lines
}

func recipientsHeaderLine(name string, addrs []mail.Address) string {
	if len(addrs) == 0 {
		return ""
	}
	mailboxes := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if a.Name == "" {
			mailboxes = append(mailboxes, a.Address)
			continue
		}
		mailboxes = append(mailboxes, fmt.Sprintf("%s <%s>", utf8HeaderValue(a.Name), a.Address))
	}
	return fmt.Sprintf("%s: %s", name, strings.Join(mailboxes, ", "))
}

// splitHeaderLines normalizes the server's \n line endings to individual
// lines, mirroring how upstream delivers headers without the CRLF
// endings the rest of the document uses.
func splitHeaderLines(headers string) []string {
	return lineEndingRe.Split(headers, -1)
}

// removeContentType drops the inherited Content-Type header and any of
// its continuation lines, since step 2 always emits a fresh one that
// names our own multipart boundary.
func removeContentType(headers []string) ([]string, error) {
	out := make([]string, 0, len(headers))
	inContentType := false
	found := false
	for _, h := range headers {
		switch {
		case contentTypeRe.MatchString(h):
			inContentType = true
			found = true
		case inContentType && startWithSpaces.MatchString(h):
			// continuation line of the header we're dropping
		default:
			inContentType = false
			out = append(out, h)
		}
	}
	if !found {
		return nil, ErrContentTypeNotFound
	}
	return out, nil
}

// See https://www.w3.org/Protocols/rfc1341/7_2_Multipart.html.
func appendIntermediateDelimiter(lines []string) []string {
	return append(lines, "", "--"+boundary)
}

// See https://www.w3.org/Protocols/rfc1341/7_2_Multipart.html.
func appendFinalDelimiter(lines []string) []string {
	return append(lines, "", "--"+boundary+"--")
}

func appendChunked(lines []string, s string) []string {
	if s == "" {
		return lines
	}
	for len(s) > 78 {
		lines = append(lines, s[:78])
		s = s[78:]
	}
	return append(lines, s)
}

func utf8HeaderValue(s string) string {
	return fmt.Sprintf("=?UTF-8?B?%s?=", base64.StdEncoding.EncodeToString([]byte(s)))
}

package export

import (
	"fmt"
	"strings"

	"github.com/tutaexport/tuta-export/internal/mail"
)

const maxSubjectLength = 64

// escape keeps only the characters safe to put in a file name on every
// common filesystem: letters, digits, and spaces.
func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// targetFileName builds the on-disk name for one mail: a sortable
// timestamp prefix followed by the escaped, length-capped subject.
func targetFileName(m mail.Mail) string {
	timestamp := m.ReceivedDate.UTC().Format("2006-01-02-15h04m05s")
	subject := escape(m.Subject)
	if len(subject) > maxSubjectLength {
		subject = subject[:maxSubjectLength]
	}
	return fmt.Sprintf("%s-%s.eml", timestamp, subject)
}

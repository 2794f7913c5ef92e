package export

import (
	"testing"
	"time"

	"github.com/tutaexport/tuta-export/internal/mail"
)

func TestEscape(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"azaZ09 ", "azaZ09 "},
		{"fOo1!@/\\bar19", "fOo1bar19"},
	}
	for _, c := range cases {
		if got := escape(c.in); got != c.want {
			t.Errorf("escape(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTargetFileName(t *testing.T) {
	date, err := time.Parse(time.RFC3339, "2020-03-04T11:22:33Z")
	if err != nil {
		t.Fatalf("time.Parse: %v", err)
	}
	m := mail.Mail{Subject: "Hello, world!", ReceivedDate: date}

	got := targetFileName(m)
	want := "2020-03-04-11h22m33s-Hello world.eml"
	if got != want {
		t.Fatalf("targetFileName = %q, want %q", got, want)
	}
}

func TestTargetFileNameTruncatesSubject(t *testing.T) {
	date, err := time.Parse(time.RFC3339, "2020-03-04T11:22:33Z")
	if err != nil {
		t.Fatalf("time.Parse: %v", err)
	}
	longSubject := ""
	for i := 0; i < 100; i++ {
		longSubject += "a"
	}
	m := mail.Mail{Subject: longSubject, ReceivedDate: date}

	got := targetFileName(m)
	want := "2020-03-04-11h22m33s-" + longSubject[:maxSubjectLength] + ".eml"
	if got != want {
		t.Fatalf("targetFileName = %q, want %q", got, want)
	}
}

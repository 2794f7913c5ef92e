package eml

import (
	"errors"
	"strings"
	"testing"

	"github.com/tutaexport/tuta-export/internal/mail"
)

func baseMail() mail.Mail {
	return mail.Mail{
		FolderID:  "folder_id",
		MailID:    "mail_id",
		ArchiveID: "archive_id",
		BlobID:    "blob_id",
		Subject:   "Hällö",
		Sender: mail.Address{
			Address: "foo@example.com",
			Name:    "Me",
		},
	}
}

func crlf(s string) string {
	return strings.ReplaceAll(s, "\n", "\r\n")
}

func TestAssembleInheritedHeaders(t *testing.T) {
	dm := &mail.DownloadedMail{
		Mail:       baseMail(),
		Headers:    "From: foo@example.com\nContent-Type: multipart/related; boundary=\"myboundary\"",
		HasHeaders: true,
		Body:       []byte("hello world"),
	}

	got, err := Assemble(dm)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := crlf(`From: foo@example.com
Content-Type: multipart/related; boundary="----------79Bu5A16qPEYcVIZL@tutanota"

------------79Bu5A16qPEYcVIZL@tutanota
Content-Type: text/html; charset=UTF-8
Content-Transfer-Encoding: base64

aGVsbG8gd29ybGQ=

------------79Bu5A16qPEYcVIZL@tutanota--`)
	if got != want {
		t.Fatalf("Assemble =\n%q\nwant\n%q", got, want)
	}
}

func TestAssembleContentTypeLowerCase(t *testing.T) {
	dm := &mail.DownloadedMail{
		Mail:       baseMail(),
		Headers:    "From: foo@example.com\ncontent-type: text/plain",
		HasHeaders: true,
		Body:       []byte("hello world"),
	}

	got, err := Assemble(dm)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := crlf(`From: foo@example.com
Content-Type: multipart/related; boundary="----------79Bu5A16qPEYcVIZL@tutanota"

------------79Bu5A16qPEYcVIZL@tutanota
Content-Type: text/html; charset=UTF-8
Content-Transfer-Encoding: base64

aGVsbG8gd29ybGQ=

------------79Bu5A16qPEYcVIZL@tutanota--`)
	if got != want {
		t.Fatalf("Assemble =\n%q\nwant\n%q", got, want)
	}
}

func TestAssembleMissingContentTypeFails(t *testing.T) {
	dm := &mail.DownloadedMail{
		Mail:       baseMail(),
		Headers:    "From: foo@example.com",
		HasHeaders: true,
		Body:       []byte("hello world"),
	}

	_, err := Assemble(dm)
	if !errors.Is(err, ErrContentTypeNotFound) {
		t.Fatalf("err = %v, want ErrContentTypeNotFound", err)
	}
}

func TestAssembleAttachments(t *testing.T) {
	dm := &mail.DownloadedMail{
		Mail:       baseMail(),
		Headers:    "From: foo@example.com\nContent-Type: multipart/related; boundary=\"myboundary\"",
		HasHeaders: true,
		Body:       []byte("hello world"),
		Attachments: []mail.Attachment{
			{Cid: "cid001", MimeType: "image/jpeg", Name: "föo.jpg", Data: []byte("foobar")},
			{Cid: "cid002", MimeType: "image/new", Name: "å", Data: []byte("x")},
		},
	}

	got, err := Assemble(dm)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := crlf(`From: foo@example.com
Content-Type: multipart/related; boundary="----------79Bu5A16qPEYcVIZL@tutanota"

------------79Bu5A16qPEYcVIZL@tutanota
Content-Type: text/html; charset=UTF-8
Content-Transfer-Encoding: base64

aGVsbG8gd29ybGQ=

------------79Bu5A16qPEYcVIZL@tutanota
Content-Type: image/jpeg; name==?UTF-8?B?ZsO2by5qcGc=?=
Content-Transfer-Encoding: base64
Content-Disposition: attachment; filename==?UTF-8?B?ZsO2by5qcGc=?=
Content-Id: <cid001>

Zm9vYmFy

------------79Bu5A16qPEYcVIZL@tutanota
Content-Type: image/new; name==?UTF-8?B?w6U=?=
Content-Transfer-Encoding: base64
Content-Disposition: attachment; filename==?UTF-8?B?w6U=?=
Content-Id: <cid002>

eA==

------------79Bu5A16qPEYcVIZL@tutanota--`)
	if got != want {
		t.Fatalf("Assemble =\n%q\nwant\n%q", got, want)
	}
}

func TestAssembleAttachmentWithoutCid(t *testing.T) {
	dm := &mail.DownloadedMail{
		Mail:       baseMail(),
		Headers:    "From: foo@example.com\nContent-Type: multipart/related; boundary=\"myboundary\"",
		HasHeaders: true,
		Body:       []byte("hello world"),
		Attachments: []mail.Attachment{
			{MimeType: "image/new", Name: "a", Data: []byte("x")},
		},
	}

	got, err := Assemble(dm)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if strings.Contains(got, "Content-Id:") {
		t.Fatalf("Assemble emitted Content-Id with no cid present:\n%s", got)
	}
}

func TestAssembleSynthesizedHeaders(t *testing.T) {
	dm := &mail.DownloadedMail{
		Mail:       baseMail(),
		HasHeaders: false,
		Body:       []byte("hello world"),
	}

	got, err := Assemble(dm)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	want := crlf(`From: Me <foo@example.com>
MIME-Version: 1.0
Subject: =?UTF-8?B?SMOkbGzDtg==?=
Content-Type: multipart/related; boundary="----------79Bu5A16qPEYcVIZL@tutanota"

------------79Bu5A16qPEYcVIZL@tutanota
Content-Type: text/html; charset=UTF-8
Content-Transfer-Encoding: base64

aGVsbG8gd29ybGQ=

------------79Bu5A16qPEYcVIZL@tutanota--`)
	if got != want {
		t.Fatalf("Assemble =\n%q\nwant\n%q", got, want)
	}
}

func TestAssembleSynthesizedHeadersWithRecipients(t *testing.T) {
	dm := &mail.DownloadedMail{
		Mail:       baseMail(),
		HasHeaders: false,
		Body:       []byte("hello world"),
		To: []mail.Address{
			{Address: "a@example.com", Name: "Alice"},
			{Address: "b@example.com"},
		},
		Cc: []mail.Address{
			{Address: "c@example.com", Name: "Carol"},
		},
	}

	got, err := Assemble(dm)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if !strings.Contains(got, "To: =?UTF-8?B?QWxpY2U=?= <a@example.com>, b@example.com\r\n") {
		t.Fatalf("missing expected To header:\n%s", got)
	}
	if !strings.Contains(got, "Cc: =?UTF-8?B?Q2Fyb2w=?= <c@example.com>\r\n") {
		t.Fatalf("missing expected Cc header:\n%s", got)
	}
	if strings.Contains(got, "Bcc:") {
		t.Fatalf("unexpected Bcc header emitted:\n%s", got)
	}
}

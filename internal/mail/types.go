package mail

import (
	"time"

	"github.com/tutaexport/tuta-export/internal/cryptokeys"
)

// Address is a mail participant's address and display name.
type Address struct {
	Address string
	Name    string
}

// AttachmentRef is the [group_id, file_id] pair identifying one
// attachment's file record.
type AttachmentRef struct {
	GroupID string
	FileID  string
}

// Mail is one listing entry: enough to locate and decrypt the full
// message on demand, without the body or attachment bytes.
type Mail struct {
	FolderID       string
	MailID         string
	ArchiveID      string
	BlobID         string
	IsDraft        bool
	SessionKey     cryptokeys.Key
	ReceivedDate   time.Time
	Subject        string
	Sender         Address
	AttachmentRefs []AttachmentRef
}

// UIURL returns the webmail URL for this mail, useful for correlating
// an exported file with what a human sees in the browser.
func (m Mail) UIURL() string {
	return "https://mail.tutanota.com/#mail/" + m.FolderID + "/" + m.MailID
}

// Attachment is one decrypted file attached to a mail.
type Attachment struct {
	Cid      string
	MimeType string
	Name     string
	Data     []byte
}

// DownloadedMail is a fully decrypted mail, ready for EML assembly.
type DownloadedMail struct {
	Mail        Mail
	Headers     string
	HasHeaders  bool
	Body        []byte
	Attachments []Attachment
	To          []Address
	Cc          []Address
	Bcc         []Address
}

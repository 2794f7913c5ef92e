package wire

import "github.com/tutaexport/tuta-export/internal/cryptokeys"

// ID is the two-element identifier every listed entity carries:
// [list_id, element_id]. Pagination cursors advance using id[1].
type ID [2]string

// ListID returns the first component, the collection the entity lives in.
func (id ID) ListID() string { return id[0] }

// ElementID returns the second component, the entity's own identifier
// and the cursor value for the next page of a paginated stream.
func (id ID) ElementID() string { return id[1] }

// SaltServiceRequest asks for the KDF parameters of a mail address.
type SaltServiceRequest struct {
	Format      Format `json:"_format"`
	MailAddress string `json:"mailAddress"`
}

// SaltServiceResponse carries the KDF version and salt for a mail address.
type SaltServiceResponse struct {
	Format    Format     `json:"_format"`
	KdfVersion KdfVersion `json:"kdfVersion"`
	Salt      Base64String `json:"salt"`
}

// SessionServiceRequest creates a new session given an auth verifier.
type SessionServiceRequest struct {
	Format             Format    `json:"_format"`
	AccessKey          Null      `json:"accessKey"`
	AuthToken          Null      `json:"authToken"`
	AuthVerifier       Base64URL `json:"authVerifier"`
	ClientIdentifier   string    `json:"clientIdentifier"`
	MailAddress        string    `json:"mailAddress"`
	RecoverCodeVerifier Null     `json:"recoverCodeVerifier"`
	User               Null      `json:"user"`
}

// SessionServiceResponse carries the freshly minted access token.
type SessionServiceResponse struct {
	Format      Format    `json:"_format"`
	AccessToken Base64URL `json:"accessToken"`
	Challenges  []string  `json:"challenges"`
	User        string    `json:"user"`
}

// UserMembership associates a user with a server-side authorization group.
type UserMembership struct {
	GroupType  GroupType           `json:"groupType"`
	Group      string              `json:"group"`
	SymEncGKey cryptokeys.OptionalEncryptedKey `json:"symEncGKey"`
}

// UserAuth lists the sessions a user currently holds open.
type UserAuth struct {
	Sessions string `json:"sessions"`
}

// UserResponse is the full user record fetched after login.
type UserResponse struct {
	Format      Format           `json:"_format"`
	Memberships []UserMembership `json:"memberships"`
	Auth        UserAuth         `json:"auth"`
	UserGroup   UserMembership   `json:"userGroup"`
}

// MailboxGroupRootResponse points at the mailbox belonging to a mail group.
type MailboxGroupRootResponse struct {
	Format  Format `json:"_format"`
	Mailbox string `json:"mailbox"`
}

// Folders is the pointer to the paginated collection of mail folders.
type Folders struct {
	Folders string `json:"folders"`
}

// MailboxResponse carries the folders pointer for a mailbox.
type MailboxResponse struct {
	Format  Format  `json:"_format"`
	Folders Folders `json:"folders"`
}

// FolderResponse is one entry in the paginated mailfolder collection.
type FolderResponse struct {
	Format             Format               `json:"_format"`
	ID                 ID                   `json:"_id"`
	OwnerEncSessionKey cryptokeys.OptionalEncryptedKey `json:"_ownerEncSessionKey"`
	OwnerGroup         string               `json:"_ownerGroup"`
	FolderType         MailFolderType       `json:"folderType"`
	Name               Base64String         `json:"name"`
	Mails              string               `json:"mails"`
}

// MailAddress is an address/name pair as carried on mail records.
type MailAddress struct {
	Address string       `json:"address"`
	Name    Base64String `json:"name"`
}

// MailResponse is one entry in the paginated mail collection.
type MailResponse struct {
	Format             Format               `json:"_format"`
	ID                 ID                   `json:"_id"`
	OwnerEncSessionKey cryptokeys.OptionalEncryptedKey `json:"_ownerEncSessionKey"`
	OwnerGroup         string               `json:"_ownerGroup"`
	Subject            Base64String         `json:"subject"`
	Sender             MailAddress          `json:"sender"`
	ReceivedDate       Timestamp            `json:"receivedDate"`
	MailDetails        *ID                  `json:"mailDetails"`
	MailDetailsDraft   *ID                  `json:"mailDetailsDraft"`
	Attachments        []ID                 `json:"attachments"`
}

// BlobReadRequest identifies the archive (and, for a single-instance
// request such as an attachment, the exact instance) a blob access token
// is being requested for. InstanceListID is empty for archive-level
// requests (mail detail blobs) and set for single-instance requests
// (attachments), so the server can authorize the exact instance.
type BlobReadRequest struct {
	ArchiveID      string   `json:"archiveId"`
	InstanceIDs    []string `json:"instanceIds"`
	InstanceListID string   `json:"instanceListId,omitempty"`
}

// BlobAccessTokenServiceRequest requests a short-lived token authorizing
// reads against one archive.
type BlobAccessTokenServiceRequest struct {
	Format          Format          `json:"_format"`
	ArchiveDataType ArchiveDataType `json:"archiveDataType"`
	Read            BlobReadRequest `json:"read"`
	Write           Null            `json:"write"`
}

// BlobServer is one candidate host that will accept the issued token.
type BlobServer struct {
	URL string `json:"url"`
}

// BlobAccessInfo bundles the token with the servers authorized to accept it.
type BlobAccessInfo struct {
	BlobAccessToken string       `json:"blobAccessToken"`
	Servers         []BlobServer `json:"servers"`
}

// BlobAccessTokenServiceResponse carries the issued access grant.
type BlobAccessTokenServiceResponse struct {
	Format         Format         `json:"_format"`
	BlobAccessInfo BlobAccessInfo `json:"blobAccessInfo"`
}

// MailBody holds the plaintext or still-compressed HTML body of a mail.
type MailBody struct {
	Text           Base64String `json:"text"`
	CompressedText Base64String `json:"compressedText"`
}

// Recipients carries the three encrypted recipient lists of a mail.
type Recipients struct {
	ToRecipients  []MailAddress `json:"toRecipients"`
	CcRecipients  []MailAddress `json:"ccRecipients"`
	BccRecipients []MailAddress `json:"bccRecipients"`
}

// MailDetails wraps the body, headers, and recipients inside a
// mail-details blob.
type MailDetails struct {
	Body       MailBody     `json:"body"`
	Headers    Base64String `json:"headers"`
	Recipients Recipients   `json:"recipients"`
}

// MailDetailsBlob is the JSON document fetched from maildetailsblob.
type MailDetailsBlob struct {
	Format  Format      `json:"_format"`
	Details MailDetails `json:"details"`
}

// FileResponse is the metadata record describing one attachment. BlobRef
// points at its attachment blob the same way MailResponse.MailDetails
// points at a mail's detail blob: [archive_id, blob_id].
type FileResponse struct {
	Format             Format                       `json:"_format"`
	ID                 ID                           `json:"_id"`
	OwnerEncSessionKey cryptokeys.OptionalEncryptedKey `json:"_ownerEncSessionKey"`
	OwnerGroup         string                       `json:"_ownerGroup"`
	Name               Base64String                 `json:"name"`
	MimeType           Base64String                 `json:"mimeType"`
	Size               string                       `json:"size"`
	Cid                Base64String                 `json:"cid"`
	BlobRef            ID                           `json:"blobRef"`
}

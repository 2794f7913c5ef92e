package wire

import (
	"encoding/json"
	"fmt"
)

// enumDecode deserializes a decimal-string-tagged enum, producing the
// exact error message the protocol's round-trip tests expect.
func enumDecode(data []byte, values map[string]int, dst *int) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("enum: %w", err)
	}
	v, ok := values[s]
	if !ok {
		return fmt.Errorf("unknown variant: %s", s)
	}
	*dst = v
	return nil
}

// KdfVersion identifies which password-hashing KDF the server wants.
type KdfVersion int

const (
	KdfBcrypt KdfVersion = iota
	KdfArgon2id
)

var kdfVersionNames = map[KdfVersion]string{
	KdfBcrypt:   "0",
	KdfArgon2id: "1",
}

var kdfVersionValues = map[string]int{"0": 0, "1": 1}

func (k KdfVersion) MarshalJSON() ([]byte, error) {
	return json.Marshal(kdfVersionNames[k])
}

func (k *KdfVersion) UnmarshalJSON(data []byte) error {
	var v int
	if err := enumDecode(data, kdfVersionValues, &v); err != nil {
		return err
	}
	*k = KdfVersion(v)
	return nil
}

// GroupType identifies a server-side authorization group's purpose.
type GroupType int

const (
	GroupUser GroupType = iota
	GroupAdmin
	GroupMailingList
	GroupCustomer
	GroupExternal
	GroupMail
	GroupContact
	GroupFile
	GroupLocalAdmin
	GroupCalendar
	GroupTemplate
	GroupContactList
)

var groupTypeNames = map[GroupType]string{
	GroupUser: "0", GroupAdmin: "1", GroupMailingList: "2", GroupCustomer: "3",
	GroupExternal: "4", GroupMail: "5", GroupContact: "6", GroupFile: "7",
	GroupLocalAdmin: "8", GroupCalendar: "9", GroupTemplate: "10", GroupContactList: "11",
}

var groupTypeValues = map[string]int{
	"0": 0, "1": 1, "2": 2, "3": 3, "4": 4, "5": 5,
	"6": 6, "7": 7, "8": 8, "9": 9, "10": 10, "11": 11,
}

func (g GroupType) MarshalJSON() ([]byte, error) {
	return json.Marshal(groupTypeNames[g])
}

func (g *GroupType) UnmarshalJSON(data []byte) error {
	var v int
	if err := enumDecode(data, groupTypeValues, &v); err != nil {
		return err
	}
	*g = GroupType(v)
	return nil
}

// MailFolderType identifies a built-in or custom mail folder.
type MailFolderType int

const (
	FolderCustom MailFolderType = iota
	FolderInbox
	FolderSent
	FolderTrash
	FolderArchive
	FolderSpam
	FolderDraft
)

var mailFolderTypeNames = map[MailFolderType]string{
	FolderCustom: "0", FolderInbox: "1", FolderSent: "2", FolderTrash: "3",
	FolderArchive: "4", FolderSpam: "5", FolderDraft: "6",
}

var mailFolderTypeValues = map[string]int{
	"0": 0, "1": 1, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6,
}

// builtinFolderLabel is the fixed display name for every non-custom folder type.
var builtinFolderLabel = map[MailFolderType]string{
	FolderInbox:   "Inbox",
	FolderSent:    "Sent",
	FolderTrash:   "Trash",
	FolderArchive: "Archive",
	FolderSpam:    "Spam",
	FolderDraft:   "Draft",
}

// Label returns the fixed display name for a built-in folder type, or
// the empty string for MailFolderType.Custom (whose name is decrypted
// from the wire record instead).
func (m MailFolderType) Label() string {
	return builtinFolderLabel[m]
}

func (m MailFolderType) MarshalJSON() ([]byte, error) {
	return json.Marshal(mailFolderTypeNames[m])
}

func (m *MailFolderType) UnmarshalJSON(data []byte) error {
	var v int
	if err := enumDecode(data, mailFolderTypeValues, &v); err != nil {
		return err
	}
	*m = MailFolderType(v)
	return nil
}

// ArchiveDataType identifies which kind of blob archive is being addressed.
type ArchiveDataType int

const (
	ArchiveAuthorityRequests ArchiveDataType = iota
	ArchiveAttachments
	ArchiveMailDetails
)

var archiveDataTypeNames = map[ArchiveDataType]string{
	ArchiveAuthorityRequests: "0", ArchiveAttachments: "1", ArchiveMailDetails: "2",
}

var archiveDataTypeValues = map[string]int{"0": 0, "1": 1, "2": 2}

func (a ArchiveDataType) MarshalJSON() ([]byte, error) {
	return json.Marshal(archiveDataTypeNames[a])
}

func (a *ArchiveDataType) UnmarshalJSON(data []byte) error {
	var v int
	if err := enumDecode(data, archiveDataTypeValues, &v); err != nil {
		return err
	}
	*a = ArchiveDataType(v)
	return nil
}

package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tutaexport/tuta-export/internal/blob"
	"github.com/tutaexport/tuta-export/internal/cryptokeys"
	"github.com/tutaexport/tuta-export/internal/lz4block"
	"github.com/tutaexport/tuta-export/internal/session"
	"github.com/tutaexport/tuta-export/internal/symcrypto"
	"github.com/tutaexport/tuta-export/internal/transport"
	"github.com/tutaexport/tuta-export/internal/wire"
)

// Download fetches and decrypts everything needed to assemble one mail's
// EML document: its detail blob (headers, body, recipients) and every
// attachment's metadata and blob.
func Download(ctx context.Context, client *transport.Client, host string, s *session.Session, m Mail, logger *slog.Logger) (DownloadedMail, error) {
	if logger == nil {
		logger = slog.Default()
	}

	details, err := blob.GetMailDetailsBlob(ctx, client, host, s, m.ArchiveID, m.BlobID)
	if err != nil {
		return DownloadedMail{}, fmt.Errorf("download mail %s: %w", m.MailID, err)
	}

	body, err := decodeBody(m.SessionKey, details.Details.Body)
	if err != nil {
		return DownloadedMail{}, fmt.Errorf("download mail %s: %w", m.MailID, err)
	}

	var (
		headers    string
		hasHeaders bool
	)
	if len(details.Details.Headers) > 0 {
		plain, err := symcrypto.DecryptValue(m.SessionKey, details.Details.Headers)
		if err != nil {
			return DownloadedMail{}, fmt.Errorf("download mail %s: decrypt headers: %w", m.MailID, err)
		}
		headers = string(plain)
		hasHeaders = true
	}

	to, err := decodeRecipients(m.SessionKey, details.Details.Recipients.ToRecipients)
	if err != nil {
		return DownloadedMail{}, fmt.Errorf("download mail %s: %w", m.MailID, err)
	}
	cc, err := decodeRecipients(m.SessionKey, details.Details.Recipients.CcRecipients)
	if err != nil {
		return DownloadedMail{}, fmt.Errorf("download mail %s: %w", m.MailID, err)
	}
	bcc, err := decodeRecipients(m.SessionKey, details.Details.Recipients.BccRecipients)
	if err != nil {
		return DownloadedMail{}, fmt.Errorf("download mail %s: %w", m.MailID, err)
	}

	attachments := make([]Attachment, 0, len(m.AttachmentRefs))
	for _, ref := range m.AttachmentRefs {
		a, err := downloadAttachment(ctx, client, host, s, ref, logger)
		if err != nil {
			return DownloadedMail{}, fmt.Errorf("download mail %s: %w", m.MailID, err)
		}
		attachments = append(attachments, a)
	}

	return DownloadedMail{
		Mail:        m,
		Headers:     headers,
		HasHeaders:  hasHeaders,
		Body:        body,
		Attachments: attachments,
		To:          to,
		Cc:          cc,
		Bcc:         bcc,
	}, nil
}

// decodeBody decrypts the body envelope, preferring the plain text field
// and falling back to decrypt-then-decompress for the compressed one.
func decodeBody(sessionKey cryptokeys.Key, body wire.MailBody) ([]byte, error) {
	if len(body.Text) > 0 {
		plain, err := symcrypto.DecryptValue(sessionKey, body.Text)
		if err != nil {
			return nil, fmt.Errorf("decrypt body: %w", err)
		}
		return plain, nil
	}

	compressed, err := symcrypto.DecryptValue(sessionKey, body.CompressedText)
	if err != nil {
		return nil, fmt.Errorf("decrypt body: %w", err)
	}
	plain, err := lz4block.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("decompress body: %w", err)
	}
	return plain, nil
}

func decodeRecipients(sessionKey cryptokeys.Key, addrs []wire.MailAddress) ([]Address, error) {
	out := make([]Address, 0, len(addrs))
	for _, a := range addrs {
		name, err := symcrypto.DecryptValue(sessionKey, a.Name)
		if err != nil {
			return nil, fmt.Errorf("decrypt recipient name: %w", err)
		}
		out = append(out, Address{Address: a.Address, Name: string(name)})
	}
	return out, nil
}

// downloadAttachment fetches one attachment's file metadata, unwraps its
// session key, fetches and decrypts its blob, and warns (without failing)
// if the decrypted size disagrees with the declared file size: on some
// older accounts the two diverge and the server never explains why.
func downloadAttachment(ctx context.Context, client *transport.Client, host string, s *session.Session, ref AttachmentRef, logger *slog.Logger) (Attachment, error) {
	var file wire.FileResponse
	req := transport.NewRequest(host, transport.PrefixTutanota, "file/"+ref.GroupID+"/"+ref.FileID).
		WithAccessToken(s.AccessToken.String())
	if err := client.Do(ctx, req, &file); err != nil {
		return Attachment{}, fmt.Errorf("file metadata: %w", err)
	}

	encKey, ok := file.OwnerEncSessionKey.Get()
	if !ok {
		return Attachment{}, fmt.Errorf("file %s: owner enc session key required", ref.FileID)
	}
	ownerGroupKey, err := s.GroupKeys.Get(file.OwnerGroup)
	if err != nil {
		return Attachment{}, fmt.Errorf("file %s: %w", ref.FileID, err)
	}
	fileSessionKey, err := symcrypto.DecryptKey(ownerGroupKey, encKey)
	if err != nil {
		return Attachment{}, fmt.Errorf("file %s: unwrap session key: %w", ref.FileID, err)
	}

	name, err := symcrypto.DecryptValue(fileSessionKey, file.Name)
	if err != nil {
		return Attachment{}, fmt.Errorf("file %s: decrypt name: %w", ref.FileID, err)
	}
	mimeType, err := symcrypto.DecryptValue(fileSessionKey, file.MimeType)
	if err != nil {
		return Attachment{}, fmt.Errorf("file %s: decrypt mime type: %w", ref.FileID, err)
	}

	var cid string
	if len(file.Cid) > 0 {
		plain, err := symcrypto.DecryptValue(fileSessionKey, file.Cid)
		if err != nil {
			return Attachment{}, fmt.Errorf("file %s: decrypt cid: %w", ref.FileID, err)
		}
		cid = string(plain)
	}

	raw, err := blob.GetAttachmentBlob(ctx, client, host, s, file.BlobRef.ListID(), file.BlobRef.ElementID(), file.ID.ListID(), file.ID.ElementID())
	if err != nil {
		return Attachment{}, fmt.Errorf("file %s: %w", ref.FileID, err)
	}
	data, err := symcrypto.DecryptValue(fileSessionKey, raw)
	if err != nil {
		return Attachment{}, fmt.Errorf("file %s: decrypt data: %w", ref.FileID, err)
	}

	if declared, err := parseSize(file.Size); err == nil && declared != len(data) {
		logger.Warn("attachment size mismatch", "file", ref.FileID, "declared", declared, "actual", len(data))
	}

	return Attachment{
		Cid:      cid,
		MimeType: string(mimeType),
		Name:     string(name),
		Data:     data,
	}, nil
}

func parseSize(s string) (int, error) {
	var n int
	_, err := fmt.Sscanf(s, "%d", &n)
	return n, err
}

package mail

import (
	"context"
	"fmt"

	"github.com/tutaexport/tuta-export/internal/session"
	"github.com/tutaexport/tuta-export/internal/symcrypto"
	"github.com/tutaexport/tuta-export/internal/transport"
	"github.com/tutaexport/tuta-export/internal/wire"
)

// Item is one decoded mail listing entry, or the error that stopped decoding.
type Item struct {
	Value Mail
	Err   error
}

// List streams every mail in the collection identified by mailsListID
// (a Folder's Mails field).
func List(ctx context.Context, client *transport.Client, host string, s *session.Session, mailsListID string) <-chan Item {
	req := transport.NewRequest(host, transport.PrefixTutanota, "mail/"+mailsListID).
		WithAccessToken(s.AccessToken.String())

	raw := transport.Stream[wire.MailResponse](ctx, client, req, func(m wire.MailResponse) string {
		return m.ID.ElementID()
	})

	out := make(chan Item)
	go func() {
		defer close(out)
		for item := range raw {
			if item.Err != nil {
				select {
				case out <- Item{Err: item.Err}:
				case <-ctx.Done():
				}
				return
			}
			m, err := decode(s.GroupKeys, item.Value)
			select {
			case out <- Item{Value: m, Err: err}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func decode(groupKeys *session.GroupKeys, resp wire.MailResponse) (Mail, error) {
	encKey, ok := resp.OwnerEncSessionKey.Get()
	if !ok {
		return Mail{}, fmt.Errorf("mail: owner enc session key required")
	}
	ownerGroupKey, err := groupKeys.Get(resp.OwnerGroup)
	if err != nil {
		return Mail{}, fmt.Errorf("mail: %w", err)
	}
	sessionKey, err := symcrypto.DecryptKey(ownerGroupKey, encKey)
	if err != nil {
		return Mail{}, fmt.Errorf("mail: unwrap session key: %w", err)
	}

	subject, err := symcrypto.DecryptValue(sessionKey, resp.Subject)
	if err != nil {
		return Mail{}, fmt.Errorf("mail: decrypt subject: %w", err)
	}
	senderName, err := symcrypto.DecryptValue(sessionKey, resp.Sender.Name)
	if err != nil {
		return Mail{}, fmt.Errorf("mail: decrypt sender name: %w", err)
	}

	var (
		isDraft   bool
		detailRef wire.ID
	)
	switch {
	case resp.MailDetails != nil && resp.MailDetailsDraft == nil:
		detailRef = *resp.MailDetails
	case resp.MailDetailsDraft != nil && resp.MailDetails == nil:
		isDraft = true
		detailRef = *resp.MailDetailsDraft
	default:
		return Mail{}, fmt.Errorf("mail: %w", ErrAmbiguousDetails)
	}

	refs := make([]AttachmentRef, 0, len(resp.Attachments))
	var commonGroup string
	for _, a := range resp.Attachments {
		if commonGroup == "" {
			commonGroup = a.ListID()
		} else if a.ListID() != commonGroup {
			return Mail{}, fmt.Errorf("mail: %w", ErrMixedAttachmentGroups)
		}
		refs = append(refs, AttachmentRef{GroupID: a.ListID(), FileID: a.ElementID()})
	}

	return Mail{
		FolderID:     resp.ID.ListID(),
		MailID:       resp.ID.ElementID(),
		ArchiveID:    detailRef.ListID(),
		BlobID:       detailRef.ElementID(),
		IsDraft:      isDraft,
		SessionKey:   sessionKey,
		ReceivedDate: resp.ReceivedDate.Time(),
		Subject:      string(subject),
		Sender: Address{
			Address: resp.Sender.Address,
			Name:    string(senderName),
		},
		AttachmentRefs: refs,
	}, nil
}

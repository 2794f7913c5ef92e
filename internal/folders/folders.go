package folders

import (
	"context"
	"fmt"

	"github.com/tutaexport/tuta-export/internal/session"
	"github.com/tutaexport/tuta-export/internal/symcrypto"
	"github.com/tutaexport/tuta-export/internal/transport"
	"github.com/tutaexport/tuta-export/internal/wire"
)

// Folder is one mail folder, decrypted and ready to select by name.
type Folder struct {
	ID    string
	Name  string
	Mails string
}

// List streams every mail folder belonging to s's mail group.
func List(ctx context.Context, client *transport.Client, host string, s *session.Session) (<-chan Item, error) {
	mailGroup, err := session.MailGroup(s.UserData)
	if err != nil {
		return nil, fmt.Errorf("folders: %w", err)
	}

	var groupRoot wire.MailboxGroupRootResponse
	groupRootReq := transport.NewRequest(host, transport.PrefixTutanota, "mailboxgrouproot/"+mailGroup.Group).
		WithAccessToken(s.AccessToken.String())
	if err := client.Do(ctx, groupRootReq, &groupRoot); err != nil {
		return nil, fmt.Errorf("folders: mailbox group root: %w", err)
	}

	var mailbox wire.MailboxResponse
	mailboxReq := transport.NewRequest(host, transport.PrefixTutanota, "mailbox/"+groupRoot.Mailbox).
		WithAccessToken(s.AccessToken.String())
	if err := client.Do(ctx, mailboxReq, &mailbox); err != nil {
		return nil, fmt.Errorf("folders: mailbox: %w", err)
	}

	listReq := transport.NewRequest(host, transport.PrefixTutanota, "mailfolder/"+mailbox.Folders.Folders).
		WithAccessToken(s.AccessToken.String())

	raw := transport.Stream[wire.FolderResponse](ctx, client, listReq, func(f wire.FolderResponse) string {
		return f.ID.ElementID()
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
			folder, err := decode(s.GroupKeys, item.Value)
			select {
			case out <- Item{Value: folder, Err: err}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// Item is one decoded folder, or the error that stopped decoding.
type Item struct {
	Value Folder
	Err   error
}

func decode(groupKeys *session.GroupKeys, resp wire.FolderResponse) (Folder, error) {
	encKey, ok := resp.OwnerEncSessionKey.Get()
	if !ok {
		return Folder{}, fmt.Errorf("folders: owner enc session key required")
	}
	ownerGroupKey, err := groupKeys.Get(resp.OwnerGroup)
	if err != nil {
		return Folder{}, fmt.Errorf("folders: %w", err)
	}
	sessionKey, err := symcrypto.DecryptKey(ownerGroupKey, encKey)
	if err != nil {
		return Folder{}, fmt.Errorf("folders: unwrap session key: %w", err)
	}

	name := resp.FolderType.Label()
	if resp.FolderType == wire.FolderCustom {
		plain, err := symcrypto.DecryptValue(sessionKey, resp.Name)
		if err != nil {
			return Folder{}, fmt.Errorf("folders: decrypt name: %w", err)
		}
		name = string(plain)
	}

	return Folder{
		ID:    resp.ID.ElementID(),
		Name:  name,
		Mails: resp.Mails,
	}, nil
}

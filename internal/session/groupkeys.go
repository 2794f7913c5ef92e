package session

import (
	"fmt"

	"github.com/tutaexport/tuta-export/internal/cryptokeys"
	"github.com/tutaexport/tuta-export/internal/symcrypto"
	"github.com/tutaexport/tuta-export/internal/wire"
)

// GroupKeys is the table of unwrapped group keys built once at login.
// It is never mutated afterwards, so it can be shared by reference
// across every concurrent download task without locking.
type GroupKeys struct {
	keys map[string]cryptokeys.Key
}

// NewGroupKeys builds a GroupKeys table directly from already-unwrapped
// keys, for callers that assemble or mock a session without going
// through Login.
func NewGroupKeys(keys map[string]cryptokeys.Key) *GroupKeys {
	return &GroupKeys{keys: keys}
}

// Get returns the unwrapped key for group, or ErrGroupKeyNotFound.
func (g *GroupKeys) Get(group string) (cryptokeys.Key, error) {
	key, ok := g.keys[group]
	if !ok {
		return cryptokeys.Key{}, fmt.Errorf("group %s: %w", group, ErrGroupKeyNotFound)
	}
	return key, nil
}

// buildGroupKeys unwraps the user group key under the passphrase key,
// then unwraps every membership's group key under the user group key.
// Memberships with no wrapped key are silently skipped: it is unknown
// whether that ever leaves an entity's owning group without a key, and
// the original client makes the same choice.
func buildGroupKeys(passphraseKey cryptokeys.Key, user wire.UserResponse) (*GroupKeys, error) {
	userEncKey, ok := user.UserGroup.SymEncGKey.Get()
	if !ok {
		return nil, ErrMissingUserGroupKey
	}
	userGroupKey, err := symcrypto.DecryptKey(passphraseKey, userEncKey)
	if err != nil {
		return nil, fmt.Errorf("unwrap user group key: %w", err)
	}

	keys := map[string]cryptokeys.Key{
		user.UserGroup.Group: userGroupKey,
	}

	for _, membership := range user.Memberships {
		encKey, ok := membership.SymEncGKey.Get()
		if !ok {
			continue
		}
		key, err := symcrypto.DecryptKey(userGroupKey, encKey)
		if err != nil {
			return nil, fmt.Errorf("unwrap membership %s group key: %w", membership.Group, err)
		}
		keys[membership.Group] = key
	}

	return &GroupKeys{keys: keys}, nil
}

// MailGroup returns the single membership of type Mail, failing if
// there are zero or more than one.
func MailGroup(user wire.UserResponse) (wire.UserMembership, error) {
	var found *wire.UserMembership
	for i := range user.Memberships {
		if user.Memberships[i].GroupType != wire.GroupMail {
			continue
		}
		if found != nil {
			return wire.UserMembership{}, ErrDuplicateMailGroup
		}
		m := user.Memberships[i]
		found = &m
	}
	if found == nil {
		return wire.UserMembership{}, ErrNoMailGroup
	}
	return *found, nil
}

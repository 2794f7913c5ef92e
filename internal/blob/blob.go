package blob

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/tutaexport/tuta-export/internal/session"
	"github.com/tutaexport/tuta-export/internal/transport"
	"github.com/tutaexport/tuta-export/internal/wire"
)

// readRef identifies what a blob access token should authorize: an
// entire archive, or (when instanceListID is non-empty) one instance
// within it.
type readRef struct {
	archiveID      string
	instanceListID string
	instanceIDs    []string
}

func acquireToken(ctx context.Context, client *transport.Client, host string, s *session.Session, dataType wire.ArchiveDataType, ref readRef) (token string, serverURL string, err error) {
	var resp wire.BlobAccessTokenServiceResponse
	req := transport.NewRequest(host, transport.PrefixStorage, "blobaccesstokenservice").
		WithMethod("POST").
		WithAccessToken(s.AccessToken.String()).
		WithBody(wire.BlobAccessTokenServiceRequest{
			ArchiveDataType: dataType,
			Read: wire.BlobReadRequest{
				ArchiveID:      ref.archiveID,
				InstanceIDs:    ref.instanceIDs,
				InstanceListID: ref.instanceListID,
			},
		})
	if err := client.Do(ctx, req, &resp); err != nil {
		return "", "", fmt.Errorf("blob access token: %w", err)
	}

	servers := resp.BlobAccessInfo.Servers
	if len(servers) == 0 {
		return "", "", ErrNoBlobServers
	}
	return resp.BlobAccessInfo.BlobAccessToken, servers[0].URL, nil
}

// GetMailDetailsBlob fetches and decodes the JSON mail-details blob for
// one archive/blob id pair.
func GetMailDetailsBlob(ctx context.Context, client *transport.Client, host string, s *session.Session, archiveID, blobID string) (wire.MailDetailsBlob, error) {
	token, serverURL, err := acquireToken(ctx, client, host, s, wire.ArchiveMailDetails, readRef{archiveID: archiveID})
	if err != nil {
		return wire.MailDetailsBlob{}, fmt.Errorf("mail details blob: %w", err)
	}

	req := transport.NewRequest(serverURL, transport.PrefixTutanota, "maildetailsblob/"+archiveID).
		WithAccessToken(s.AccessToken.String()).
		WithQuery("ids", blobID).
		WithQuery("blobAccessToken", token)

	var results []wire.MailDetailsBlob
	if err := client.Do(ctx, req, &results); err != nil {
		return wire.MailDetailsBlob{}, fmt.Errorf("mail details blob: %w", err)
	}
	if len(results) != 1 {
		return wire.MailDetailsBlob{}, fmt.Errorf("mail details blob: expected exactly 1 result, got %d", len(results))
	}
	return results[0], nil
}

// GetAttachmentBlob fetches the raw bytes of one attachment's blob,
// authorizing the token against the exact file instance.
func GetAttachmentBlob(ctx context.Context, client *transport.Client, host string, s *session.Session, archiveID, blobID, instanceListID, instanceID string) ([]byte, error) {
	token, serverURL, err := acquireToken(ctx, client, host, s, wire.ArchiveAttachments, readRef{
		archiveID:      archiveID,
		instanceListID: instanceListID,
		instanceIDs:    []string{instanceID},
	})
	if err != nil {
		return nil, fmt.Errorf("attachment blob: %w", err)
	}

	return fetchRawBlob(ctx, client, serverURL, s.AccessToken.String(), blobID, token)
}

// fetchRawBlob issues the raw (non-JSON) blobservice GET directly through
// the plain http.Client the transport package wraps, since the response
// here is opaque bytes rather than a JSON document.
func fetchRawBlob(ctx context.Context, client *transport.Client, serverURL, accessToken, blobID, blobAccessToken string) ([]byte, error) {
	httpClient := client.HTTPClient()
	q := url.Values{}
	q.Set("accessToken", accessToken)
	q.Set("ids", blobID)
	q.Set("blobAccessToken", blobAccessToken)
	target := fmt.Sprintf("%s/rest/tutanota/blobservice?%s", serverURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build blob request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch blob: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch blob: http status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read blob body: %w", err)
	}
	return data, nil
}

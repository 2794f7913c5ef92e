package blob

import "errors"

// ErrNoBlobServers is returned when a blobaccesstokenservice response
// names no candidate server to read the blob from.
var ErrNoBlobServers = errors.New("no blob servers provided")

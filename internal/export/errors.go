package export

import "errors"

// ErrFolderNotFound is returned when no folder matches the requested name.
var ErrFolderNotFound = errors.New("folder not found")

package config

import "errors"

// ErrMissingCredentials is returned when no username or password is
// resolvable from flags or environment.
var ErrMissingCredentials = errors.New("username and password are required")

// ErrMissingFolder is returned when the download command has no folder name.
var ErrMissingFolder = errors.New("--folder is required")

// ErrMissingPath is returned when the download command has no target path.
var ErrMissingPath = errors.New("--path is required")

// Package transport is the HTTP layer shared by every service call: a
// typed request/response helper with jittered exponential-backoff retry,
// and a paginated stream built on top of it. It generalizes the teacher's
// api.Client retry wrapper to the three REST path prefixes (sys, tutanota,
// storage) and the server's cursor-based listing protocol.
package transport

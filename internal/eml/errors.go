package eml

import "errors"

// ErrContentTypeNotFound is returned when server-delivered headers carry
// no Content-Type line to strip: that should never happen for a real
// mail, and silently emitting two conflicting Content-Type headers would
// produce a document no mail client can parse.
var ErrContentTypeNotFound = errors.New("content type header not found")

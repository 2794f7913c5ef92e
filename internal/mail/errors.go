package mail

import "errors"

var (
	// ErrAmbiguousDetails is returned when a mail record has both (or
	// neither) of mailDetails / mailDetailsDraft set.
	ErrAmbiguousDetails = errors.New("mail has both or neither detail variants")

	// ErrMixedAttachmentGroups is returned when a mail's attachment
	// references do not all share the same owning group id.
	ErrMixedAttachmentGroups = errors.New("attachment group ids disagree")
)

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrForbidden is returned when the account's role does not permit the
	// requested operation.
	ErrForbidden = errors.New("operation is not permitted for this role")

	// ErrTokenIsExpiredOrInvalid is returned for any bearer token that fails
	// validation, regardless of the underlying JWT error.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrMaxAPIKeysReached is returned when API key creation would exceed the
	// configured per-resource limit. No key is created and no sync is sent.
	ErrMaxAPIKeysReached = errors.New("maximum number of api keys reached")

	// ErrNotChatApp is returned when a conversation operation targets an app
	// whose mode has no conversations (workflow, completion).
	ErrNotChatApp = errors.New("app mode does not support conversations")

	ErrValidationNameRequired    = errors.New("name is required")
	ErrValidationInvalidMode     = errors.New("invalid app mode")
	ErrValidationInvalidStatus   = errors.New("invalid status value")
	ErrValidationInvalidHidden   = errors.New("invalid is_hidden value")
	ErrValidationInvalidSortBy   = errors.New("invalid sort_by value")
	ErrValidationInvalidTagType  = errors.New("invalid tag type")
	ErrValidationNoTagIDs        = errors.New("no tag ids provided")
	ErrValidationNoConversations = errors.New("no conversation ids provided")
)

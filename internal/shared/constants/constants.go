package constants

// Context keys set by authentication middleware.
const (
	ContextKeyUserID      = "user_id"
	ContextKeyUserRole    = "user_role"
	ContextKeyToken       = "token"
	ContextKeyTokenExpiry = "token_expiry"
)

// Pagination defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Ticket field limits.
const (
	MaxSubjectLength     = 200
	MaxDescriptionLength = 5000
	MaxCommentLength     = 10000
)

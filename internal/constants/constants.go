package constants

import "time"

// Context keys shared between middleware and handlers
const (
	ContextKeyUserID   = "user_id"
	ContextKeyContract = "contract"
)

// TokenTTL is the validity window of issued bearer tokens.
const TokenTTL = 7 * 24 * time.Hour

// SearchResultLimit caps the number of rows returned by full-text search.
const SearchResultLimit = 20

// DefaultContractStatus is applied when a contract is created without an explicit status.
const DefaultContractStatus = "draft"

package dto

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse acknowledges a mutation with a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// MeResponse identifies the authenticated caller.
type MeResponse struct {
	UserID uint64 `json:"userId"`
}

// UploadResponse carries the URL of a stored contract file.
type UploadResponse struct {
	URL string `json:"url"`
}

package domain

// Verification binds a one-time numeric code to an identifier (an email or
// phone-style string). One live record per identifier; a re-issue overwrites.
// ExpiresAt is a Unix timestamp used as DynamoDB TTL, so stale entries that
// are never verified or re-requested are evicted by the store.
type Verification struct {
	Identifier string `json:"identifier" dynamodbav:"identifier"`
	Code       string `json:"code" dynamodbav:"code"` // 6 digits
	ExpiresAt  int64  `json:"expires_at" dynamodbav:"expires_at"`
}

package constants

// Redis key formats
const (
	// Accounts
	KeyUserSession = "user:session:%s" // Format: user:session:{user_id}

	// Rate limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)

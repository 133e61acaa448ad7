package utils

// MaskToken masks an opaque bearer token for safe logging.
// Example: "whk_a1b2c3d4e5f6..." -> "whk_a1b2***"
func MaskToken(token string) string {
	if len(token) <= 8 {
		return "***"
	}
	return token[:8] + "***"
}

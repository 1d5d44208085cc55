package utils

import "strings"

// MaskClientID masks an OAuth client id for display, keeping the first 8 and
// last 4 characters. Short values degrade to whatever those slices cover; an
// empty value masks to an empty string. The middle characters never appear.
func MaskClientID(clientID string) string {
	if clientID == "" {
		return ""
	}
	head := clientID
	if len(head) > 8 {
		head = head[:8]
	}
	tail := clientID
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return head + "..." + tail
}

// MaskEmail masks an email address for safe logging.
// Example: "user@example.com" -> "u***@example.com"
func MaskEmail(email string) string {
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 {
		return "***"
	}
	local := parts[0]
	if len(local) <= 1 {
		return local + "***@" + parts[1]
	}
	return string(local[0]) + "***@" + parts[1]
}

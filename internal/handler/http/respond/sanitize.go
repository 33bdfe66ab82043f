package respond

import (
	"regexp"
)

var (
	// Bearer tokens and mail provider API keys.
	bearerTokenPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9._~+/-]+=*`)
	mailKeyPattern     = regexp.MustCompile(`key-[a-zA-Z0-9]{10,}`)

	// Passwords embedded in connection strings.
	dsnPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)
)

// SanitizeError returns the error message with credentials masked so it
// can be written to logs.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = bearerTokenPattern.ReplaceAllString(msg, "Bearer ****")
	msg = mailKeyPattern.ReplaceAllString(msg, "key-****")
	msg = dsnPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	return msg
}

// redact маскирует чувствительные значения перед записью в логи.
package redact

import "strings"

func Email(s string) string {
	parts := strings.Split(s, "@")
	if len(parts) != 2 {
		return "***"
	}

	local, domain := parts[0], parts[1]
	if r := []rune(local); len(r) > 2 {
		local = string(r[:2]) + "***"
	} else {
		local = "***"
	}

	return local + "@" + domain
}

// Authorization оставляет только схему заголовка: "Bearer [REDACTED_TOKEN]".
func Authorization(v string) string {
	if v == "" {
		return ""
	}

	if scheme, _, ok := strings.Cut(v, " "); ok && scheme != "" {
		return scheme + " " + Token()
	}

	return Token()
}

func Token() string { return "[REDACTED_TOKEN]" }

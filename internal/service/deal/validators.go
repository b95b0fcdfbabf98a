package deal

import "strings"

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

// normalizeCode uppercases the user-entered delivery code the same way
// the sender-side display renders it, so case never causes a mismatch.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

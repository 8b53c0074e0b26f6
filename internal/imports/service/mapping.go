// Package service implements CSV lead import: header mapping, job
// tracking and background processing.
package service

import "strings"

// Lead fields a CSV column can map to.
const (
	FieldCompanyName  = "company_name"
	FieldContactName  = "contact_name"
	FieldContactTitle = "contact_title"
	FieldPhone        = "phone"
	FieldEmail        = "email"
	FieldWebsite      = "website"
	FieldCity         = "city"
	FieldState        = "state"
)

// AutoMap guesses which lead field each CSV header holds. Headers are
// normalized to lowercase alphanumerics before matching; the first column
// matching a field wins. The result maps field name to column index.
func AutoMap(headers []string) map[string]int {
	mapping := map[string]int{}
	for i, header := range headers {
		field := guessField(normalizeHeader(header))
		if field == "" {
			continue
		}
		if _, taken := mapping[field]; taken {
			continue
		}
		mapping[field] = i
	}
	return mapping
}

func guessField(header string) string {
	switch {
	case contains(header, "company", "business"):
		return FieldCompanyName
	case contains(header, "title"):
		return FieldContactTitle
	case contains(header, "contact", "name", "owner"):
		return FieldContactName
	case contains(header, "phone", "tel"):
		return FieldPhone
	case contains(header, "email"):
		return FieldEmail
	case contains(header, "website", "url", "domain"):
		return FieldWebsite
	case contains(header, "city"):
		return FieldCity
	case contains(header, "state", "region"):
		return FieldState
	default:
		return ""
	}
}

func normalizeHeader(header string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(header)) {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func contains(header string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(header, kw) {
			return true
		}
	}
	return false
}

package utils

import (
	"regexp"
	"strings"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// NormalizePlaces lowercases and trims a list of place names, dropping
// empties. Location matching is exact set intersection, so normalization
// must be identical at write and query time.
func NormalizePlaces(places []string) []string {
	normalized := make([]string, 0, len(places))
	for _, p := range places {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			normalized = append(normalized, p)
		}
	}
	return normalized
}

// SplitFilterList splits a comma separated filter parameter into normalized
// place names. Returns nil for a blank parameter, meaning "no filter".
func SplitFilterList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return NormalizePlaces(strings.Split(raw, ","))
}

// IsValidPhoneNumber checks if a string is a plausible phone number
func IsValidPhoneNumber(phone string) bool {
	return phoneRegex.MatchString(phone)
}

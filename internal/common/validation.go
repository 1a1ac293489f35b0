package common

import (
	"strings"
	"unicode/utf8"
)

// Instagram rejects comment replies above this length
const MaxReplyLength = 2200

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

func ValidateReplyText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrInvalidReply
	}
	if utf8.RuneCountInString(text) > MaxReplyLength {
		return "", ErrInvalidReply
	}
	return text, nil
}

// NormalizePage clamps limit/offset for inbox listings.
func NormalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

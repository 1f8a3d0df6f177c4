package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/spf13/cast"

	"bobamenu/internal/domain"
)

var (
	reQ        = regexp.MustCompile(`^[\p{L}\p{N} _'＋+\-/]{1,50}$`)
	reAssetKey = regexp.MustCompile(`^[\p{L}\p{N}_.\-]{1,64}$`)
)

const (
	maxNameRunes = 40
	maxPrice     = 10000
)

// ID validates a catalog identifier (brand or drink uuid).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if _, err := uuid.Parse(s); err != nil {
		return "", false
	}
	return s, true
}

// Name validates a brand or drink name: trimmed, non-empty, bounded length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > maxNameRunes {
		return "", false
	}
	return s, true
}

// Q validates a search query: trims, truncates, enforces allowed characters.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if utf8.RuneCountInString(s) > 50 {
		s = string([]rune(s)[:50])
	}
	return s, reQ.MatchString(s)
}

// Price parses an optional price field. Blank means "not offered" and yields
// (nil, true); anything else must be a positive integer.
func Price(s string) (*int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	n, err := cast.ToIntE(s)
	if err != nil || n <= 0 || n > maxPrice {
		return nil, false
	}
	return &n, true
}

// MaxPrice parses an optional budget filter; blank or invalid disables it.
func MaxPrice(s string) int {
	n, err := cast.ToIntE(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Category accepts the category key or its display label.
func Category(s string) (domain.Category, bool) {
	return domain.ParseCategory(s)
}

// AssetKey validates an optional named image reference. Blank yields nil.
func AssetKey(s string) (*string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	if !reAssetKey.MatchString(s) {
		return nil, false
	}
	return &s, true
}

// Flag reads an HTML checkbox or boolean query value.
func Flag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on":
		return true
	}
	b, _ := cast.ToBoolE(strings.TrimSpace(s))
	return b
}

package rules

import (
	"cmp"
	"context"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-formstate/validation"
)

// Required rejects strings that are empty after trimming whitespace.
func Required(msg string) validation.Validator[string] {
	return validation.Func(func(v string) string {
		if strings.TrimSpace(v) == "" {
			return msg
		}
		return ""
	})
}

// NotZero rejects the zero value of T.
func NotZero[T comparable](msg string) validation.Validator[T] {
	return validation.Func(func(v T) string {
		var zero T
		if v == zero {
			return msg
		}
		return ""
	})
}

// MinLen rejects strings shorter than n characters.
func MinLen(n int, msg string) validation.Validator[string] {
	return validation.Func(func(v string) string {
		if utf8.RuneCountInString(v) < n {
			return msg
		}
		return ""
	})
}

// MaxLen rejects strings longer than n characters.
func MaxLen(n int, msg string) validation.Validator[string] {
	return validation.Func(func(v string) string {
		if utf8.RuneCountInString(v) > n {
			return msg
		}
		return ""
	})
}

// Match rejects strings that do not match re.
func Match(re *regexp.Regexp, msg string) validation.Validator[string] {
	return validation.Func(func(v string) string {
		if !re.MatchString(v) {
			return msg
		}
		return ""
	})
}

// OneOf rejects values not present in allowed.
func OneOf[T comparable](allowed []T, msg string) validation.Validator[T] {
	allowed = slices.Clone(allowed)
	return validation.Func(func(v T) string {
		if !slices.Contains(allowed, v) {
			return msg
		}
		return ""
	})
}

// Between rejects values outside the inclusive range [lo, hi].
func Between[T cmp.Ordered](lo, hi T, msg string) validation.Validator[T] {
	return validation.Func(func(v T) string {
		if v < lo || v > hi {
			return msg
		}
		return ""
	})
}

// EqualTo rejects values different from the one returned by other at
// validation time. It is meant for confirmation inputs, with other reading
// the field being confirmed.
func EqualTo[T comparable](other func() T, msg string) validation.Validator[T] {
	return validation.Func(func(v T) string {
		if v != other() {
			return msg
		}
		return ""
	})
}

// Optional runs rule only for non-empty strings.
func Optional(rule validation.Validator[string]) validation.Validator[string] {
	return func(ctx context.Context, v string) validation.Result {
		if v == "" {
			return validation.Valid()
		}
		return rule(ctx, v)
	}
}

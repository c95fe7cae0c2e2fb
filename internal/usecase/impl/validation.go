package impl

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	domainerrors "food/internal/domain/errors"
)

// Field limits shared by the services.
const (
	minPasswordLength    = 6
	maxPersonNameLength  = 100
	maxRestaurantName    = 200
	maxDescriptionLength = 1000
	maxAddressLength     = 500
	maxCategoryLength    = 100
	maxCommentLength     = 1000
	maxTitleLength       = 200
	maxMessageLength     = 1000
	maxPhotoDescription  = 300
	secondsSuffix        = ":00"
)

var (
	emailPattern     = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
	phonePattern     = regexp.MustCompile(`^[+]?[0-9]{10,15}$`)
	timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9](:[0-5][0-9])?$`)
)

func invalid(format string, args ...any) error {
	return domainerrors.NewValidationError(fmt.Sprintf(format, args...))
}

func tooLong(value string, limit int) bool {
	return utf8.RuneCountInString(value) > limit
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func validPhone(phone string) bool {
	return phone == "" || phonePattern.MatchString(phone)
}

// normalizeTimeOfDay accepts "HH:MM" or "HH:MM:SS" and returns "HH:MM:SS".
func normalizeTimeOfDay(value string) (string, bool) {
	if value == "" {
		return "", true
	}
	if !timeOfDayPattern.MatchString(value) {
		return "", false
	}
	if len(value) == len("15:04") {
		return value + secondsSuffix, true
	}

	return value, true
}

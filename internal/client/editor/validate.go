package editor

import (
	"regexp"
	"unicode/utf8"

	"github.com/dmitrijs2005/userdir/internal/client/models"
)

// Form field keys, also used as keys of the field-error map.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldAvatarURL = "avatarUrl"
)

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	avatarRe = regexp.MustCompile(`^https?://.+\..+`)
)

// Validate checks the editable fields and returns a field→message map.
// A field without an error is simply absent from the map; an empty map
// means the form may be submitted. Deterministic and side-effect free.
func Validate(f models.RecordFields) map[string]string {
	errs := make(map[string]string)

	// length rules are about characters, not bytes
	if utf8.RuneCountInString(f.FirstName) < 3 {
		errs[FieldFirstName] = "first name must be at least 3 characters"
	}
	if utf8.RuneCountInString(f.LastName) < 3 {
		errs[FieldLastName] = "last name must be at least 3 characters"
	}
	if !emailRe.MatchString(f.Email) {
		errs[FieldEmail] = "enter a valid email address"
	}
	if f.AvatarURL == "" {
		errs[FieldAvatarURL] = "avatar URL is required"
	} else if !avatarRe.MatchString(f.AvatarURL) {
		errs[FieldAvatarURL] = "enter a valid URL"
	}

	return errs
}

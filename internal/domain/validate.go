package domain

import (
	"strings"
	"unicode/utf8"
)

// Client-facing validation messages.
const (
	MsgInvalidImageURL   = "Invalid image URL"
	MsgTooManyTags       = "There shouldn't be more than 5 tags for one photo"
	MsgEmptyTag          = "Tags must be non-empty strings."
	MsgTagTooLong        = "Tags shouldn't exceed 20 characters in length."
	MsgTagLimitExceeded  = "Each photo can have a maximum of 5 tags"
	MsgInvalidSort       = "Invalid sort query"
	MsgInvalidTagQuery   = "Invalid tag query"
	MsgUsernameRequired  = "username is required"
	MsgEmailRequired     = "email is required"
	MsgEmailFormat       = "email format is incorrect"
	MsgEmailAlreadyTaken = "User with the email already exists"
	MsgQueryRequired     = "Search term is required as query param"
	MsgInvalidUserID     = "Invalid userId"
)

// ValidateImageURL reports whether url points at the trusted image host.
// Only the prefix is checked; the URL is not normalized.
func ValidateImageURL(url, trustedPrefix string) bool {
	return trustedPrefix != "" && strings.HasPrefix(url, trustedPrefix)
}

// ValidateSingleTag reports whether tag is non-empty and at most MaxTagLength characters.
func ValidateSingleTag(tag string) bool {
	return tag != "" && utf8.RuneCountInString(tag) <= MaxTagLength
}

// ValidateImageTags checks a tag list submitted in one request. It reports the
// count overflow, plus at most one error for empty tags and at most one for
// over-long tags, regardless of how many tags are at fault.
func ValidateImageTags(tags []string) []FieldError {
	var errs []FieldError
	if len(tags) > MaxTagsPerPhoto {
		errs = append(errs, FieldError{Field: "tags", Message: MsgTooManyTags})
	}

	for _, tag := range tags {
		if tag == "" {
			errs = append(errs, FieldError{Field: "tags", Message: MsgEmptyTag})
			break
		}
	}
	for _, tag := range tags {
		if utf8.RuneCountInString(tag) > MaxTagLength {
			errs = append(errs, FieldError{Field: "tags", Message: MsgTagTooLong})
			break
		}
	}

	return errs
}

// ValidateSortQuery reports whether s is exactly "ASC" or "DESC".
func ValidateSortQuery(s string) bool {
	return SortOrder(s).IsValid()
}

// ValidateNewUserDetails checks username and email independently.
func ValidateNewUserDetails(username, email string) []FieldError {
	var errs []FieldError
	if username == "" {
		errs = append(errs, FieldError{Field: "username", Message: MsgUsernameRequired})
	}
	if email == "" {
		errs = append(errs, FieldError{Field: "email", Message: MsgEmailRequired})
	} else if !strings.Contains(email, ".") || !strings.Contains(email, "@") {
		errs = append(errs, FieldError{Field: "email", Message: MsgEmailFormat})
	}
	return errs
}

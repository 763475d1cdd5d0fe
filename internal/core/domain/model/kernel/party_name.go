package kernel

import (
	"regexp"
	"unicode/utf8"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// MaxNameLength is the longest accepted customer or shipper display name.
const MaxNameLength = 30

// ErrPartyNameIsNotConstructed is returned when a zero-value PartyName is used.
var ErrPartyNameIsNotConstructed = errs.NewValueIsRequiredError(
	"party name must be created via NewPartyName or NewStrictPartyName constructors")

var (
	digitPattern      = regexp.MustCompile(`\d`)
	strictNamePattern = regexp.MustCompile(`^[A-Za-z]+( [A-Za-z]+)*$`)
)

// IsValidName reports whether name satisfies the lenient naming rule applied
// at the resolution boundary: non-empty, at most MaxNameLength characters and
// free of digits.
func IsValidName(name string) bool {
	return name != "" &&
		utf8.RuneCountInString(name) <= MaxNameLength &&
		!digitPattern.MatchString(name)
}

// IsStrictName reports whether name satisfies the strict naming rule applied
// at interactive entry points: the lenient rule plus letters only, with
// single interior spaces between words.
func IsStrictName(name string) bool {
	return IsValidName(name) && strictNamePattern.MatchString(name)
}

// PartyName is the validated display name of a customer or shipper.
// Two named policies exist: NewPartyName applies the lenient rule and
// NewStrictPartyName the strict one.
type PartyName struct {
	value string
	guard guard.ConstructorGuard
}

// NewPartyName creates a PartyName under the lenient policy.
func NewPartyName(name string) (PartyName, error) {
	if !IsValidName(name) {
		return PartyName{}, errs.NewValueIsInvalidError("name must be non-empty, at most 30 characters and contain no digits")
	}

	return PartyName{
		value: name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewStrictPartyName creates a PartyName under the strict policy.
func NewStrictPartyName(name string) (PartyName, error) {
	if !IsStrictName(name) {
		return PartyName{}, errs.NewValueIsInvalidError("name must contain only letters separated by single spaces")
	}

	return PartyName{
		value: name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the PartyName was created via one of its constructors.
func (n PartyName) Validate() error {
	return n.guard.Validate(ErrPartyNameIsNotConstructed)
}

// IsEqual compares two party names by exact value.
func (n PartyName) IsEqual(other PartyName) bool {
	return n.value == other.value
}

func (n PartyName) String() string {
	return n.value
}

package domain

import (
	"strings"

	"github.com/allisson/mynumber/internal/errors"
)

// separatorStripper removes the separators accepted between digit groups.
var separatorStripper = strings.NewReplacer(" ", "", "-", "", "_", "")

// Number is an immutable, always-valid My Number. The zero value is the uninitialized
// Number: it equals only other zero values and formats as the empty string.
// Number is comparable, so == and map keys follow digit equality.
type Number struct {
	digits [NumberLength]int
	set    bool
}

// NewNumber creates a Number from 12 digits. The digits are copied. Returns
// ErrMalformedInput for a wrong length or out-of-range digit and ErrInvalidCheckDigit
// (which wraps ErrMalformedInput) when the last digit is not the check digit.
func NewNumber(digits []int) (Number, error) {
	ok, err := VerifyNumber(digits)
	if err != nil {
		return Number{}, err
	}
	if !ok {
		return Number{}, errors.Wrapf(ErrInvalidCheckDigit, "expected %d, got %d",
			checkDigit(digits[:BaseLength]), digits[BaseLength])
	}

	n := Number{set: true}
	copy(n.digits[:], digits)
	return n, nil
}

// FromFirstElevenDigits creates a Number by appending the check digit to 11 data digits.
func FromFirstElevenDigits(digits []int) (Number, error) {
	cd, err := CalculateCheckDigit(digits)
	if err != nil {
		return Number{}, err
	}

	n := Number{set: true}
	copy(n.digits[:], digits)
	n.digits[BaseLength] = cd
	return n, nil
}

// Parse parses text into a Number. Spaces, hyphens and underscores are ignored; the rest
// must be exactly 12 decimal digits with a correct check digit. Returns ErrInvalidFormat otherwise.
func Parse(text string) (Number, error) {
	stripped := separatorStripper.Replace(text)
	if len(stripped) != NumberLength {
		return Number{}, errors.Wrapf(ErrInvalidFormat, "must contain %d digits", NumberLength)
	}

	digits := make([]int, NumberLength)
	for i := 0; i < len(stripped); i++ {
		c := stripped[i]
		if c < '0' || c > '9' {
			return Number{}, errors.Wrap(ErrInvalidFormat, "must contain only numeric characters")
		}
		digits[i] = int(c - '0')
	}

	// Length and digit range already hold, so only the check digit can fail here.
	n, err := NewNumber(digits)
	if err != nil {
		return Number{}, errors.Wrap(ErrInvalidFormat, "check digit mismatch")
	}
	return n, nil
}

// TryParse is Parse reporting failure as false instead of an error.
func TryParse(text string) (Number, bool) {
	n, err := Parse(text)
	if err != nil {
		return Number{}, false
	}
	return n, true
}

// Digits returns a copy of the 12 digits, or nil for the zero value.
func (n Number) Digits() []int {
	if !n.set {
		return nil
	}
	digits := make([]int, NumberLength)
	copy(digits, n.digits[:])
	return digits
}

// CheckDigit returns the last digit, or -1 for the zero value.
func (n Number) CheckDigit() int {
	if !n.set {
		return -1
	}
	return n.digits[BaseLength]
}

// IsZero reports whether n is the uninitialized Number.
func (n Number) IsZero() bool {
	return !n.set
}

// Equal reports whether n and other hold the same digits.
func (n Number) Equal(other Number) bool {
	return n == other
}

// String returns the 12 digits without separators.
func (n Number) String() string {
	if !n.set {
		return ""
	}
	var b strings.Builder
	b.Grow(NumberLength)
	for _, d := range n.digits {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// MarshalText encodes n as its 12-digit string.
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText decodes any text accepted by Parse.
func (n *Number) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

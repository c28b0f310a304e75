package domain

import (
	"github.com/allisson/mynumber/internal/errors"
)

// Format renders n in the given mode. The empty mode renders like FormatPlain.
// Returns ErrUnsupportedFormat for an unknown mode.
func (n Number) Format(mode FormatMode) (string, error) {
	if err := mode.Validate(); err != nil {
		return "", errors.Wrapf(ErrUnsupportedFormat, "mode %q", mode)
	}

	s := n.String()
	if s == "" {
		return "", nil
	}

	switch mode {
	case FormatSpaced:
		return s[0:4] + " " + s[4:8] + " " + s[8:12], nil
	case FormatHyphenated:
		return s[0:4] + "-" + s[4:8] + "-" + s[8:12], nil
	case FormatGrouped:
		return s[0:4] + "-" + s[4:8] + "-" + s[8:11] + "-" + s[11:12], nil
	default:
		return s, nil
	}
}

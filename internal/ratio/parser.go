// Package ratio parses w:h aspect ratio expressions.
package ratio

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/phambaophuc/paddington/internal/models"
)

// Message is the diagnostic shown for every kind of malformed ratio.
const Message = "Cannot parse ratio. Ensure ratio is in format of w:h, e.g.: '16:9'"

// ErrInvalidRatio matches every *ParseError via errors.Is.
var ErrInvalidRatio = errors.New(Message)

// Any Unicode decimal digit matches, so a non-ASCII first pair fails to
// parse instead of being skipped.
var pattern = regexp.MustCompile(`(\p{Nd}+):(\p{Nd}+)`)

// Kind classifies why a ratio could not be parsed.
type Kind int

const (
	// NoMatch means no digits:digits substring was found.
	NoMatch Kind = iota + 1
	// InvalidNumber means a digit group could not be read as an integer.
	InvalidNumber
	// OutOfRange means a digit group exceeds 65535.
	OutOfRange
)

func (k Kind) String() string {
	switch k {
	case NoMatch:
		return "no match"
	case InvalidNumber:
		return "invalid number"
	case OutOfRange:
		return "out of range"
	default:
		return "unknown"
	}
}

// ParseError reports a malformed ratio. Its message is always Message.
type ParseError struct {
	Kind  Kind
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidRatio
}

// Parse extracts the first w:h pair found anywhere in s.
func Parse(s string) (models.Ratio, error) {
	groups := pattern.FindStringSubmatch(s)
	if groups == nil {
		return models.Ratio{}, &ParseError{Kind: NoMatch, Input: s}
	}

	width, err := parseComponent(s, groups[1])
	if err != nil {
		return models.Ratio{}, err
	}
	height, err := parseComponent(s, groups[2])
	if err != nil {
		return models.Ratio{}, err
	}

	return models.Ratio{Width: width, Height: height}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) models.Ratio {
	r, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("ratio: MustParse(%q): %v", s, err))
	}
	return r
}

func parseComponent(input, digits string) (uint16, error) {
	v, err := strconv.ParseUint(digits, 10, 16)
	if err == nil {
		return uint16(v), nil
	}

	kind := InvalidNumber
	if errors.Is(err, strconv.ErrRange) {
		kind = OutOfRange
	}
	return 0, &ParseError{Kind: kind, Input: input, Err: err}
}

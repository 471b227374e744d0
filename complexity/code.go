package complexity

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/padchain/keypad"
)

// Conventional chain lengths: two and twenty-five directional controllers.
const (
	ShortChain = 2
	LongChain  = 25
)

// ErrMalformedCode indicates text that does not match [0-9]+A.
var ErrMalformedCode = errors.New("complexity: malformed code")

// Code is a validated door code: one or more digits followed by 'A'.
type Code struct {
	text  string
	value uint64
}

// Parse validates s and extracts its numeric value.
// Returns ErrMalformedCode for anything other than [0-9]+A and for values
// above math.MaxInt.
func Parse(s string) (Code, error) {
	if len(s) < 2 || s[len(s)-1] != keypad.Activate {
		return Code{}, fmt.Errorf("%w: %q must be digits followed by A", ErrMalformedCode, s)
	}
	digits := s[:len(s)-1]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Code{}, fmt.Errorf("%w: %q has non-digit %q at %d", ErrMalformedCode, s, digits[i], i)
		}
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return Code{}, fmt.Errorf("%w: %q: %v", ErrMalformedCode, s, err)
	}
	if v > math.MaxInt {
		return Code{}, fmt.Errorf("%w: %q exceeds %d", ErrMalformedCode, s, math.MaxInt)
	}
	return Code{text: s, value: v}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseList reads one code per line. Surrounding whitespace and blank lines
// are ignored; the first malformed line is reported with its line number.
func ParseList(text string) ([]Code, error) {
	var codes []Code
	sc := bufio.NewScanner(strings.NewReader(text))
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		c, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		codes = append(codes, c)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}

// String returns the code as typed, e.g. "029A".
func (c Code) String() string { return c.text }

// Numeric returns the code's digits as a number: 29 for "029A".
func (c Code) Numeric() uint64 { return c.value }

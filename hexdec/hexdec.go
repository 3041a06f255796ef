package hexdec

import (
	"strconv"
	"strings"

	"github.com/andaru/esi/esierr"
	"github.com/pkg/errors"
)

// split returns the digits of s and the base they are written in.
func split(s string) (string, int) {
	switch {
	case len(s) >= 2 && (s[0] == '#' || s[0] == '0') && (s[1] == 'x' || s[1] == 'X'):
		return s[2:], 16
	case len(s) >= 1 && (s[0] == 'x' || s[0] == 'X'):
		return s[1:], 16
	}
	return s, 10
}

func checkWidth(width int) {
	switch width {
	case 8, 16, 32, 64:
	default:
		panic(errors.Errorf("hexdec: unsupported width %d", width))
	}
}

// ParseUint parses s as an unsigned integer of the given bit width
// (8, 16, 32 or 64).
//
// A "#x", "0x" or bare "x" prefix, in either case, selects hexadecimal
// digits; otherwise s must be plain decimal digits. Failures are
// reported as an esierr.KindInvalidNumericLiteral error, with Overflow
// set when the value does not fit width.
func ParseUint(s string, width int) (uint64, error) {
	checkWidth(width)
	digits, base := split(s)
	v, err := strconv.ParseUint(digits, base, width)
	if err != nil {
		return 0, literalError(s, width, err)
	}
	return v, nil
}

// ParseInt parses s as a signed integer of the given bit width.
//
// Decimal values may carry a leading '+' or '-'. Hexadecimal values
// use the ParseUint prefixes and are read as a non-negative magnitude.
func ParseInt(s string, width int) (int64, error) {
	checkWidth(width)
	digits, base := split(s)
	if base == 16 && len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		return 0, errors.WithStack(esierr.InvalidNumericLiteral(s, width))
	}
	v, err := strconv.ParseInt(digits, base, width)
	if err != nil {
		return 0, literalError(s, width, err)
	}
	return v, nil
}

func literalError(s string, width int, err error) error {
	var opts []esierr.Option
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		opts = append(opts, esierr.WithOverflow())
	}
	return errors.WithStack(esierr.InvalidNumericLiteral(s, width, opts...))
}

func Uint8(s string) (uint8, error) {
	v, err := ParseUint(s, 8)
	return uint8(v), err
}

func Uint16(s string) (uint16, error) {
	v, err := ParseUint(s, 16)
	return uint16(v), err
}

func Uint32(s string) (uint32, error) {
	v, err := ParseUint(s, 32)
	return uint32(v), err
}

func Int32(s string) (int32, error) {
	v, err := ParseInt(s, 32)
	return int32(v), err
}

// ParseBool parses the boolean tokens "1", "true", "0" and "false",
// ignoring case.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, errors.WithStack(esierr.InvalidBooleanLiteral(s))
}

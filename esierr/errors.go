package esierr

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Kind represents the class of a conversion failure
type Kind int

const (
	// KindMalformedXML indicates the document could not be tokenized or
	// lacks the structure the raw decoder relies on
	KindMalformedXML Kind = iota
	// KindMissingMandatoryField indicates a required field was absent
	KindMissingMandatoryField
	// KindInvalidNumericLiteral indicates a hex/dec string did not parse
	// or did not fit the target width
	KindInvalidNumericLiteral
	// KindInvalidBooleanLiteral indicates a boolean token was not recognized
	KindInvalidBooleanLiteral
	// KindAmbiguousImageVariant indicates more than one image
	// representation was present on one entity
	KindAmbiguousImageVariant
)

func (k Kind) String() string {
	switch k {
	case KindMalformedXML:
		return "malformed-xml"
	case KindMissingMandatoryField:
		return "missing-mandatory-field"
	case KindInvalidNumericLiteral:
		return "invalid-numeric-literal"
	case KindInvalidBooleanLiteral:
		return "invalid-boolean-literal"
	case KindAmbiguousImageVariant:
		return "ambiguous-image-variant"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "malformed-xml":
		*k = KindMalformedXML
	case "missing-mandatory-field":
		*k = KindMissingMandatoryField
	case "invalid-numeric-literal":
		*k = KindInvalidNumericLiteral
	case "invalid-boolean-literal":
		*k = KindInvalidBooleanLiteral
	case "ambiguous-image-variant":
		*k = KindAmbiguousImageVariant
	default:
		return errors.New("unknown value")
	}
	return nil
}

// Error is an ESI conversion error.
//
// Entity and Field name the offending element and its child or
// attribute, Path locates the entity within the document, e.g.
//   /EtherCATInfo/Descriptions/Devices/Device[2]/Sm[1]
// Literal and Width are set for literal errors.
type Error struct {
	Kind     Kind   `json:"kind"`
	Entity   string `json:"entity,omitempty"`
	Field    string `json:"field,omitempty"`
	Path     string `json:"path,omitempty"`
	Literal  string `json:"literal,omitempty"`
	Width    int    `json:"width,omitempty"`
	Overflow bool   `json:"overflow,omitempty"`
	Message  string `json:"message,omitempty"`
	Cause    error  `json:"-"`
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Entity != "" {
		s += " entity:" + e.Entity
	}
	if e.Field != "" {
		s += " field:" + e.Field
	}
	if e.Path != "" {
		s += " path:" + e.Path
	}
	switch e.Kind {
	case KindInvalidNumericLiteral:
		s += " literal:" + strconv.Quote(e.Literal) + " width:" + strconv.Itoa(e.Width)
		if e.Overflow {
			s += " overflow"
		}
	case KindInvalidBooleanLiteral:
		s += " literal:" + strconv.Quote(e.Literal)
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Cause }

func MalformedXML(cause error, opts ...Option) *Error {
	e := &Error{Kind: KindMalformedXML, Cause: cause}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func MissingMandatoryField(entity, field string, opts ...Option) *Error {
	e := &Error{Kind: KindMissingMandatoryField, Entity: entity, Field: field}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func InvalidNumericLiteral(literal string, width int, opts ...Option) *Error {
	e := &Error{Kind: KindInvalidNumericLiteral, Literal: literal, Width: width}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func InvalidBooleanLiteral(literal string, opts ...Option) *Error {
	e := &Error{Kind: KindInvalidBooleanLiteral, Literal: literal}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func AmbiguousImageVariant(entity string, opts ...Option) *Error {
	e := &Error{Kind: KindAmbiguousImageVariant, Entity: entity}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Annotate applies opts to the first *Error found in err's chain and
// returns err. Errors of other types are returned untouched.
func Annotate(err error, opts ...Option) error {
	var e *Error
	if errors.As(err, &e) {
		for _, opt := range opts {
			opt(e)
		}
	}
	return err
}

// As returns the first *Error found in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	if e, ok := As(err); ok {
		return e.Kind, true
	}
	return 0, false
}

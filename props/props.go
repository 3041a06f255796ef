package props

import (
	"github.com/andaru/esi/esierr"
	"github.com/pkg/errors"
)

// Property is one child element of a property bag. Tag returns the
// XML element name the property was decoded from.
type Property interface {
	Tag() string
}

// Bag is the ordered sequence of child elements of a property bag
// element, such as <Device> or <Module>.
type Bag []Property

// Unknown is the catch-all for child elements with no modelled
// counterpart. Extraction never selects it.
type Unknown struct {
	Name string
}

func (u Unknown) Tag() string { return u.Name }

// tagOf returns the tag of T's zero value.
func tagOf[T Property]() string {
	var zero T
	return zero.Tag()
}

// Optional returns the first property of type T in b.
func Optional[T Property](b Bag) (T, bool) {
	for _, p := range b {
		if v, ok := p.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Mandatory returns the first property of type T in b, or a
// missing-mandatory-field error naming entity and T's tag.
func Mandatory[T Property](b Bag, entity string) (T, error) {
	v, ok := Optional[T](b)
	if !ok {
		return v, errors.WithStack(esierr.MissingMandatoryField(entity, tagOf[T]()))
	}
	return v, nil
}

// Repeated returns every property of type T in b, in bag order. The
// result is never nil.
func Repeated[T Property](b Bag) []T {
	out := []T{}
	for _, p := range b {
		if v, ok := p.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// ByTag returns the properties of b whose tag is tag, in bag order.
// Unknown properties are never returned.
func ByTag(b Bag, tag string) Bag {
	out := Bag{}
	for _, p := range b {
		if _, ok := p.(Unknown); ok {
			continue
		}
		if p.Tag() == tag {
			out = append(out, p)
		}
	}
	return out
}

// Unmatched returns the tags of the Unknown properties in b.
func Unmatched(b Bag) (tags []string) {
	for _, p := range b {
		if u, ok := p.(Unknown); ok {
			tags = append(tags, u.Name)
		}
	}
	return tags
}

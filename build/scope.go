package build

import (
	"fmt"

	"github.com/andaru/esi/esierr"
	"github.com/andaru/esi/hexdec"
	"github.com/andaru/esi/model"
	"github.com/andaru/esi/raw"
	"github.com/pkg/errors"
)

// scope is the entity being converted and its location in the
// document. Errors produced while converting the entity are
// annotated with both.
type scope struct {
	entity string
	path   string
}

func root() scope { return scope{entity: "EtherCATInfo", path: "/EtherCATInfo"} }

// child returns the scope of the singleton child element name.
func (s scope) child(name string) scope {
	return scope{entity: name, path: s.path + "/" + name}
}

// nth returns the scope of the i'th (zero based) element name below
// the container element, e.g. Devices/Device[3].
func (s scope) nth(container, name string, i int) scope {
	p := s.path
	if container != "" {
		p += "/" + container
	}
	return scope{entity: name, path: fmt.Sprintf("%s/%s[%d]", p, name, i+1)}
}

// wrap locates err at field of s.
func (s scope) wrap(err error, field string) error {
	return esierr.Annotate(err, esierr.WithLocation(s.entity, field, s.path))
}

func (s scope) missing(field string) error {
	return errors.WithStack(esierr.MissingMandatoryField(s.entity, field, esierr.WithPath(s.path)))
}

func (s scope) u8(field string, v *string) (*uint8, error) {
	if v == nil {
		return nil, nil
	}
	n, err := hexdec.Uint8(*v)
	if err != nil {
		return nil, s.wrap(err, field)
	}
	return &n, nil
}

func (s scope) u16(field string, v *string) (*uint16, error) {
	if v == nil {
		return nil, nil
	}
	n, err := hexdec.Uint16(*v)
	if err != nil {
		return nil, s.wrap(err, field)
	}
	return &n, nil
}

func (s scope) u32(field string, v *string) (*uint32, error) {
	if v == nil {
		return nil, nil
	}
	n, err := hexdec.Uint32(*v)
	if err != nil {
		return nil, s.wrap(err, field)
	}
	return &n, nil
}

func (s scope) i32(field string, v *string) (*int32, error) {
	if v == nil {
		return nil, nil
	}
	n, err := hexdec.Int32(*v)
	if err != nil {
		return nil, s.wrap(err, field)
	}
	return &n, nil
}

func (s scope) mustU16(field string, v *string) (uint16, error) {
	if v == nil {
		return 0, s.missing(field)
	}
	n, err := s.u16(field, v)
	if err != nil {
		return 0, err
	}
	return *n, nil
}

func (s scope) mustU32(field string, v *string) (uint32, error) {
	if v == nil {
		return 0, s.missing(field)
	}
	n, err := s.u32(field, v)
	if err != nil {
		return 0, err
	}
	return *n, nil
}

// boolean parses v, returning def when v is absent.
func (s scope) boolean(field string, v *string, def bool) (bool, error) {
	if v == nil {
		return def, nil
	}
	b, err := hexdec.ParseBool(*v)
	if err != nil {
		return false, s.wrap(err, field)
	}
	return b, nil
}

func (s scope) names(in []raw.Name) (model.Names, error) {
	out := model.Names{}
	for _, n := range in {
		lcid, err := s.u32("LcId", n.LcID)
		if err != nil {
			return nil, err
		}
		out = append(out, model.Name{Text: n.Text, LcID: lcid})
	}
	return out, nil
}

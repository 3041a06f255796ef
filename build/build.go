package build

import (
	"github.com/andaru/esi/model"
	"github.com/andaru/esi/props"
	"github.com/andaru/esi/raw"
)

// Info converts a raw document into the domain model.
//
// Conversion stops at the first missing mandatory field, invalid
// literal or ambiguous image and returns that error.
func Info(r *raw.EtherCATInfo) (*model.EtherCATInfo, error) {
	s := root()
	if r.Vendor == nil {
		return nil, s.missing("Vendor")
	}
	v, err := vendor(s.child("Vendor"), r.Vendor)
	if err != nil {
		return nil, err
	}
	d, err := description(s, r)
	if err != nil {
		return nil, err
	}
	return &model.EtherCATInfo{
		Version:        r.Version,
		SchemaLocation: r.SchemaLocation,
		InfoReference:  r.InfoReference,
		Vendor:         v,
		Description:    d,
	}, nil
}

func vendor(s scope, r *raw.Vendor) (v model.Vendor, err error) {
	if v.ID, err = s.mustU32("Id", r.ID); err != nil {
		return v, err
	}
	if v.FileVersion, err = s.u32("FileVersion", r.FileVersion); err != nil {
		return v, err
	}
	if v.Names, err = s.names(r.Names); err != nil {
		return v, err
	}
	if v.Image, err = ResolveImage(s.entity, r.Image16x14, r.ImageFile16x14, r.ImageData16x14); err != nil {
		return v, s.wrap(err, "")
	}
	v.Comment = r.Comment
	v.URL = r.URL
	v.DescriptionURL = r.DescriptionURL
	return v, nil
}

// description converts the groups, devices and modules of r. Modules
// placed directly under the root follow those under <Descriptions>.
func description(s scope, r *raw.EtherCATInfo) (model.Description, error) {
	d := model.Description{
		Groups:  []model.Group{},
		Devices: []model.Device{},
		Modules: []model.Module{},
	}
	if rd := r.Descriptions; rd != nil {
		ds := s.child("Descriptions")
		for i, g := range rd.Groups {
			mg, err := group(ds.nth("Groups", "Group", i), g)
			if err != nil {
				return d, err
			}
			d.Groups = append(d.Groups, mg)
		}
		for i, dev := range rd.Devices {
			md, err := device(ds.nth("Devices", "Device", i), dev)
			if err != nil {
				return d, err
			}
			d.Devices = append(d.Devices, md)
		}
		for i, m := range rd.Modules {
			mm, err := module(ds.nth("Modules", "Module", i), m)
			if err != nil {
				return d, err
			}
			d.Modules = append(d.Modules, mm)
		}
	}
	for i, m := range r.Modules {
		mm, err := module(s.nth("Modules", "Module", i), m)
		if err != nil {
			return d, err
		}
		d.Modules = append(d.Modules, mm)
	}
	return d, nil
}

func group(s scope, r raw.Group) (g model.Group, err error) {
	if r.Type == nil {
		return g, s.missing("Type")
	}
	if len(r.Names) == 0 {
		return g, s.missing("Name")
	}
	g.Type = *r.Type
	if g.Names, err = s.names(r.Names); err != nil {
		return g, err
	}
	if g.SortOrder, err = s.i32("SortOrder", r.SortOrder); err != nil {
		return g, err
	}
	if g.Image, err = ResolveImage(s.entity, r.Image16x14, r.ImageFile16x14, r.ImageData16x14); err != nil {
		return g, s.wrap(err, "")
	}
	g.ParentGroup = r.ParentGroup
	g.Comment = r.Comment
	return g, nil
}

func device(s scope, r raw.Device) (d model.Device, err error) {
	typ, err := props.Mandatory[raw.DeviceType](r.Props, s.entity)
	if err != nil {
		return d, s.wrap(err, "")
	}
	if _, err = props.Mandatory[raw.Name](r.Props, s.entity); err != nil {
		return d, s.wrap(err, "")
	}
	if d.Names, err = s.names(props.Repeated[raw.Name](r.Props)); err != nil {
		return d, err
	}

	ts := s.child("Type")
	if d.ProductCode, err = ts.u32("ProductCode", typ.ProductCode); err != nil {
		return d, err
	}
	if d.RevisionNo, err = ts.u32("RevisionNo", typ.RevisionNo); err != nil {
		return d, err
	}
	d.Description = typ.Text
	d.ModulePdoGroup = typ.ModulePdoGroup
	d.Physics = r.Physics

	if gt, ok := props.Optional[raw.GroupType](r.Props); ok {
		d.GroupType = &gt.Text
	}
	if img, ok := props.Optional[raw.ImageData16x14](r.Props); ok {
		h := model.HexBinary(img.Text)
		d.ImageData = &h
	}

	d.Sm = []model.Sm{}
	for i, rsm := range props.Repeated[raw.Sm](r.Props) {
		m, err := sm(s.nth("", "Sm", i), rsm)
		if err != nil {
			return d, err
		}
		d.Sm = append(d.Sm, m)
	}
	if d.RxPdo, d.TxPdo, err = pdos(s, r.Props); err != nil {
		return d, err
	}

	d.Fmmu = opaques(r.Props, "Fmmu")
	d.Mailbox = opaque(r.Props, "Mailbox")
	d.Dc = opaque(r.Props, "Dc")
	d.Eeprom = opaque(r.Props, "Eeprom")
	d.Profile = opaque(r.Props, "Profile")
	return d, nil
}

func module(s scope, r raw.Module) (m model.Module, err error) {
	typ, err := props.Mandatory[raw.ModuleType](r.Props, s.entity)
	if err != nil {
		return m, s.wrap(err, "")
	}
	if _, err = props.Mandatory[raw.Name](r.Props, s.entity); err != nil {
		return m, s.wrap(err, "")
	}
	if m.Names, err = s.names(props.Repeated[raw.Name](r.Props)); err != nil {
		return m, err
	}
	m.Type = typ.Text
	m.Class = typ.ModuleClass
	if m.Ident, err = s.child("Type").u32("ModuleIdent", typ.ModuleIdent); err != nil {
		return m, err
	}
	if img, ok := props.Optional[raw.ImageData16x14](r.Props); ok {
		h := model.HexBinary(img.Text)
		m.ImageData = &h
	}
	if m.RxPdo, m.TxPdo, err = pdos(s, r.Props); err != nil {
		return m, err
	}
	m.Mailbox = opaque(r.Props, "Mailbox")
	m.Profile = opaque(r.Props, "Profile")
	return m, nil
}

func sm(s scope, r raw.Sm) (m model.Sm, err error) {
	if m.StartAddress, err = s.mustU16("StartAddress", r.StartAddress); err != nil {
		return m, err
	}
	if m.ControlByte, err = s.u8("ControlByte", r.ControlByte); err != nil {
		return m, err
	}
	if m.DefaultSize, err = s.u16("DefaultSize", r.DefaultSize); err != nil {
		return m, err
	}
	if m.Enable, err = s.boolean("Enable", r.Enable, false); err != nil {
		return m, err
	}
	if m.Virtual, err = s.boolean("Virtual", r.Virtual, false); err != nil {
		return m, err
	}
	m.Kind = r.Text
	return m, nil
}

// pdos converts the receive and transmit PDOs of a device or module
// bag, each list in document order.
func pdos(s scope, bag props.Bag) (rx, tx []model.Pdo, err error) {
	rx, tx = []model.Pdo{}, []model.Pdo{}
	for i, p := range props.Repeated[raw.RxPdo](bag) {
		mp, err := pdo(s.nth("", "RxPdo", i), p.Pdo)
		if err != nil {
			return nil, nil, err
		}
		rx = append(rx, mp)
	}
	for i, p := range props.Repeated[raw.TxPdo](bag) {
		mp, err := pdo(s.nth("", "TxPdo", i), p.Pdo)
		if err != nil {
			return nil, nil, err
		}
		tx = append(tx, mp)
	}
	return rx, tx, nil
}

func pdo(s scope, r raw.Pdo) (p model.Pdo, err error) {
	if p.Index, err = s.mustU16("Index", r.Index); err != nil {
		return p, err
	}
	if p.Sm, err = s.u8("Sm", r.Sm); err != nil {
		return p, err
	}
	if p.Fixed, err = s.boolean("Fixed", r.Fixed, false); err != nil {
		return p, err
	}
	if p.Mandatory, err = s.boolean("Mandatory", r.Mandatory, false); err != nil {
		return p, err
	}
	if p.Names, err = s.names(props.Repeated[raw.Name](r.Props)); err != nil {
		return p, err
	}
	p.Exclude = []uint16{}
	for _, x := range props.Repeated[raw.Exclude](r.Props) {
		text := x.Text
		idx, err := s.mustU16("Exclude", &text)
		if err != nil {
			return p, err
		}
		p.Exclude = append(p.Exclude, idx)
	}
	p.Entries = []model.PdoEntry{}
	for i, e := range props.Repeated[raw.Entry](r.Props) {
		me, err := entry(s.nth("", "Entry", i), e)
		if err != nil {
			return p, err
		}
		p.Entries = append(p.Entries, me)
	}
	return p, nil
}

func entry(s scope, r raw.Entry) (e model.PdoEntry, err error) {
	if e.Index.Index, err = s.mustU16("Index", r.Index); err != nil {
		return e, err
	}
	sub, err := s.u8("SubIndex", r.SubIndex)
	if err != nil {
		return e, err
	}
	if sub != nil {
		e.Index.SubIndex = *sub
	}
	if e.BitLen, err = s.mustU16("BitLen", r.BitLen); err != nil {
		return e, err
	}
	if e.Names, err = s.names(r.Names); err != nil {
		return e, err
	}
	e.DataType = r.DataType
	return e, nil
}

func opaques(bag props.Bag, tag string) []model.Opaque {
	out := []model.Opaque{}
	for _, p := range props.ByTag(bag, tag) {
		if o, ok := p.(raw.Opaque); ok {
			out = append(out, model.Opaque{Tag: o.Name, XML: o.XML})
		}
	}
	return out
}

func opaque(bag props.Bag, tag string) *model.Opaque {
	if all := opaques(bag, tag); len(all) > 0 {
		return &all[0]
	}
	return nil
}

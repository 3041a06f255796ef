package raw

import (
	"fmt"
	"io"

	"github.com/andaru/esi/esierr"
	"github.com/andaru/esi/props"
	"github.com/andaru/esi/xmlutil"
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
)

const rootName = "EtherCATInfo"

// selectors, relative to the root element
var (
	exprVendor       = xpath.MustCompile("Vendor")
	exprDescriptions = xpath.MustCompile("Descriptions")
	exprGroups       = xpath.MustCompile("Groups/Group")
	exprDevices      = xpath.MustCompile("Devices/Device")
	exprModules      = xpath.MustCompile("Modules/Module")
)

type propDecoder func(*xmlquery.Node) props.Property

// children of <Device>
var deviceProps = map[string]propDecoder{
	"Type":           decodeDeviceType,
	"Name":           decodeName,
	"GroupType":      func(n *xmlquery.Node) props.Property { return GroupType{Text: xmlutil.Text(n)} },
	"ImageData16x14": func(n *xmlquery.Node) props.Property { return ImageData16x14{Text: xmlutil.Text(n)} },
	"Sm":             decodeSm,
	"RxPdo":          func(n *xmlquery.Node) props.Property { return RxPdo{decodePdo(n)} },
	"TxPdo":          func(n *xmlquery.Node) props.Property { return TxPdo{decodePdo(n)} },
	"Fmmu":           decodeOpaque,
	"Mailbox":        decodeOpaque,
	"Dc":             decodeOpaque,
	"Eeprom":         decodeOpaque,
	"Profile":        decodeOpaque,
}

// children of <Module>
var moduleProps = map[string]propDecoder{
	"Type":           decodeModuleType,
	"Name":           decodeName,
	"ImageData16x14": func(n *xmlquery.Node) props.Property { return ImageData16x14{Text: xmlutil.Text(n)} },
	"RxPdo":          func(n *xmlquery.Node) props.Property { return RxPdo{decodePdo(n)} },
	"TxPdo":          func(n *xmlquery.Node) props.Property { return TxPdo{decodePdo(n)} },
	"Mailbox":        decodeOpaque,
	"Profile":        decodeOpaque,
}

// children of <RxPdo> and <TxPdo>
var pdoProps = map[string]propDecoder{
	"Name":    decodeName,
	"Entry":   decodeEntry,
	"Exclude": func(n *xmlquery.Node) props.Property { return Exclude{Text: xmlutil.Text(n)} },
}

// Parse reads an ESI document from r and decodes it.
//
// Documents declaring a non UTF-8 encoding, such as ISO-8859-1, are
// transcoded by the XML parser.
func Parse(r io.Reader) (*EtherCATInfo, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, errors.WithStack(esierr.MalformedXML(err))
	}
	return Decode(doc)
}

// Decode builds the raw model from a parsed document. n may be the
// document node or the <EtherCATInfo> element itself.
func Decode(n *xmlquery.Node) (*EtherCATInfo, error) {
	root := n
	if n != nil && n.Type == xmlquery.DocumentNode {
		root = nil
		if elems := xmlutil.Elements(n); len(elems) > 0 {
			root = elems[0]
		}
	}
	if root == nil {
		return nil, errors.WithStack(esierr.MalformedXML(nil, esierr.WithMessage("document has no root element")))
	}
	if !xmlutil.IsElement(root, rootName) {
		return nil, errors.WithStack(esierr.MalformedXML(nil, esierr.WithMessage(
			fmt.Sprintf("unexpected root element <%s>, want <%s>", root.Data, rootName))))
	}

	info := &EtherCATInfo{
		Version:        xmlutil.AttrPtr(root, "Version"),
		SchemaLocation: xmlutil.AttrPtr(root, "noNamespaceSchemaLocation"),
		InfoReference:  xmlutil.ChildText(root, "InfoReference"),
		Modules:        decodeModules(root),
	}
	if v := xmlquery.QuerySelector(root, exprVendor); v != nil {
		info.Vendor = decodeVendor(v)
	}
	if d := xmlquery.QuerySelector(root, exprDescriptions); d != nil {
		info.Descriptions = decodeDescriptions(d)
	}
	return info, nil
}

func decodeVendor(n *xmlquery.Node) *Vendor {
	return &Vendor{
		FileVersion:    xmlutil.Value(n, "FileVersion"),
		ID:             xmlutil.Value(n, "Id"),
		Names:          decodeNames(n),
		Comment:        xmlutil.ChildText(n, "Comment"),
		URL:            xmlutil.ChildText(n, "URL"),
		DescriptionURL: xmlutil.ChildText(n, "DescriptionURL"),
		Image16x14:     xmlutil.ChildText(n, "Image16x14"),
		ImageFile16x14: xmlutil.ChildText(n, "ImageFile16x14"),
		ImageData16x14: xmlutil.ChildText(n, "ImageData16x14"),
	}
}

func decodeDescriptions(n *xmlquery.Node) *Descriptions {
	d := &Descriptions{Modules: decodeModules(n)}
	for _, g := range xmlquery.QuerySelectorAll(n, exprGroups) {
		d.Groups = append(d.Groups, decodeGroup(g))
	}
	for _, dev := range xmlquery.QuerySelectorAll(n, exprDevices) {
		d.Devices = append(d.Devices, Device{
			Physics: xmlutil.AttrPtr(dev, "Physics"),
			Props:   decodeBag(dev, deviceProps),
		})
	}
	return d
}

func decodeModules(n *xmlquery.Node) (out []Module) {
	for _, m := range xmlquery.QuerySelectorAll(n, exprModules) {
		out = append(out, Module{Props: decodeBag(m, moduleProps)})
	}
	return out
}

func decodeGroup(n *xmlquery.Node) Group {
	return Group{
		SortOrder:      xmlutil.Value(n, "SortOrder"),
		ParentGroup:    xmlutil.Value(n, "ParentGroup"),
		Type:           xmlutil.ChildText(n, "Type"),
		Names:          decodeNames(n),
		Comment:        xmlutil.ChildText(n, "Comment"),
		Image16x14:     xmlutil.ChildText(n, "Image16x14"),
		ImageFile16x14: xmlutil.ChildText(n, "ImageFile16x14"),
		ImageData16x14: xmlutil.ChildText(n, "ImageData16x14"),
	}
}

// decodeBag converts the element children of n, in order. Children
// missing from table become props.Unknown.
func decodeBag(n *xmlquery.Node, table map[string]propDecoder) props.Bag {
	bag := props.Bag{}
	for _, c := range xmlutil.Elements(n) {
		if dec, ok := table[c.Data]; ok {
			bag = append(bag, dec(c))
		} else {
			bag = append(bag, props.Unknown{Name: c.Data})
		}
	}
	return bag
}

func decodeNames(n *xmlquery.Node) (names []Name) {
	for _, c := range xmlutil.Elements(n) {
		if c.Data == "Name" {
			names = append(names, decodeName(c).(Name))
		}
	}
	return names
}

func decodeName(n *xmlquery.Node) props.Property {
	return Name{Text: xmlutil.Text(n), LcID: xmlutil.AttrPtr(n, "LcId")}
}

func decodeDeviceType(n *xmlquery.Node) props.Property {
	return DeviceType{
		ProductCode:    xmlutil.AttrPtr(n, "ProductCode"),
		RevisionNo:     xmlutil.AttrPtr(n, "RevisionNo"),
		ModulePdoGroup: xmlutil.AttrPtr(n, "ModulePdoGroup"),
		Text:           xmlutil.OwnText(n),
	}
}

func decodeModuleType(n *xmlquery.Node) props.Property {
	return ModuleType{
		ModuleIdent: xmlutil.AttrPtr(n, "ModuleIdent"),
		ModuleClass: xmlutil.AttrPtr(n, "ModuleClass"),
		Text:        xmlutil.OwnText(n),
	}
}

func decodeSm(n *xmlquery.Node) props.Property {
	return Sm{
		StartAddress: xmlutil.Value(n, "StartAddress"),
		ControlByte:  xmlutil.Value(n, "ControlByte"),
		DefaultSize:  xmlutil.Value(n, "DefaultSize"),
		Enable:       xmlutil.Value(n, "Enable"),
		Virtual:      xmlutil.Value(n, "Virtual"),
		Text:         xmlutil.OwnText(n),
	}
}

func decodePdo(n *xmlquery.Node) Pdo {
	return Pdo{
		Index:     xmlutil.Value(n, "Index"),
		Sm:        xmlutil.Value(n, "Sm"),
		Fixed:     xmlutil.Value(n, "Fixed"),
		Mandatory: xmlutil.Value(n, "Mandatory"),
		Props:     decodeBag(n, pdoProps),
	}
}

func decodeEntry(n *xmlquery.Node) props.Property {
	return Entry{
		Index:    xmlutil.Value(n, "Index"),
		SubIndex: xmlutil.Value(n, "SubIndex"),
		BitLen:   xmlutil.Value(n, "BitLen"),
		Names:    decodeNames(n),
		DataType: xmlutil.Value(n, "DataType"),
	}
}

func decodeOpaque(n *xmlquery.Node) props.Property {
	return Opaque{Name: n.Data, XML: n.OutputXML(true)}
}

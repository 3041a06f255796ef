package raw

import "github.com/andaru/esi/props"

// EtherCATInfo mirrors the <EtherCATInfo> root element.
//
// Every field is optional here; which ones a conversion requires is
// decided by package build.
type EtherCATInfo struct {
	Version        *string
	SchemaLocation *string
	InfoReference  *string
	Vendor         *Vendor
	Descriptions   *Descriptions
	// Modules are <Module> elements found directly under the root, as
	// written by some tools instead of below <Descriptions>.
	Modules []Module
}

type Vendor struct {
	FileVersion    *string
	ID             *string
	Names          []Name
	Comment        *string
	URL            *string
	DescriptionURL *string

	Image16x14     *string
	ImageFile16x14 *string
	ImageData16x14 *string
}

type Descriptions struct {
	Groups  []Group
	Devices []Device
	Modules []Module
}

type Group struct {
	SortOrder   *string
	ParentGroup *string
	Type        *string
	Names       []Name
	Comment     *string

	Image16x14     *string
	ImageFile16x14 *string
	ImageData16x14 *string
}

// Device is a property bag of DeviceType, Name, GroupType, Sm, RxPdo,
// TxPdo, ImageData16x14 and Opaque children.
type Device struct {
	Physics *string
	Props   props.Bag
}

// Module is a property bag of ModuleType, Name, RxPdo, TxPdo,
// ImageData16x14 and Opaque children.
type Module struct {
	Props props.Bag
}

// Pdo is the content shared by <RxPdo> and <TxPdo>. Props holds Name,
// Entry and Exclude children.
type Pdo struct {
	Index     *string
	Sm        *string
	Fixed     *string
	Mandatory *string
	Props     props.Bag
}

type RxPdo struct{ Pdo }

type TxPdo struct{ Pdo }

type Entry struct {
	Index    *string
	SubIndex *string
	BitLen   *string
	Names    []Name
	DataType *string
}

type Name struct {
	Text string
	LcID *string
}

type DeviceType struct {
	ProductCode    *string
	RevisionNo     *string
	ModulePdoGroup *string
	Text           string
}

type ModuleType struct {
	ModuleIdent *string
	ModuleClass *string
	Text        string
}

type GroupType struct{ Text string }

type ImageData16x14 struct{ Text string }

type Sm struct {
	StartAddress *string
	ControlByte  *string
	DefaultSize  *string
	Enable       *string
	Virtual      *string
	Text         string
}

type Exclude struct{ Text string }

// Opaque is a recognised element whose content is not decoded.
type Opaque struct {
	Name string
	XML  string
}

func (Name) Tag() string           { return "Name" }
func (DeviceType) Tag() string     { return "Type" }
func (ModuleType) Tag() string     { return "Type" }
func (GroupType) Tag() string      { return "GroupType" }
func (ImageData16x14) Tag() string { return "ImageData16x14" }
func (Sm) Tag() string             { return "Sm" }
func (RxPdo) Tag() string          { return "RxPdo" }
func (TxPdo) Tag() string          { return "TxPdo" }
func (Entry) Tag() string          { return "Entry" }
func (Exclude) Tag() string        { return "Exclude" }
func (o Opaque) Tag() string       { return o.Name }

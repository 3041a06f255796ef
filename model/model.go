package model

import (
	"encoding/hex"
	"fmt"
)

// EtherCATInfo is the converted description of an ESI document.
type EtherCATInfo struct {
	Version        *string     `yaml:"version,omitempty"`
	SchemaLocation *string     `yaml:"schemaLocation,omitempty"`
	InfoReference  *string     `yaml:"infoReference,omitempty"`
	Vendor         Vendor      `yaml:"vendor"`
	Description    Description `yaml:"description"`
}

// Vendor identifies the manufacturer of the described devices.
type Vendor struct {
	ID             uint32  `yaml:"id"`
	FileVersion    *uint32 `yaml:"fileVersion,omitempty"`
	Names          Names   `yaml:"names"`
	Comment        *string `yaml:"comment,omitempty"`
	URL            *string `yaml:"url,omitempty"`
	DescriptionURL *string `yaml:"descriptionUrl,omitempty"`
	Image          Image   `yaml:"image,omitempty"`
}

// Description holds the groups, devices and modules of a document.
// None of the slices is nil.
type Description struct {
	Groups  []Group  `yaml:"groups"`
	Devices []Device `yaml:"devices"`
	Modules []Module `yaml:"modules"`
}

// Group is a UI category devices refer to by Type.
type Group struct {
	Type        string  `yaml:"type"`
	Names       Names   `yaml:"names"`
	SortOrder   *int32  `yaml:"sortOrder,omitempty"`
	ParentGroup *string `yaml:"parentGroup,omitempty"`
	Comment     *string `yaml:"comment,omitempty"`
	Image       Image   `yaml:"image,omitempty"`
}

// Device is the profile of one physical slave.
type Device struct {
	Names Names `yaml:"names"`

	// ProductCode and RevisionNo are nil when the dialect omits them.
	ProductCode    *uint32 `yaml:"productCode,omitempty"`
	RevisionNo     *uint32 `yaml:"revisionNo,omitempty"`
	Description    string  `yaml:"description"`
	ModulePdoGroup *string `yaml:"modulePdoGroup,omitempty"`

	Physics   *string    `yaml:"physics,omitempty"`
	GroupType *string    `yaml:"groupType,omitempty"`
	ImageData *HexBinary `yaml:"imageData,omitempty"`

	Sm    []Sm  `yaml:"sm"`
	RxPdo []Pdo `yaml:"rxPdo"`
	TxPdo []Pdo `yaml:"txPdo"`

	Fmmu    []Opaque `yaml:"fmmu"`
	Mailbox *Opaque  `yaml:"mailbox,omitempty"`
	Dc      *Opaque  `yaml:"dc,omitempty"`
	Eeprom  *Opaque  `yaml:"eeprom,omitempty"`
	Profile *Opaque  `yaml:"profile,omitempty"`
}

// Sm is a sync manager declaration.
type Sm struct {
	StartAddress uint16  `yaml:"startAddress"`
	ControlByte  *uint8  `yaml:"controlByte,omitempty"`
	DefaultSize  *uint16 `yaml:"defaultSize,omitempty"`
	Enable       bool    `yaml:"enable"`
	Virtual      bool    `yaml:"virtual"`
	// Kind is the element text, e.g. "MBoxOut" or "Inputs".
	Kind string `yaml:"kind,omitempty"`
}

// Pdo is a process data object. Whether it is a receive or transmit
// PDO follows from the slice holding it.
type Pdo struct {
	Index     uint16     `yaml:"index"`
	Sm        *uint8     `yaml:"sm,omitempty"`
	Fixed     bool       `yaml:"fixed"`
	Mandatory bool       `yaml:"mandatory"`
	Names     Names      `yaml:"names"`
	Entries   []PdoEntry `yaml:"entries"`
	// Exclude lists PDOs that cannot be assigned together with this one.
	Exclude []uint16 `yaml:"exclude"`
}

// PdoEntry maps one object dictionary entry into a PDO.
type PdoEntry struct {
	Index    ObjectIndex `yaml:"index"`
	BitLen   uint16      `yaml:"bitLen"`
	Names    Names       `yaml:"names"`
	DataType *string     `yaml:"dataType,omitempty"`
}

// ObjectIndex addresses an object dictionary entry.
type ObjectIndex struct {
	Index    uint16 `yaml:"index"`
	SubIndex uint8  `yaml:"subIndex"`
}

func (i ObjectIndex) String() string { return fmt.Sprintf("%#04x:%02x", i.Index, i.SubIndex) }

// Module is a sub-device profile plugged into a modular slave.
type Module struct {
	Type      string     `yaml:"type"`
	Ident     *uint32    `yaml:"ident,omitempty"`
	Class     *string    `yaml:"class,omitempty"`
	Names     Names      `yaml:"names"`
	ImageData *HexBinary `yaml:"imageData,omitempty"`
	RxPdo     []Pdo      `yaml:"rxPdo"`
	TxPdo     []Pdo      `yaml:"txPdo"`
	Mailbox   *Opaque    `yaml:"mailbox,omitempty"`
	Profile   *Opaque    `yaml:"profile,omitempty"`
}

// Opaque is an element kept but not decoded.
type Opaque struct {
	Tag string `yaml:"tag"`
	XML string `yaml:"xml"`
}

// HexBinary is xs:hexBinary text.
type HexBinary string

// Bytes decodes h.
func (h HexBinary) Bytes() ([]byte, error) { return hex.DecodeString(string(h)) }

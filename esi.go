package esi

import (
	"strings"

	"github.com/andaru/esi/build"
	"github.com/andaru/esi/model"
	"github.com/andaru/esi/raw"
)

type (
	EtherCATInfo = model.EtherCATInfo
	Vendor       = model.Vendor
	Description  = model.Description
	Group        = model.Group
	Device       = model.Device
	Module       = model.Module
	Sm           = model.Sm
	Pdo          = model.Pdo
	PdoEntry     = model.PdoEntry
	ObjectIndex  = model.ObjectIndex
	Image        = model.Image
	Name         = model.Name
	Names        = model.Names
	HexBinary    = model.HexBinary
	Opaque       = model.Opaque
)

// FromXMLString converts the ESI document xml.
func FromXMLString(xml string) (*EtherCATInfo, error) {
	r, err := raw.Parse(strings.NewReader(xml))
	if err != nil {
		return nil, err
	}
	return build.Info(r)
}

package build

import (
	"fmt"
	"strings"
	"testing"

	"github.com/andaru/esi/esierr"
	"github.com/andaru/esi/model"
	"github.com/andaru/esi/raw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func convert(t *testing.T, doc string) (*model.EtherCATInfo, error) {
	t.Helper()
	r, err := raw.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return Info(r)
}

// wrap places descriptions (and optional root-level content) into a
// document with a valid vendor.
func wrap(descriptions string, rootExtra ...string) string {
	return `<EtherCATInfo Version="1.11">
  <Vendor><Id>#x00000230</Id><Name>Weidmueller</Name></Vendor>
  <Descriptions>` + descriptions + `</Descriptions>` + strings.Join(rootExtra, "") + `
</EtherCATInfo>`
}

func u8(v uint8) *uint8    { return &v }
func u16(v uint16) *uint16 { return &v }
func u32(v uint32) *uint32 { return &v }
func i32(v int32) *int32   { return &v }

func TestVendor(t *testing.T) {
	for _, tc := range []struct {
		name   string
		vendor string
		want   model.Vendor
	}{
		{
			name:   "hex id",
			vendor: `<Vendor FileVersion="0099"><Id>#x00000230</Id><Name>Vendor Foo</Name><ImageData16x14>7D</ImageData16x14></Vendor>`,
			want: model.Vendor{
				ID:          0x230,
				FileVersion: u32(99),
				Names:       model.Names{{Text: "Vendor Foo"}},
				Image:       model.ImageData16x14("7D"),
			},
		},
		{
			name:   "decimal id",
			vendor: `<Vendor><Id>560</Id></Vendor>`,
			want:   model.Vendor{ID: 560, Names: model.Names{}},
		},
		{
			name: "optional fields",
			vendor: `<Vendor><Id>2</Id><Name LcId="1033">Beckhoff Automation GmbH &amp; Co. KG</Name>
			  <Comment>c</Comment><URL>http://www.beckhoff.com</URL><DescriptionURL>http://d</DescriptionURL>
			  <ImageFile16x14>beckhoff.bmp</ImageFile16x14></Vendor>`,
			want: model.Vendor{
				ID:             2,
				Names:          model.Names{{Text: "Beckhoff Automation GmbH & Co. KG", LcID: u32(1033)}},
				Comment:        strPtr("c"),
				URL:            strPtr("http://www.beckhoff.com"),
				DescriptionURL: strPtr("http://d"),
				Image:          model.ImageFile16x14("beckhoff.bmp"),
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			info, err := convert(t, `<EtherCATInfo>`+tc.vendor+`</EtherCATInfo>`)
			require.NoError(t, err)
			assert.Equal(t, tc.want, info.Vendor)
		})
	}
}

func TestEmptyCollections(t *testing.T) {
	for _, doc := range []string{
		`<EtherCATInfo><Vendor><Id>1</Id></Vendor></EtherCATInfo>`,
		`<EtherCATInfo><Vendor><Id>1</Id></Vendor><Descriptions/></EtherCATInfo>`,
		`<EtherCATInfo><Vendor><Id>1</Id></Vendor><Descriptions><Groups/><Devices></Devices><Modules/></Descriptions></EtherCATInfo>`,
	} {
		info, err := convert(t, doc)
		require.NoError(t, err)
		check := assert.New(t)
		check.NotNil(info.Description.Groups)
		check.NotNil(info.Description.Devices)
		check.NotNil(info.Description.Modules)
		check.Empty(info.Description.Groups)
		check.Empty(info.Description.Devices)
		check.Empty(info.Description.Modules)
	}
}

func TestGroup(t *testing.T) {
	info, err := convert(t, wrap(`
    <Groups>
      <Group SortOrder="0">
        <Type>Coupler</Type>
        <Name>Coupler</Name>
        <ImageData16x14>44</ImageData16x14>
      </Group>
      <Group SortOrder="-1">
        <Type>Terminal</Type>
        <ParentGroup>Coupler</ParentGroup>
        <Name LcId="1033">Terminal</Name>
        <Name LcId="1031">Klemme</Name>
        <Comment>IO</Comment>
        <VendorSpecific/>
      </Group>
    </Groups>`))
	require.NoError(t, err)
	assert.Equal(t, []model.Group{
		{
			Type:      "Coupler",
			Names:     model.Names{{Text: "Coupler"}},
			SortOrder: i32(0),
			Image:     model.ImageData16x14("44"),
		},
		{
			Type:        "Terminal",
			Names:       model.Names{{Text: "Terminal", LcID: u32(1033)}, {Text: "Klemme", LcID: u32(1031)}},
			SortOrder:   i32(-1),
			ParentGroup: strPtr("Coupler"),
			Comment:     strPtr("IO"),
		},
	}, info.Description.Groups)
}

func TestDevice(t *testing.T) {
	info, err := convert(t, wrap(`
    <Devices>
      <Device Physics="YY">
        <Type ProductCode="#x45" RevisionNo="#x001">Foo</Type>
        <Name>Bar</Name>
        <GroupType>Coupler</GroupType>
        <Fmmu>Outputs</Fmmu>
        <Fmmu>Inputs</Fmmu>
        <Sm Enable="1" StartAddress="#x1000" ControlByte="#x26" DefaultSize="512">MBoxOut</Sm>
        <Sm Enable="1" StartAddress="#x1400" ControlByte="#x22" DefaultSize="512">MBoxIn</Sm>
        <Sm            StartAddress="#x1800" ControlByte="#x64"                 />
        <Sm Enable="0" StartAddress="#x2400" ControlByte="#x20" DefaultSize="0" Virtual="true"/>
        <RxPdo Sm="2" Fixed="1" Mandatory="1">
          <Index>#x16ff</Index>
          <Name></Name>
          <Entry>
            <Index>#xf200</Index>
            <SubIndex>3</SubIndex>
            <BitLen>1</BitLen>
            <Name></Name>
            <DataType>BOOL</DataType>
          </Entry>
        </RxPdo>
        <TxPdo>
          <Index>#x1a00</Index>
          <Exclude>#x1a01</Exclude>
          <Entry><Index>0</Index><BitLen>8</BitLen></Entry>
        </TxPdo>
        <Mailbox DataLinkLayer="true"><CoE/></Mailbox>
        <Dc><OpMode/></Dc>
        <Eeprom><ByteSize>2048</ByteSize></Eeprom>
        <ImageData16x14>7D</ImageData16x14>
        <VendorSpecific><Foo/></VendorSpecific>
      </Device>
    </Devices>`))
	require.NoError(t, err)
	require.Len(t, info.Description.Devices, 1)
	d := info.Description.Devices[0]

	check := assert.New(t)
	check.Equal(model.Names{{Text: "Bar"}}, d.Names)
	check.Equal(u32(0x45), d.ProductCode)
	check.Equal(u32(1), d.RevisionNo)
	check.Equal("Foo", d.Description)
	check.Equal(strPtr("YY"), d.Physics)
	check.Equal(strPtr("Coupler"), d.GroupType)
	check.Equal("7D", string(*d.ImageData))

	check.Equal([]model.Sm{
		{StartAddress: 0x1000, ControlByte: u8(0x26), DefaultSize: u16(512), Enable: true, Kind: "MBoxOut"},
		{StartAddress: 0x1400, ControlByte: u8(0x22), DefaultSize: u16(512), Enable: true, Kind: "MBoxIn"},
		{StartAddress: 0x1800, ControlByte: u8(0x64)},
		{StartAddress: 0x2400, ControlByte: u8(0x20), DefaultSize: u16(0), Virtual: true},
	}, d.Sm)

	check.Equal([]model.Pdo{{
		Index:     0x16FF,
		Sm:        u8(2),
		Fixed:     true,
		Mandatory: true,
		Names:     model.Names{{Text: ""}},
		Exclude:   []uint16{},
		Entries: []model.PdoEntry{{
			Index:    model.ObjectIndex{Index: 0xF200, SubIndex: 3},
			BitLen:   1,
			Names:    model.Names{{Text: ""}},
			DataType: strPtr("BOOL"),
		}},
	}}, d.RxPdo)

	check.Equal([]model.Pdo{{
		Index:   0x1A00,
		Names:   model.Names{},
		Exclude: []uint16{0x1A01},
		Entries: []model.PdoEntry{{BitLen: 8, Names: model.Names{}}},
	}}, d.TxPdo)

	if check.Len(d.Fmmu, 2) {
		check.Equal("Fmmu", d.Fmmu[0].Tag)
		check.Contains(d.Fmmu[1].XML, "Inputs")
	}
	if check.NotNil(d.Mailbox) {
		check.Contains(d.Mailbox.XML, "DataLinkLayer")
	}
	check.NotNil(d.Dc)
	check.NotNil(d.Eeprom)
	check.Nil(d.Profile)
}

func TestDeviceMinimal(t *testing.T) {
	// IgH style: no revision, no Sm or PDOs
	info, err := convert(t, wrap(`<Devices><Device><Type ProductCode="#x44c2c52">EK1100</Type><Name>EK1100</Name></Device></Devices>`))
	require.NoError(t, err)
	d := info.Description.Devices[0]

	check := assert.New(t)
	check.Equal(u32(0x44c2c52), d.ProductCode)
	check.Nil(d.RevisionNo)
	check.NotNil(d.Sm)
	check.NotNil(d.RxPdo)
	check.NotNil(d.TxPdo)
	check.NotNil(d.Fmmu)
	check.Empty(d.Sm)
	check.Empty(d.RxPdo)
	check.Empty(d.TxPdo)
}

func TestModules(t *testing.T) {
	info, err := convert(t, wrap(`
    <Modules>
      <Module>
        <Type ModuleIdent="#x00000A01" ModuleClass="DI">UR20-4DI-P</Type>
        <Name>4DI</Name>
        <TxPdo Fixed="true">
          <Index>#x1a00</Index>
          <Entry><Index>#x6000</Index><SubIndex>1</SubIndex><BitLen>1</BitLen><DataType>BOOL</DataType></Entry>
          <Entry><Index>#x6000</Index><SubIndex>2</SubIndex><BitLen>1</BitLen><DataType>BOOL</DataType></Entry>
        </TxPdo>
        <Mailbox><CoE/></Mailbox>
        <Profile><ProfileNo>5001</ProfileNo></Profile>
      </Module>
      <Module><Type>UR20-4DO-P</Type><Name>4DO</Name></Module>
    </Modules>`,
		`<Modules><Module><Type>UR20-PF-I</Type><Name>PF</Name></Module></Modules>`))
	require.NoError(t, err)

	check := assert.New(t)
	mods := info.Description.Modules
	if !check.Len(mods, 3) {
		return
	}
	check.Equal([]string{"UR20-4DI-P", "UR20-4DO-P", "UR20-PF-I"},
		[]string{mods[0].Type, mods[1].Type, mods[2].Type})

	m := mods[0]
	check.Equal(u32(0xA01), m.Ident)
	check.Equal(strPtr("DI"), m.Class)
	check.Empty(m.RxPdo)
	if check.Len(m.TxPdo, 1) {
		check.True(m.TxPdo[0].Fixed)
		check.False(m.TxPdo[0].Mandatory)
		check.Len(m.TxPdo[0].Entries, 2)
		check.Equal(model.ObjectIndex{Index: 0x6000, SubIndex: 2}, m.TxPdo[0].Entries[1].Index)
	}
	check.NotNil(m.Mailbox)
	check.NotNil(m.Profile)
	check.Nil(mods[1].Mailbox)
	check.NotNil(mods[1].TxPdo)
}

func TestMissingMandatoryField(t *testing.T) {
	for _, tc := range []struct {
		name string
		doc  string

		entity, field, path string
	}{
		{
			name:   "vendor",
			doc:    `<EtherCATInfo><Descriptions/></EtherCATInfo>`,
			entity: "EtherCATInfo", field: "Vendor", path: "/EtherCATInfo",
		},
		{
			name:   "vendor id",
			doc:    `<EtherCATInfo><Vendor><Name>x</Name></Vendor></EtherCATInfo>`,
			entity: "Vendor", field: "Id", path: "/EtherCATInfo/Vendor",
		},
		{
			name:   "group type",
			doc:    wrap(`<Groups><Group><Type>A</Type><Name>A</Name></Group><Group><Name>B</Name></Group></Groups>`),
			entity: "Group", field: "Type", path: "/EtherCATInfo/Descriptions/Groups/Group[2]",
		},
		{
			name:   "group name",
			doc:    wrap(`<Groups><Group><Type>A</Type></Group></Groups>`),
			entity: "Group", field: "Name", path: "/EtherCATInfo/Descriptions/Groups/Group[1]",
		},
		{
			name:   "device type",
			doc:    wrap(`<Devices><Device><Name>A</Name></Device></Devices>`),
			entity: "Device", field: "Type", path: "/EtherCATInfo/Descriptions/Devices/Device[1]",
		},
		{
			name:   "device name",
			doc:    wrap(`<Devices><Device><Type>A</Type><Names>A</Names></Device></Devices>`),
			entity: "Device", field: "Name", path: "/EtherCATInfo/Descriptions/Devices/Device[1]",
		},
		{
			name:   "sm start address",
			doc:    wrap(`<Devices><Device><Type>A</Type><Name>A</Name><Sm StartAddress="#x1000"/><Sm ControlByte="#x26"/></Device></Devices>`),
			entity: "Sm", field: "StartAddress", path: "/EtherCATInfo/Descriptions/Devices/Device[1]/Sm[2]",
		},
		{
			name:   "pdo index",
			doc:    wrap(`<Devices><Device><Type>A</Type><Name>A</Name><TxPdo><Name>x</Name></TxPdo></Device></Devices>`),
			entity: "TxPdo", field: "Index", path: "/EtherCATInfo/Descriptions/Devices/Device[1]/TxPdo[1]",
		},
		{
			name:   "entry bit length",
			doc:    wrap(`<Devices><Device><Type>A</Type><Name>A</Name><RxPdo><Index>#x1600</Index><Entry><Index>#x7000</Index></Entry></RxPdo></Device></Devices>`),
			entity: "Entry", field: "BitLen", path: "/EtherCATInfo/Descriptions/Devices/Device[1]/RxPdo[1]/Entry[1]",
		},
		{
			name:   "entry index",
			doc:    wrap(`<Devices><Device><Type>A</Type><Name>A</Name><RxPdo><Index>#x1600</Index><Entry><BitLen>8</BitLen></Entry></RxPdo></Device></Devices>`),
			entity: "Entry", field: "Index", path: "/EtherCATInfo/Descriptions/Devices/Device[1]/RxPdo[1]/Entry[1]",
		},
		{
			name:   "module type",
			doc:    wrap(`<Modules><Module><Name>M</Name></Module></Modules>`),
			entity: "Module", field: "Type", path: "/EtherCATInfo/Descriptions/Modules/Module[1]",
		},
		{
			name:   "root module name",
			doc:    wrap(``, `<Modules><Module><Type>M</Type></Module></Modules>`),
			entity: "Module", field: "Name", path: "/EtherCATInfo/Modules/Module[1]",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			info, err := convert(t, tc.doc)
			check.Nil(info)
			e, ok := esierr.As(err)
			if check.True(ok, "want *esierr.Error, got %v", err) {
				check.Equal(esierr.KindMissingMandatoryField, e.Kind)
				check.Equal(tc.entity, e.Entity)
				check.Equal(tc.field, e.Field)
				check.Equal(tc.path, e.Path)
			}
		})
	}
}

func TestInvalidLiteral(t *testing.T) {
	dev := func(body string) string {
		return wrap(`<Devices><Device><Type ProductCode="#x1" RevisionNo="#x1">A</Type><Name>A</Name>` + body + `</Device></Devices>`)
	}

	for _, tc := range []struct {
		name string
		doc  string

		kind     esierr.Kind
		field    string
		literal  string
		overflow bool
	}{
		{
			name: "vendor id",
			doc:  `<EtherCATInfo><Vendor><Id>#x0000023G</Id></Vendor></EtherCATInfo>`,
			kind: esierr.KindInvalidNumericLiteral, field: "Id", literal: "#x0000023G",
		},
		{
			name: "product code",
			doc:  wrap(`<Devices><Device><Type ProductCode="4F911C30">A</Type><Name>A</Name></Device></Devices>`),
			kind: esierr.KindInvalidNumericLiteral, field: "ProductCode", literal: "4F911C30",
		},
		{
			name: "control byte overflow",
			doc:  dev(`<Sm StartAddress="#x1000" ControlByte="#x126"/>`),
			kind: esierr.KindInvalidNumericLiteral, field: "ControlByte", literal: "#x126", overflow: true,
		},
		{
			name: "sm enable",
			doc:  dev(`<Sm StartAddress="#x1000" Enable="yes"/>`),
			kind: esierr.KindInvalidBooleanLiteral, field: "Enable", literal: "yes",
		},
		{
			name: "pdo fixed",
			doc:  dev(`<RxPdo Fixed="2"><Index>#x1600</Index></RxPdo>`),
			kind: esierr.KindInvalidBooleanLiteral, field: "Fixed", literal: "2",
		},
		{
			name: "entry subindex overflow",
			doc:  dev(`<RxPdo><Index>#x1600</Index><Entry><Index>#x7000</Index><SubIndex>256</SubIndex><BitLen>1</BitLen></Entry></RxPdo>`),
			kind: esierr.KindInvalidNumericLiteral, field: "SubIndex", literal: "256", overflow: true,
		},
		{
			name: "name lcid",
			doc:  wrap(`<Groups><Group><Type>A</Type><Name LcId="en">A</Name></Group></Groups>`),
			kind: esierr.KindInvalidNumericLiteral, field: "LcId", literal: "en",
		},
		{
			name: "group sort order",
			doc:  wrap(`<Groups><Group SortOrder="first"><Type>A</Type><Name>A</Name></Group></Groups>`),
			kind: esierr.KindInvalidNumericLiteral, field: "SortOrder", literal: "first",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			_, err := convert(t, tc.doc)
			e, ok := esierr.As(err)
			if check.True(ok, "want *esierr.Error, got %v", err) {
				check.Equal(tc.kind, e.Kind)
				check.Equal(tc.field, e.Field)
				check.Equal(tc.literal, e.Literal)
				check.Equal(tc.overflow, e.Overflow)
				check.NotEmpty(e.Path)
			}
		})
	}
}

func TestAmbiguousImage(t *testing.T) {
	for _, tc := range []struct {
		doc    string
		entity string
		path   string
	}{
		{
			doc:    `<EtherCATInfo><Vendor><Id>1</Id><Image16x14>A</Image16x14><ImageData16x14>7D</ImageData16x14></Vendor></EtherCATInfo>`,
			entity: "Vendor",
			path:   "/EtherCATInfo/Vendor",
		},
		{
			doc:    wrap(`<Groups><Group><Type>A</Type><Name>A</Name><ImageFile16x14>a.bmp</ImageFile16x14><ImageData16x14>7D</ImageData16x14></Group></Groups>`),
			entity: "Group",
			path:   "/EtherCATInfo/Descriptions/Groups/Group[1]",
		},
	} {
		t.Run(tc.entity, func(t *testing.T) {
			_, err := convert(t, tc.doc)
			e, ok := esierr.As(err)
			if assert.True(t, ok) {
				assert.Equal(t, esierr.KindAmbiguousImageVariant, e.Kind)
				assert.Equal(t, tc.entity, e.Entity)
				assert.Equal(t, tc.path, e.Path)
			}
		})
	}
}

func TestFailFast(t *testing.T) {
	// the first bad device is reported, later ones are not looked at
	var devs []string
	for i := 0; i < 3; i++ {
		devs = append(devs, fmt.Sprintf(`<Device><Type ProductCode="%s">D</Type><Name>D</Name></Device>`,
			[]string{"#x1", "bad1", "bad2"}[i]))
	}
	_, err := convert(t, wrap(`<Devices>`+strings.Join(devs, "")+`</Devices>`))
	e, ok := esierr.As(err)
	if assert.True(t, ok) {
		assert.Equal(t, "bad1", e.Literal)
		assert.Equal(t, "/EtherCATInfo/Descriptions/Devices/Device[2]/Type", e.Path)
	}
}

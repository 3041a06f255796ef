/*
Package esi converts EtherCAT Slave Information (ESI) documents into a
validated, strongly typed description.

ESI files are the XML documents vendors ship to describe their
EtherCAT slaves: identity, sync managers, and the process data objects
exchanged with the master. Files from different vendor tools disagree
on which fields are present and how numbers are spelled; FromXMLString
accepts those dialects and either returns a complete EtherCATInfo or a
single *esierr.Error naming the offending entity, field and literal.

Conversion is a pure function of its input. Documents may be converted
from any number of goroutines at once.

	info, err := esi.FromXMLString(doc)
	if err != nil {
		return err
	}
	for _, dev := range info.Description.Devices {
		fmt.Println(dev.Names.Default(), len(dev.RxPdo), len(dev.TxPdo))
	}

Mailbox, distributed clock, EEPROM and FMMU sections are kept as
opaque XML, not decoded.
*/
package esi

// Package model defines the validated, strongly typed description of
// an EtherCAT slave information (ESI) document.
//
// Values are produced by package build and are never modified
// afterwards. Collections documented as zero-or-more are empty, not
// nil, when the document has none.
package model

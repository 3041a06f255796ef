// Package props extracts typed fields from property bags.
//
// A property bag is an element whose children form an ordered,
// heterogeneous sequence: some child kinds must appear once, others may
// repeat, and vendors add children of their own. The decoder turns
// each child into a Property (one Go type per modelled tag, Unknown for
// the rest) and the functions here select from the bag by type.
// Children nobody asks for are ignored, so documents carrying vendor
// extensions still convert.
package props

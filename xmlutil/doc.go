// Package xmlutil contains helpers for reading ESI elements out of an
// xmlquery document tree.
package xmlutil

/*
Package hexdec normalizes the numeric and boolean literals found in
ESI documents.

Vendor tools disagree on how identifiers are written: the same vendor
ID appears as "#x00000230", "0x230", "x230" or "560". Booleans appear
as "1"/"0" or "true"/"false". The functions here accept all of these
and return fixed-width values, so callers never see the dialect.
*/
package hexdec

/*
Package raw is the structural mirror of the ESI XML vocabulary.

Elements and attributes keep their schema names and every scalar is an
optional string, because vendor dialects disagree on what is required
and how values are spelled. Elements whose children form an ordered
mix of kinds (<Device>, <Module>, <RxPdo>, <TxPdo>) are decoded as
property bags, see package props.

Parse tokenizes the document with xmlquery; Decode walks an already
parsed tree.
*/
package raw

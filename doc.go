/*
Package headerseg splits the values of multi-valued HTTP header fields into
segments.

A header field may occur several times, and each occurrence may hold
several comma-separated elements. Segments walks all occurrences in order
and yields one Segment per element. Each Segment carries the element itself
(Data) and the whitespace and commas that precede it (Formatting), so that
joining Formatting and Data of all segments of an occurrence gives back
the occurrence byte for byte.

Commas inside double quotes do not separate elements. Quotes are not
validated: an unterminated quote runs to the end of its occurrence.
Segments never fails and never allocates a copy of the input; Span values
point into the original strings.

Split, Allow, Vary, IfMatch and friends are built on Segments and return
plain tokens for the common cases.
*/
package headerseg

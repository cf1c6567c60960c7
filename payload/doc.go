// Package payload defines the value model used by the notification builders.
//
// Raw events arrive from the messaging pipeline as loosely shaped documents.
// They are resolved once, at the boundary, into a closed tagged union:
//
//   - Null: an explicit null (also the zero Value)
//   - Scalar: a string, number or boolean, kept with its textual form
//   - Sequence: an ordered list of values
//   - Mapping: an ordered list of key/value fields (insertion order is kept)
//
// Decoders exist for JSON (streaming, order preserving), YAML nodes,
// protobuf Struct values and plain Go values. Event wraps a message body and
// exposes the fields the builders care about.
package payload

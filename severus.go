// Package severus provides a declarative extraction engine for parsed
// document trees. Callers compose small extractors (Text, Attr, Section,
// List, Tuple, Table, ...) describing what to pull out of a page, and apply
// the composition to a Node to obtain a typed result.
//
// This package contains domain types, interfaces and the combinator algebra
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// etree/, rod/).
package severus

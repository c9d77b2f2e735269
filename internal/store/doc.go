// Package store defines the document Collection used by the resource layer
// and its two implementations: MongoCollection over the MongoDB driver and
// Memory for tests and local runs.
//
// Documents are schemaless maps. Ids are MongoDB ObjectIDs rendered as 24-char
// hex strings, and nested driver types are converted to plain maps and slices
// on the way out.
package store

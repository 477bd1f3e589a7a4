package oasprune

// Package oasprune edits OpenAPI documents in memory: deleting an operation
// by operationId cascades into removal of every shared component and tag that
// no surviving part of the document reaches anymore.
//
// Design policy:
// - Keep the editor and the document model in the root package; put byte-level
//   decoding/encoding under specio/ and the CLI under cmd/oasprune.
// - The core performs no I/O and raises no errors on its normal paths: an
//   unknown operationId is reported through DeleteOperation's boolean, and
//   absent or dangling substructure is skipped during traversal.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  doc, err := specio.ReadFile("api.yaml", specio.Options{})
//  ed := oasprune.New(doc)
//  removed := ed.DeleteOperation("getUser")
//  out, err := specio.Marshal(ed.Document(), specio.FormatYAML)
//

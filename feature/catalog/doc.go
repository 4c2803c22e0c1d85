// Package catalog writes the loaded indices out of the process.
//
// The Emitter writes one indented JSON document per index into the output
// folder. Documents list records ordered by key and omit empty optional
// fields, so unchanged input yields byte-identical files.
//
// Two optional sinks read what the Emitter produced or what the pipeline
// built:
//
//   - Publisher uploads the output folder to an S3 compatible bucket so the
//     web frontend can fetch it.
//   - Store keeps a flat relational snapshot (catalog_records) that is
//     rebuilt per kind on every run. Diff reports what a rebuild changes
//     before Replace applies it.
package catalog

// Package io reads and writes per-repository health documents.
//
// # Overview
//
// A health run produces one [Document] per repository: the run ID, the
// repository name, when it was checked, and the nested check results.
// Documents are stored as YAML, one file per repository, so that a later
// run can rebuild the cross-repository report without re-checking:
//
//	run_id: 3f9c7a8e-5b1d-4e0a-9c41-2d6a1f0e7b55
//	repo: credentials
//	checked_at: 2024-05-02T10:41:07Z
//	results:
//	  dependencies:
//	    count: 4
//	    pypi:
//	      count: 2
//	      list: '["django==3.2.4","requests==2.25.1"]'
//
// # Import
//
// Use [ImportYAML] for one file, [ReadYAML] for any io.Reader, and
// [ImportDir] to load every *.yaml and *.yml file of a directory into a
// [metadata.ResultSet] ready for flattening. Files are read in name order.
//
// Nested mappings decode as map[string]any, the shape [metadata.Flatten]
// descends into.
//
// # Export
//
// Use [ExportYAML] to write a document to a file, or [WriteYAML] to write to
// any io.Writer. [FileName] gives the conventional file name for a
// repository.
//
// [metadata.ResultSet]: github.com/matzehuels/repohealth/pkg/metadata.ResultSet
// [metadata.Flatten]: github.com/matzehuels/repohealth/pkg/metadata.Flatten
package io

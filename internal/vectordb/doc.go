// Package vectordb defines database-agnostic types and the Service interface
// for vector similarity search.
//
// Application code depends on vectordb.Service; concrete implementations
// (currently Qdrant, in the qdrant package) adapt their SDK types to these.
// Image records are stored as payload fields (class_id, class_name,
// file_path, file_description, file_url) next to the embedding vector.
package vectordb

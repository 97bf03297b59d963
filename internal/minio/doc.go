// Package minio wraps the MinIO Go SDK for storing original uploaded images.
//
// The wrapper keeps the surface small: the configured bucket is created on
// startup, objects are uploaded with Put (which returns a direct URL),
// fetched with Get, and removed with Delete. PresignedGet produces
// time-limited download links for objects in non-public buckets.
//
// Configuration comes from MINIO_* environment variables; see NewConfig.
package minio

// Package service orchestrates the image flows: vectorize an image via the
// embedding API, insert the vector with its metadata into the vector store,
// search the store for similar images and ask the vision-language model to
// compare two images. It owns no I/O of its own; clients are injected.
package service

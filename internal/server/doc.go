// Package server exposes the image search service over HTTP.
//
// Responses use a uniform envelope {code, msg, data}: code 200 with msg
// "success" on success, code 201 with msg "fail" and the error text in data
// on failure. The HTTP status is 200 for both; clients dispatch on the code
// field. The /vectorize endpoint is the one exception and returns a bare
// {embedding, dim, success} object for compatibility with existing callers.
//
// Routes are grouped under /image_search by concern (upload, search,
// compare, minio), with /health and /vectorize at the root and collection
// teardown under /admin.
package server

// Package requestid correlates log records of one HTTP request.
//
// Middleware accepts a client-supplied X-Request-ID when it is short and made
// of [a-zA-Z0-9_-], otherwise it generates a UUIDv7. LoggerExtractor plugs
// the ID into the logger package's context extractors.
package requestid

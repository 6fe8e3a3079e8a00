// Package clientip resolves the caller's IP address behind proxies and keeps
// it in the request context for rate limiting and logs.
package clientip

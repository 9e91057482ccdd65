// Package clientip resolves the address of the client behind proxies.
//
// Middleware stores the resolved IP in the request context so access logs
// (via LoggerExtractor) and rate limiting (via KeyFunc) agree on it.
// Proxy headers are trusted as sent; deploy behind a proxy that overwrites
// them.
package clientip

// Package web is the HTTP surface of the contact form.
//
// ContactService renders the form page, accepts form submissions (plain or
// DataStar-driven) and exposes the same validation as a JSON API. Router
// adds request IDs, access logging, panic recovery and a health check.
package web

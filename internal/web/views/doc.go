// Package views holds the HTML components of the contact form site.
//
// Components are written as .templ files; the *_templ.go files next to them
// are generated with `templ generate` and committed.
package views

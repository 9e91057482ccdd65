package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent represents a templ component interface.
// This matches github.com/a-h/templ.Component without importing it.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption is an alias for datastar's PatchElementOption
type TemplOption = datastar.PatchElementOption

// WithTarget sets the target selector for where the component should be rendered
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component should be merged into the DOM
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch represents a component with its own rendering options
type TemplPatch struct {
	Component TemplComponent
	Options   []datastar.PatchElementOption
}

// Patch creates a TemplPatch with options for use with TemplMulti
func Patch(component TemplComponent, opts ...TemplOption) TemplPatch {
	return TemplPatch{
		Component: component,
		Options:   opts,
	}
}

type templResponse struct {
	component TemplComponent
	status    int
	options   []datastar.PatchElementOption
}

// Render outputs component via SSE for DataStar or HTML for regular requests
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(t.component, t.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	return t.component.Render(r.Context(), w)
}

// Templ creates a response from a templ component.
// DataStar requests receive an element patch over SSE, regular requests
// receive the rendered HTML.
//
//	return handler.Templ(views.Output(text), handler.WithTarget("#output"))
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templResponse{
		component: component,
		options:   opts,
	}
}

// TemplStatus is Templ with an explicit status code for regular requests.
// SSE responses always use 200 because the stream is already open.
func TemplStatus(status int, component TemplComponent, opts ...TemplOption) Response {
	return templResponse{
		component: component,
		status:    status,
		options:   opts,
	}
}

type templPartialResponse struct {
	partial TemplComponent
	full    Response
}

// Render sends the partial for DataStar requests and delegates to full otherwise.
func (t templPartialResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(t.partial)
	}
	return t.full.Render(w, r)
}

// TemplPartial renders partial for DataStar requests and the full response
// for regular requests.
func TemplPartial(partial TemplComponent, full Response) Response {
	return templPartialResponse{
		partial: partial,
		full:    full,
	}
}

type templMultiResponse struct {
	patches []TemplPatch
}

// Render sends multiple SSE patches for DataStar or concatenated HTML
func (t templMultiResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, patch := range t.patches {
			if err := sse.PatchElementTempl(patch.Component, patch.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	for _, patch := range t.patches {
		if err := patch.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// TemplMulti renders multiple components to different targets.
// For DataStar requests each component is a separate SSE patch with its own
// options; regular requests receive the components concatenated.
func TemplMulti(patches ...TemplPatch) Response {
	return templMultiResponse{
		patches: patches,
	}
}

package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// markup accumulates the first write error so components can emit HTML
// without checking every call.
type markup struct {
	w        io.Writer
	err      error
	children templ.Component
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

func (m *markup) attr(name, value string) {
	m.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// url writes a sanitized URL attribute.
func (m *markup) url(name, value string) {
	m.attr(name, string(templ.URL(value)))
}

func (m *markup) flag(name string, on bool) {
	if on {
		m.raw(" " + name)
	}
}

func (m *markup) open(tag string, attrs ...string) {
	m.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		m.attr(attrs[i], attrs[i+1])
	}
	m.raw(">")
}

func (m *markup) close(tag string) {
	m.raw("</" + tag + ">")
}

func (m *markup) element(tag string, content string, attrs ...string) {
	m.open(tag, attrs...)
	m.text(content)
	m.close(tag)
}

func (m *markup) render(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

func (m *markup) renderChildren(ctx context.Context) {
	m.render(ctx, m.children)
}

// component adapts a markup body into a templ.Component.
func component(body func(ctx context.Context, m *markup)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w, children: templ.GetChildren(ctx)}
		body(templ.ClearChildren(ctx), m)
		return m.err
	})
}

package templates

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"

	"github.com/a-h/templ"

	"github.com/louisbranch/navshell/internal/services/navshell/platform/httpx"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/observability"
)

// Boundary renders child in isolation. When child fails or panics nothing it
// wrote is kept; an empty nav marked data-render-error takes its place and
// the failure is logged, so the surrounding page still renders.
func Boundary(part string, child templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := renderIsolated(ctx, child, &buf); err != nil {
			log.Printf("render boundary failed part=%s request_id=%s err=%v", part, httpx.RequestIDFromContext(ctx), err)
			observability.RecordError(ctx, err)
			m := &markup{w: w}
			m.raw("<nav")
			m.attr("data-render-error", part)
			m.attr("aria-hidden", "true")
			m.raw("></nav>")
			return m.err
		}
		_, err := buf.WriteTo(w)
		return err
	})
}

func renderIsolated(ctx context.Context, child templ.Component, w io.Writer) (err error) {
	if child == nil {
		return nil
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("render panic: %v", recovered)
		}
	}()
	return child.Render(ctx, w)
}

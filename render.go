package seometa

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Component returns a templ component that writes the head tags for path,
// one element per line. Layouts embed it inside <head> with @head.Component(...).
func (h *Head) Component(path string, o Overrides) templ.Component {
	r := h.Merge(path, o)
	tags := BuildTags(r, h.Config)
	var scripts []string
	if h.jsonLD {
		scripts = []string{OrganizationJSONLD(h.Config), WebPageJSONLD(h.Config, r)}
	}
	return TagsComponent(tags, scripts...)
}

// TagsComponent renders tags followed by one application/ld+json script per
// entry in jsonLD. The JSON is written as-is; encoding/json already escapes
// '<', '>' and '&'.
func TagsComponent(tags []Tag, jsonLD ...string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, t := range tags {
			if _, err := io.WriteString(w, t.HTML()+"\n"); err != nil {
				return err
			}
		}
		for _, js := range jsonLD {
			if _, err := io.WriteString(w, `<script type="application/ld+json">`+js+"</script>\n"); err != nil {
				return err
			}
		}
		return nil
	})
}

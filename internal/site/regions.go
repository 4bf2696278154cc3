package site

import (
	"fmt"
	"html/template"

	"github.com/wilsonudomisor/folio/internal/region"
)

func esc(s string) string { return template.HTMLEscapeString(s) }

// imageHTML renders an image region as an img tag, or a marked placeholder
// when no layer supplies a value.
func imageHTML(st region.State, alt string) template.HTML {
	if st.Value == "" {
		return template.HTML(fmt.Sprintf(
			`<div class="image-placeholder" data-edit-image="%s">%s</div>`,
			esc(st.ID), esc(alt)))
	}
	return template.HTML(fmt.Sprintf(
		`<img src="%s" alt="%s" data-edit-image="%s">`,
		esc(st.Value), esc(alt), esc(st.ID)))
}

// textHTML renders a text region. The edit attribute is always present; it
// only does anything when the client script is served and edit mode is on.
func textHTML(st region.State) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<span data-edit-text="%s">%s</span>`, esc(st.ID), esc(st.Value)))
}

// linkHTML renders a link region as an anchor. A region with no value is
// omitted entirely unless the edit UI is active, in which case an unset
// anchor is kept so the link can be supplied in place.
func linkHTML(st region.State, label string, editUI bool) template.HTML {
	if st.Value == "" {
		if !editUI {
			return ""
		}
		return template.HTML(fmt.Sprintf(
			`<a href="#" class="unset" data-edit-link="%s">%s</a>`, esc(st.ID), esc(label)))
	}
	return template.HTML(fmt.Sprintf(
		`<a href="%s" data-edit-link="%s">%s</a>`, esc(st.Value), esc(st.ID), esc(label)))
}

package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/wilsonudomisor/folio/internal/project"
)

// cardData is the template input for one project card.
type cardData struct {
	Title      string
	Tagline    string
	ImpactLine string
	RoleType   string
	Timeline   string
	Category   string
	Tools      []string
	Links      map[string]string
	DetailURL  string
	Featured   bool
}

// Card renders a project card. The featured variant leads with the problem
// statement and impact line and offers the extra artifact links; the compact
// variant shows the tagline and role detail.
func Card(p project.Project, featured bool) template.HTML {
	d := cardData{
		Title:      p.Title,
		Tagline:    p.Tagline,
		ImpactLine: p.RoleDetail,
		RoleType:   p.RoleType,
		Timeline:   p.Timeline,
		Category:   p.Category,
		Tools:      p.Tools,
		Links:      p.Links,
		DetailURL:  project.DetailPage(p.ID),
		Featured:   featured,
	}
	if featured {
		d.Tagline = p.Problem
		d.ImpactLine = p.Impact
	}

	var buf bytes.Buffer
	if err := cardTmpl.Execute(&buf, d); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}

// Cards renders a card per project, concatenated in order.
func Cards(projects []project.Project, featured bool) template.HTML {
	var buf bytes.Buffer
	for _, p := range projects {
		buf.WriteString(string(Card(p, featured)))
	}
	return template.HTML(buf.String())
}

// CountLabel is the item-count line shown above the project index, with
// correct pluralization at exactly one project.
func CountLabel(n int) string {
	if n == 1 {
		return "Showing 1 project"
	}
	return fmt.Sprintf("Showing %d projects", n)
}

// FilterByCategory returns the projects in the given category. The "all"
// sentinel disables filtering and returns the full list.
func FilterByCategory(projects []project.Project, category string) []project.Project {
	if category == "all" {
		return projects
	}
	var out []project.Project
	for _, p := range projects {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

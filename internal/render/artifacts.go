package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/wilsonudomisor/folio/internal/project"
)

// ArtifactEditKey returns the region identifier for an image artifact's
// placeholder, keyed by project and position.
func ArtifactEditKey(projectID string, index int) string {
	return fmt.Sprintf("project_%s_artifact_%d", projectID, index)
}

// ArchitectureEditKey returns the region identifier for a project's
// architecture diagram placeholder.
func ArchitectureEditKey(projectID string) string {
	return "project_" + projectID + "_architecture"
}

// ArtifactTile renders one artifact, dispatching on its tagged variant.
// An unknown variant renders nothing.
func ArtifactTile(a project.Artifact, projectID string, index int) template.HTML {
	var buf bytes.Buffer
	switch a.Type {
	case "link":
		if err := linkArtifactTmpl.Execute(&buf, a); err != nil {
			return ""
		}
	case "image":
		alt := a.Caption
		if alt == "" {
			alt = a.Title
		}
		d := struct {
			Title, Caption, Src, Alt, EditKey string
		}{a.Title, a.Caption, a.Src, alt, ArtifactEditKey(projectID, index)}
		if err := imageArtifactTmpl.Execute(&buf, d); err != nil {
			return ""
		}
	default:
		return ""
	}
	return template.HTML(buf.String())
}

// ArtifactGallery renders all artifacts of a project in order.
func ArtifactGallery(p project.Project) template.HTML {
	var buf bytes.Buffer
	for i, a := range p.Artifacts {
		buf.WriteString(string(ArtifactTile(a, p.ID, i)))
	}
	return template.HTML(buf.String())
}

package render

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/wilsonudomisor/folio/internal/project"
	"github.com/wilsonudomisor/folio/internal/region"
)

// Detail page region identifiers. The binder produces content only for the
// regions a page actually declares; anything else is left untouched.
const (
	RegionProjectTitle     = "projectTitle"
	RegionSnapshotProblem  = "snapshotProblem"
	RegionSnapshotRole     = "snapshotRole"
	RegionSnapshotStack    = "snapshotStack"
	RegionSnapshotTimeline = "snapshotTimeline"
	RegionLinkGithub       = "linkGithub"
	RegionLinkDrive        = "linkDrive"
	RegionLinkCanva        = "linkCanva"
	RegionContextGoal      = "contextGoal"
	RegionContextGoalBody  = "contextGoalBody"
	RegionWhatBuiltList    = "whatBuiltList"
	RegionChallengesList   = "challengesList"
	RegionOutcomeList      = "outcomeList"
	RegionArchitectureBox  = "architectureBox"
	RegionArtifactsGallery = "artifactsGallery"
)

// BindDetail copies a resolved record's fields into the named regions the
// detail page declares, consulting the mounted region states so persisted
// overrides win over record-derived content: text overrides replace the
// record's text, link overrides its links, and image overrides become the
// artifact or architecture source. states may be nil when no regions are
// mounted. Regions the page does not declare are absent from the map, and
// a record without an id yields nil (the dependent render path exits
// early).
func BindDetail(p project.Project, page region.Page, states map[string]region.State) map[string]template.HTML {
	if p.ID == "" {
		return nil
	}
	p = applyImageOverrides(p, states)

	bound := make(map[string]template.HTML)
	put := func(id string, content template.HTML) {
		if page.Has(id) {
			bound[id] = content
		}
	}
	putText := func(id, text string) {
		if v, ok := overrideValue(states, id); ok {
			text = v
		}
		put(id, editableText(id, text))
	}
	putLink := func(id, url string) {
		if v, ok := overrideValue(states, id); ok {
			url = v
		}
		if url != "" {
			put(id, template.HTML(template.HTMLEscapeString(url)))
		}
	}

	putText(RegionProjectTitle, p.Title)
	putText(RegionSnapshotProblem, p.Problem)
	putText(RegionSnapshotRole, p.RoleType+" — "+p.RoleDetail)
	putText(RegionSnapshotStack, strings.Join(p.Tools, ", "))
	putText(RegionSnapshotTimeline, p.Timeline)
	putText(RegionContextGoal, p.ContextGoal)

	// The rendered body follows the same stored text the plain region does.
	contextGoal := p.ContextGoal
	if v, ok := overrideValue(states, RegionContextGoal); ok {
		contextGoal = v
	}
	put(RegionContextGoalBody, Markdown(contextGoal))

	putLink(RegionLinkGithub, p.Links["github"])
	putLink(RegionLinkDrive, p.Links["drive"])
	putLink(RegionLinkCanva, p.Links["canva"])

	put(RegionWhatBuiltList, listHTML(p.WhatIBuilt))
	put(RegionChallengesList, listHTML(p.Challenges))
	put(RegionOutcomeList, listHTML(p.OutcomeDetails))

	put(RegionArchitectureBox, architectureHTML(p))
	put(RegionArtifactsGallery, ArtifactGallery(p))

	return bound
}

// overrideValue reports the persisted override for a region, if the mounted
// state carries one.
func overrideValue(states map[string]region.State, id string) (string, bool) {
	st, ok := states[id]
	if !ok || st.Source != region.SourceOverride {
		return "", false
	}
	return st.Value, true
}

// editableText wraps escaped text with its region attribute so the client
// script can edit it in place.
func editableText(id, text string) template.HTML {
	return template.HTML(`<span data-edit-text="` + template.HTMLEscapeString(id) + `">` +
		template.HTMLEscapeString(text) + `</span>`)
}

// applyImageOverrides substitutes persisted image overrides into the record
// before rendering, so the architecture diagram and image artifacts display
// the stored value ahead of the record's own source. Modified slices are
// copied; the caller's record stays untouched.
func applyImageOverrides(p project.Project, states map[string]region.State) project.Project {
	if len(states) == 0 {
		return p
	}
	if v, ok := overrideValue(states, ArchitectureEditKey(p.ID)); ok {
		arch := project.Architecture{}
		if p.Architecture != nil {
			arch = *p.Architecture
		}
		arch.Diagram = v
		p.Architecture = &arch
	}
	var artifacts []project.Artifact
	for i, a := range p.Artifacts {
		if a.Type != "image" {
			continue
		}
		v, ok := overrideValue(states, ArtifactEditKey(p.ID, i))
		if !ok {
			continue
		}
		if artifacts == nil {
			artifacts = make([]project.Artifact, len(p.Artifacts))
			copy(artifacts, p.Artifacts)
		}
		artifacts[i].Src = v
	}
	if artifacts != nil {
		p.Artifacts = artifacts
	}
	return p
}

func listHTML(items []string) template.HTML {
	var buf bytes.Buffer
	if err := listTmpl.Execute(&buf, items); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}

func architectureHTML(p project.Project) template.HTML {
	d := struct {
		Title, Diagram, Note, EditKey string
	}{Title: p.Title, EditKey: ArchitectureEditKey(p.ID)}
	if p.Architecture != nil {
		d.Diagram = p.Architecture.Diagram
		d.Note = p.Architecture.Note
	}
	var buf bytes.Buffer
	if err := architectureTmpl.Execute(&buf, d); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}

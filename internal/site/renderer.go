// Package site renders the portfolio pages. The same renderer backs both the
// live server, which composes each page per request so overrides show up
// immediately, and the static generator, which bakes the current state into
// plain files.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/wilsonudomisor/folio/internal/app"
	"github.com/wilsonudomisor/folio/internal/project"
	"github.com/wilsonudomisor/folio/internal/region"
	"github.com/wilsonudomisor/folio/internal/render"
)

// ErrNoSuchPage reports a request for a page the site does not have.
var ErrNoSuchPage = errors.New("no such page")

// FeaturedMax caps how many featured cards the home page shows.
const FeaturedMax = 4

// Renderer produces complete HTML pages from the current application state.
// editUI controls whether the edit toggle and client script are emitted;
// static builds turn it off.
type Renderer struct {
	app    *app.App
	editUI bool
}

func NewRenderer(a *app.App, editUI bool) *Renderer {
	return &Renderer{app: a, editUI: editUI}
}

// PageNames lists every page the site currently has, detail pages included.
func (r *Renderer) PageNames(ctx context.Context) []string {
	names := []string{"index.html", "projects.html", "about.html", "contact.html"}
	for _, p := range r.app.MergedProjects(ctx) {
		names = append(names, project.DetailPage(p.ID))
	}
	return names
}

// Render produces the named page. "" and "/" map to the home page.
func (r *Renderer) Render(ctx context.Context, name string) ([]byte, error) {
	name = strings.TrimPrefix(name, "/")
	switch name {
	case "", "index.html":
		return r.renderIndex(ctx)
	case "projects.html":
		return r.renderProjects(ctx)
	case "about.html":
		return r.renderAbout(ctx)
	case "contact.html":
		return r.renderContact(ctx)
	}
	if id, ok := detailPageID(name); ok {
		return r.renderDetail(ctx, id)
	}
	return nil, fmt.Errorf("%w: %s", ErrNoSuchPage, name)
}

func detailPageID(name string) (string, bool) {
	if !strings.HasPrefix(name, "project-") || !strings.HasSuffix(name, ".html") {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(name, "project-"), ".html")
	return id, id != ""
}

type layoutData struct {
	Title     string
	SiteTitle string
	Body      template.HTML
	EditUI    bool
	EditOn    bool
	DataError string
}

func (r *Renderer) finish(title string, body template.HTML) ([]byte, error) {
	data := layoutData{
		Title:     title,
		SiteTitle: r.app.Cfg.SiteTitle,
		Body:      body,
		EditUI:    r.editUI,
		EditOn:    r.editUI && r.app.Mode.On(),
		DataError: r.app.DataError(),
	}
	var buf bytes.Buffer
	if err := layoutTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering layout: %w", err)
	}
	return buf.Bytes(), nil
}

// states mounts the page and indexes the resolved regions by id.
func (r *Renderer) states(ctx context.Context, page region.Page) map[string]region.State {
	byID := make(map[string]region.State)
	for _, st := range r.app.Control.Mount(ctx, page) {
		byID[st.ID] = st
	}
	return byID
}

func (r *Renderer) renderIndex(ctx context.Context) ([]byte, error) {
	st := r.states(ctx, indexPage())
	featured := project.Featured(r.app.MergedProjects(ctx), FeaturedMax)

	data := struct {
		HeroPhoto     template.HTML
		OwnerName     template.HTML
		OwnerTitle    template.HTML
		ProofLine     template.HTML
		ResumeLink    template.HTML
		GithubLink    template.HTML
		LinkedInLink  template.HTML
		FeaturedCards template.HTML
	}{
		HeroPhoto:     imageHTML(st["images.homeHeroPhoto"], "Hero photo"),
		OwnerName:     textHTML(st["owner.name"]),
		OwnerTitle:    textHTML(st["owner.title"]),
		ProofLine:     textHTML(st["owner.proofLine"]),
		ResumeLink:    linkHTML(st["links.resume"], "Resume", r.editUI),
		GithubLink:    linkHTML(st["links.githubProfile"], "GitHub", r.editUI),
		LinkedInLink:  linkHTML(st["links.linkedin"], "LinkedIn", r.editUI),
		FeaturedCards: render.Cards(featured, true),
	}
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering index: %w", err)
	}
	return r.finish(r.app.Cfg.SiteTitle, template.HTML(buf.String()))
}

func (r *Renderer) renderProjects(ctx context.Context) ([]byte, error) {
	projects := r.app.MergedProjects(ctx)
	data := struct {
		Categories []string
		CountLabel string
		Cards      template.HTML
	}{
		Categories: categories(projects),
		CountLabel: render.CountLabel(len(projects)),
		Cards:      render.Cards(projects, false),
	}
	var buf bytes.Buffer
	if err := projectsTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering projects: %w", err)
	}
	return r.finish("Projects", template.HTML(buf.String()))
}

func (r *Renderer) renderAbout(ctx context.Context) ([]byte, error) {
	st := r.states(ctx, aboutPage())
	data := struct {
		AboutHeroPhoto template.HTML
		Headshot       template.HTML
		OwnerName      template.HTML
		ProofLine      template.HTML
	}{
		AboutHeroPhoto: imageHTML(st["images.aboutHeroPhoto"], "About photo"),
		Headshot:       imageHTML(st["images.headshot"], "Headshot"),
		OwnerName:      textHTML(st["owner.name"]),
		ProofLine:      textHTML(st["owner.proofLine"]),
	}
	var buf bytes.Buffer
	if err := aboutTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering about: %w", err)
	}
	return r.finish("About", template.HTML(buf.String()))
}

func (r *Renderer) renderContact(ctx context.Context) ([]byte, error) {
	st := r.states(ctx, contactPage())
	data := struct {
		EmailLink    template.HTML
		WhatsAppLink template.HTML
		LinkedInLink template.HTML
	}{
		EmailLink:    linkHTML(st["links.email"], "Email", r.editUI),
		WhatsAppLink: linkHTML(st["links.whatsappNumber"], "WhatsApp", r.editUI),
		LinkedInLink: linkHTML(st["links.linkedin"], "LinkedIn", r.editUI),
	}
	var buf bytes.Buffer
	if err := contactTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering contact: %w", err)
	}
	return r.finish("Contact", template.HTML(buf.String()))
}

func (r *Renderer) renderDetail(ctx context.Context, id string) ([]byte, error) {
	p, ok := r.app.MergedProject(ctx, id)
	if !ok {
		return nil, fmt.Errorf("%w: project %s", ErrNoSuchPage, id)
	}
	page := detailPage(p)
	states := r.states(ctx, page)

	bound := render.BindDetail(p, page, states)
	if bound == nil {
		return nil, fmt.Errorf("%w: project %s", ErrNoSuchPage, id)
	}
	data := struct {
		Bound map[string]template.HTML
	}{Bound: bound}
	var buf bytes.Buffer
	if err := detailTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering project %s: %w", id, err)
	}
	return r.finish(p.Title, template.HTML(buf.String()))
}

func categories(projects []project.Project) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range projects {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

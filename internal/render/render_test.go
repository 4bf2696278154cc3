package render

import (
	"strings"
	"testing"

	"github.com/wilsonudomisor/folio/internal/project"
	"github.com/wilsonudomisor/folio/internal/region"
)

func sampleProject() project.Project {
	return project.Project{
		ID:         "p1",
		Title:      "Batch Medallion Pipeline",
		Tagline:    "Bronze to gold in one DAG",
		Problem:    "Raw events were unusable",
		Impact:     "Reporting lag cut to hours",
		RoleType:   "Data Engineer",
		RoleDetail: "Sole builder",
		Timeline:   "2024",
		Category:   "batch",
		Featured:   true,
		Links:      map[string]string{"github": "https://github.com/x/p1", "drive": "https://drive.example/p1"},
		Tools:      []string{"SQL", "Airflow"},
		WhatIBuilt: []string{"Ingestion DAG", "dbt models"},
	}
}

func TestCardCompactVariant(t *testing.T) {
	html := string(Card(sampleProject(), false))

	// Compact cards show tagline and role detail.
	if !strings.Contains(html, "Bronze to gold in one DAG") {
		t.Error("compact card should show the tagline")
	}
	if !strings.Contains(html, "Sole builder") {
		t.Error("compact card should show the role detail as impact line")
	}
	if strings.Contains(html, "Raw events were unusable") {
		t.Error("compact card should not show the problem statement")
	}
	if !strings.Contains(html, `href="project-p1.html"`) {
		t.Error("card should link to the generated detail page")
	}
	// Drive/Canva actions are featured-only.
	if strings.Contains(html, "Drive") {
		t.Error("compact card should not offer the Drive action")
	}
}

func TestCardFeaturedVariant(t *testing.T) {
	html := string(Card(sampleProject(), true))

	if !strings.Contains(html, "Raw events were unusable") {
		t.Error("featured card should lead with the problem statement")
	}
	if !strings.Contains(html, "Reporting lag cut to hours") {
		t.Error("featured card should show the impact line")
	}
	if !strings.Contains(html, "Drive") {
		t.Error("featured card should offer the Drive action")
	}
	for _, tool := range []string{"SQL", "Airflow"} {
		if !strings.Contains(html, ">"+tool+"<") {
			t.Errorf("card should show tool tag %q", tool)
		}
	}
}

func TestCardEscapesContent(t *testing.T) {
	p := sampleProject()
	p.Title = `<script>alert("x")</script>`
	html := string(Card(p, false))
	if strings.Contains(html, "<script>") {
		t.Error("card must escape record content")
	}
}

func TestCountLabel(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "Showing 0 projects"},
		{1, "Showing 1 project"},
		{2, "Showing 2 projects"},
		{10, "Showing 10 projects"},
	}
	for _, tt := range tests {
		if got := CountLabel(tt.n); got != tt.want {
			t.Errorf("CountLabel(%d): got %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFilterByCategory(t *testing.T) {
	projects := []project.Project{
		{ID: "a", Category: "batch"},
		{ID: "b", Category: "realtime"},
		{ID: "c", Category: "batch"},
	}

	batch := FilterByCategory(projects, "batch")
	if len(batch) != 2 {
		t.Errorf("batch filter: got %d, want 2", len(batch))
	}

	// "all" is a sentinel: selecting it after another filter restores the
	// full list and the matching count label.
	all := FilterByCategory(projects, "all")
	if len(all) != len(projects) {
		t.Errorf("all filter: got %d, want %d", len(all), len(projects))
	}
	if CountLabel(len(all)) != "Showing 3 projects" {
		t.Errorf("count label after reset: %q", CountLabel(len(all)))
	}

	if got := FilterByCategory(projects, "ml"); len(got) != 0 {
		t.Errorf("unknown category: got %d, want 0", len(got))
	}
}

func TestArtifactTileLink(t *testing.T) {
	a := project.Artifact{Type: "link", Title: "Repo", Caption: "Source code", URL: "https://github.com/x"}
	html := string(ArtifactTile(a, "p1", 0))
	if !strings.Contains(html, "Open artifact") || !strings.Contains(html, "https://github.com/x") {
		t.Errorf("link artifact markup: %s", html)
	}
}

func TestArtifactTileImage(t *testing.T) {
	withSrc := project.Artifact{Type: "image", Title: "Dashboard", Caption: "Grafana", Src: "assets/img/dash.jpg"}
	html := string(ArtifactTile(withSrc, "p1", 0))
	if !strings.Contains(html, `<img src="assets/img/dash.jpg"`) {
		t.Errorf("image artifact should render an img: %s", html)
	}

	// Without a source: a placeholder claimed by the region controller.
	noSrc := project.Artifact{Type: "image", Title: "Dashboard", Caption: "Grafana"}
	html = string(ArtifactTile(noSrc, "p1", 2))
	if !strings.Contains(html, `data-edit-image-key="project_p1_artifact_2"`) {
		t.Errorf("placeholder should carry the region key: %s", html)
	}
}

func TestArtifactTileUnknownVariant(t *testing.T) {
	if got := ArtifactTile(project.Artifact{Type: "video"}, "p1", 0); got != "" {
		t.Errorf("unknown variant should render nothing, got %q", got)
	}
}

func detailPage() region.Page {
	return region.Page{Name: "detail", Regions: []region.Region{
		{ID: RegionProjectTitle, Kind: region.Text},
		{ID: RegionSnapshotRole, Kind: region.Text},
		{ID: RegionSnapshotStack, Kind: region.Text},
		{ID: RegionLinkGithub, Kind: region.Link},
		{ID: RegionWhatBuiltList, Kind: region.Markup},
		{ID: RegionArchitectureBox, Kind: region.Markup},
		{ID: RegionArtifactsGallery, Kind: region.Markup},
	}}
}

// overrideState builds the mounted-state entry a persisted override produces.
func overrideState(id, value string) region.State {
	return region.State{
		Region: region.Region{ID: id},
		Value:  value,
		Source: region.SourceOverride,
	}
}

func TestBindDetail(t *testing.T) {
	p := sampleProject()
	bound := BindDetail(p, detailPage(), nil)

	if got := string(bound[RegionProjectTitle]); got != `<span data-edit-text="projectTitle">Batch Medallion Pipeline</span>` {
		t.Errorf("title region: %q", got)
	}
	if !strings.Contains(string(bound[RegionSnapshotRole]), "Data Engineer — Sole builder") {
		t.Errorf("role region: %q", bound[RegionSnapshotRole])
	}
	if !strings.Contains(string(bound[RegionSnapshotStack]), "SQL, Airflow") {
		t.Errorf("stack region: %q", bound[RegionSnapshotStack])
	}
	if got := string(bound[RegionLinkGithub]); got != "https://github.com/x/p1" {
		t.Errorf("github link region: %q", got)
	}
	if !strings.Contains(string(bound[RegionWhatBuiltList]), "<li>Ingestion DAG</li>") {
		t.Errorf("list region: %q", bound[RegionWhatBuiltList])
	}

	// Regions the page does not declare stay untouched.
	if _, ok := bound[RegionSnapshotProblem]; ok {
		t.Error("undeclared region must not be bound")
	}
	if _, ok := bound[RegionOutcomeList]; ok {
		t.Error("undeclared region must not be bound")
	}
}

func TestBindDetailTextOverrideWins(t *testing.T) {
	p := sampleProject()
	states := map[string]region.State{
		RegionProjectTitle: overrideState(RegionProjectTitle, "Edited Title"),
	}
	bound := BindDetail(p, detailPage(), states)

	got := string(bound[RegionProjectTitle])
	if !strings.Contains(got, "Edited Title") {
		t.Errorf("title region should show the stored value: %q", got)
	}
	if strings.Contains(got, "Batch Medallion Pipeline") {
		t.Errorf("record title should be replaced: %q", got)
	}
	if !strings.Contains(got, `data-edit-text="projectTitle"`) {
		t.Errorf("title region should stay editable: %q", got)
	}
}

func TestBindDetailLinkOverrideWins(t *testing.T) {
	p := sampleProject()
	states := map[string]region.State{
		RegionLinkGithub: overrideState(RegionLinkGithub, "https://github.com/x/fork"),
	}
	bound := BindDetail(p, detailPage(), states)
	if got := string(bound[RegionLinkGithub]); got != "https://github.com/x/fork" {
		t.Errorf("github link region: %q", got)
	}
}

func TestBindDetailArtifactImageOverride(t *testing.T) {
	p := sampleProject()
	p.Artifacts = []project.Artifact{
		{Type: "image", Title: "Dashboard", Caption: "Grafana"},
		{Type: "link", Title: "Repo", URL: "https://github.com/x/p1"},
	}
	key := ArtifactEditKey(p.ID, 0)
	states := map[string]region.State{
		key: overrideState(key, "data:image/png;base64,QUJD"),
	}
	bound := BindDetail(p, detailPage(), states)

	gallery := string(bound[RegionArtifactsGallery])
	if !strings.Contains(gallery, `<img src="data:image/png;base64,QUJD"`) {
		t.Errorf("uploaded image should replace the placeholder: %s", gallery)
	}
	if strings.Contains(gallery, `data-edit-image-key="project_p1_artifact_0"`) {
		t.Errorf("placeholder should be gone once an image is stored: %s", gallery)
	}
	// The record handed in stays untouched.
	if p.Artifacts[0].Src != "" {
		t.Errorf("caller's artifact mutated: %q", p.Artifacts[0].Src)
	}
}

func TestBindDetailArchitectureOverride(t *testing.T) {
	p := sampleProject()
	key := ArchitectureEditKey(p.ID)
	states := map[string]region.State{
		key: overrideState(key, "data:image/png;base64,REVG"),
	}
	bound := BindDetail(p, detailPage(), states)

	arch := string(bound[RegionArchitectureBox])
	if !strings.Contains(arch, `src="data:image/png;base64,REVG"`) {
		t.Errorf("stored diagram should render as the architecture image: %s", arch)
	}
}

func TestBindDetailArchitecture(t *testing.T) {
	p := sampleProject()
	p.Architecture = &project.Architecture{Diagram: "assets/img/arch.jpg", Note: "Bronze, silver, gold."}
	bound := BindDetail(p, detailPage(), nil)
	arch := string(bound[RegionArchitectureBox])
	if !strings.Contains(arch, `src="assets/img/arch.jpg"`) || !strings.Contains(arch, "Bronze, silver, gold.") {
		t.Errorf("architecture region: %s", arch)
	}

	// Without a diagram: a claimable placeholder.
	p.Architecture = nil
	bound = BindDetail(p, detailPage(), nil)
	arch = string(bound[RegionArchitectureBox])
	if !strings.Contains(arch, `data-edit-image-key="project_p1_architecture"`) {
		t.Errorf("architecture placeholder: %s", arch)
	}
}

func TestBindDetailMissingRecord(t *testing.T) {
	if bound := BindDetail(project.Project{}, detailPage(), nil); bound != nil {
		t.Errorf("missing record should yield nil, got %v", bound)
	}
}

func TestBindDetailOmitsEmptyLinks(t *testing.T) {
	p := sampleProject()
	p.Links = map[string]string{}
	page := region.Page{Name: "detail", Regions: []region.Region{
		{ID: RegionLinkGithub, Kind: region.Link},
	}}
	bound := BindDetail(p, page, nil)
	if _, ok := bound[RegionLinkGithub]; ok {
		t.Error("empty link value should leave the region unbound")
	}
}

func TestMarkdown(t *testing.T) {
	html := string(Markdown("A **goal** with `SELECT 1`"))
	if !strings.Contains(html, "<strong>goal</strong>") {
		t.Errorf("markdown emphasis missing: %s", html)
	}
	if !strings.Contains(html, "<code>") {
		t.Errorf("markdown code span missing: %s", html)
	}
}

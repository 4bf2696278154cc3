package render

import "html/template"

// cardTemplate is the project card fragment, shared by the compact and
// featured variants; Tagline and ImpactLine are chosen per variant.
const cardTemplate = `<article class="card" data-category="{{.Category}}">
  <h3>{{.Title}}</h3>
  <p>{{.Tagline}}</p>
  <p class="impact-line">{{.ImpactLine}}</p>
  <div class="meta">
    <span>{{.RoleType}}</span>
    <span>{{.Timeline}}</span>
    <span>{{.Category}}</span>
  </div>
  <div class="tags">
    {{range .Tools}}<span class="tag">{{.}}</span>{{end}}
  </div>
  <div class="card-actions">
    <a class="btn primary" href="{{.DetailURL}}">Read case study</a>
    {{if .Links.github}}<a class="btn" href="{{.Links.github}}" target="_blank" rel="noopener">GitHub</a>{{end}}
    {{if .Featured}}{{if .Links.drive}}<a class="btn" href="{{.Links.drive}}" target="_blank" rel="noopener">Drive</a>{{end}}
    {{if .Links.canva}}<a class="btn" href="{{.Links.canva}}" target="_blank" rel="noopener">Canva</a>{{end}}{{end}}
  </div>
</article>
`

// linkArtifactTemplate renders the captioned external-link variant.
const linkArtifactTemplate = `<div class="artifact">
  <div class="meta">{{.Title}}</div>
  <p class="helper">{{.Caption}}</p>
  <a class="btn secondary" href="{{.URL}}" target="_blank" rel="noopener">Open artifact</a>
</div>
`

// imageArtifactTemplate renders the image variant; without a known source it
// emits a placeholder tagged for the editable-region controller to claim.
const imageArtifactTemplate = `<div class="artifact">
  <div class="meta">{{.Title}}</div>
  {{if .Src}}<img src="{{.Src}}" alt="{{.Alt}}">{{else}}<div class="artifact-placeholder editable-image" data-edit-image-key="{{.EditKey}}">Image placeholder</div>{{end}}
  <p class="helper">{{.Caption}}</p>
</div>
`

// architectureTemplate renders the architecture box of a detail page.
const architectureTemplate = `{{if .Diagram}}<img src="{{.Diagram}}" alt="Architecture diagram for {{.Title}}">{{else}}<div class="diagram-placeholder editable-image" data-edit-image-key="{{.EditKey}}">Architecture diagram placeholder</div>{{end}}{{if .Note}}
<p class="helper">{{.Note}}</p>{{end}}`

// listTemplate renders the free-text item lists of a detail page.
const listTemplate = `{{range .}}<li>{{.}}</li>{{end}}`

var (
	cardTmpl          = template.Must(template.New("card").Parse(cardTemplate))
	linkArtifactTmpl  = template.Must(template.New("linkArtifact").Parse(linkArtifactTemplate))
	imageArtifactTmpl = template.Must(template.New("imageArtifact").Parse(imageArtifactTemplate))
	architectureTmpl  = template.Must(template.New("architecture").Parse(architectureTemplate))
	listTmpl          = template.Must(template.New("list").Parse(listTemplate))
)

// Package region implements the editable-region subsystem: named page
// regions (image, link, text) bound to persisted overrides, and the edit-mode
// state machine that gates in-place text editing.
package region

// Kind selects the editing capability a region exposes.
type Kind string

const (
	Image Kind = "image"
	Link  Kind = "link"
	Text  Kind = "text"
	// Markup regions receive content composed by the renderer and expose
	// no in-place editing capability of their own.
	Markup Kind = "markup"
)

// Region is one marked area of a page. ID doubles as the logical override
// key; ConfigPath, when set, names the bundled-config default consulted when
// no override is persisted; Fallback is the built-in value from the markup.
type Region struct {
	ID         string
	Kind       Kind
	ConfigPath string
	Fallback   string
}

// Page declares which named regions a page contains. The controller iterates
// this declaration instead of probing the rendered markup, so a region
// missing from a page is a first-class case: it simply is not declared.
type Page struct {
	Name    string
	Regions []Region
}

// Has reports whether the page declares a region with the given id.
func (p Page) Has(id string) bool {
	for _, r := range p.Regions {
		if r.ID == id {
			return true
		}
	}
	return false
}

// Source identifies which layer supplied a region's displayed value.
type Source string

const (
	SourceOverride    Source = "override"
	SourceConfig      Source = "config"
	SourceFallback    Source = "fallback"
	SourcePlaceholder Source = "placeholder"
)

// State is a region's resolved presentation: the value to display, the layer
// it came from, and whether the region is currently editable in place.
type State struct {
	Region
	Value    string
	Source   Source
	Editable bool
}

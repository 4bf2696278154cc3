// Package preview is a development-only tool for trying out replacement
// photos. Uploads are held in memory under transient tokens and served back
// for visual comparison; nothing is persisted, and making a change permanent
// means replacing the asset file the target maps to.
package preview

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Targets maps preview slot ids to the asset file a permanent replacement
// must overwrite.
var Targets = map[string]string{
	"hero-home-photo":                        "assets/img/hero-home.jpg",
	"headshot-photo":                         "assets/img/headshot.jpg",
	"hero-about-photo":                       "assets/img/hero-about.jpg",
	"batch-medallion-architecture":           "assets/img/batch-medallion-architecture.jpg",
	"batch-medallion-artifact-0":             "assets/img/batch-medallion-artifact-0.jpg",
	"realtime-risk-architecture":             "assets/img/realtime-risk-architecture.jpg",
	"realtime-risk-artifact-0":               "assets/img/realtime-risk-artifact-0.jpg",
	"platform-architecture":                  "assets/img/platform-architecture.jpg",
	"platform-artifact-0":                    "assets/img/platform-artifact-0.jpg",
	"clean-health-pipeline-architecture":     "assets/img/clean-health-pipeline-architecture.jpg",
	"clean-health-pipeline-artifact-0":       "assets/img/clean-health-pipeline-artifact-0.jpg",
	"template-architecture":                  "assets/img/template-architecture.jpg",
	"template-artifact-0":                    "assets/img/template-artifact-0.jpg",
}

// entry is one uploaded preview image.
type entry struct {
	target string
	mime   string
	data   []byte
}

// Previews holds uploaded images in memory, keyed by transient token.
type Previews struct {
	mu      sync.Mutex
	entries map[string]entry
}

func NewPreviews() *Previews {
	return &Previews{entries: make(map[string]entry)}
}

// Put stores an upload for a known target and returns its token.
func (p *Previews) Put(target, mime string, data []byte) (string, error) {
	if _, ok := Targets[target]; !ok {
		return "", fmt.Errorf("unknown preview target %q", target)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty preview upload for %q", target)
	}
	token := uuid.NewString()
	p.mu.Lock()
	p.entries[token] = entry{target: target, mime: mime, data: data}
	p.mu.Unlock()
	return token, nil
}

// Get returns a stored preview by token.
func (p *Previews) Get(token string) (mime string, data []byte, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.entries[token]
	return e.mime, e.data, ok
}

// Revoke discards a preview. Revoking an unknown token is a no-op.
func (p *Previews) Revoke(token string) {
	p.mu.Lock()
	delete(p.entries, token)
	p.mu.Unlock()
}

// Len reports how many previews are held.
func (p *Previews) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}

// Instructions explains how to make a previewed change permanent.
func Instructions(target string) string {
	path := Targets[target]
	return fmt.Sprintf(
		"Preview only. To make this change permanent, replace %s with your new image (same filename) and rebuild the site.",
		path)
}

package project

import (
	"context"
	"encoding/json"
	"log"

	"github.com/wilsonudomisor/folio/internal/store"
)

// Patch is a partial Project persisted as an owner edit. Nil fields inherit
// from the base record; present fields replace it. Links merges key-by-key;
// list fields and the architecture record replace wholesale when present.
// The slice fields must not carry omitempty: an empty list is a real edit
// (clear the list) and has to survive the encode/decode round trip through
// the store, where omitempty would collapse it into "inherit". Nil slices
// encode as null and decode back to nil, so absence still inherits.
type Patch struct {
	Title          *string           `json:"title,omitempty"`
	Tagline        *string           `json:"tagline,omitempty"`
	Problem        *string           `json:"problem,omitempty"`
	Impact         *string           `json:"impact,omitempty"`
	RoleType       *string           `json:"roleType,omitempty"`
	RoleDetail     *string           `json:"roleDetail,omitempty"`
	Timeline       *string           `json:"timeline,omitempty"`
	ContextGoal    *string           `json:"contextGoal,omitempty"`
	Category       *string           `json:"category,omitempty"`
	Featured       *bool             `json:"featured,omitempty"`
	Links          map[string]string `json:"links,omitempty"`
	Tools          []string          `json:"tools"`
	WhatIBuilt     []string          `json:"whatIBuilt"`
	Challenges     []string          `json:"challenges"`
	OutcomeDetails []string          `json:"outcomeDetails"`
	Architecture   *Architecture     `json:"architecture,omitempty"`
	Artifacts      []Artifact        `json:"artifacts"`
}

// OverrideKey returns the logical store key holding the patch for a project.
func OverrideKey(id string) string {
	return "project_" + id + "_override"
}

// ApplyOverride layers the persisted patch for base's id onto base. A missing
// or unparsable patch leaves the record unchanged; a parse failure is logged
// and ignored, never fatal. Applying the same patch twice yields the same
// record as applying it once.
func ApplyOverride(ctx context.Context, s store.Store, ns store.Namespace, base Project) Project {
	if base.ID == "" {
		return base
	}
	raw, ok, err := s.Get(ctx, ns.Key(OverrideKey(base.ID)))
	if err != nil || !ok {
		return base
	}

	var patch Patch
	if err := json.Unmarshal([]byte(raw), &patch); err != nil {
		log.Printf("invalid override patch for project %s: %v", base.ID, err)
		return base
	}

	return patch.Apply(base)
}

// Apply produces a new record: base with every present patch field
// substituted per the merge rules. Base is not mutated.
func (p Patch) Apply(base Project) Project {
	merged := base

	setString(&merged.Title, p.Title)
	setString(&merged.Tagline, p.Tagline)
	setString(&merged.Problem, p.Problem)
	setString(&merged.Impact, p.Impact)
	setString(&merged.RoleType, p.RoleType)
	setString(&merged.RoleDetail, p.RoleDetail)
	setString(&merged.Timeline, p.Timeline)
	setString(&merged.ContextGoal, p.ContextGoal)
	setString(&merged.Category, p.Category)
	if p.Featured != nil {
		merged.Featured = *p.Featured
	}

	// Links merge key-by-key: patch keys win, base keys absent from the
	// patch survive.
	if p.Links != nil {
		links := make(map[string]string, len(base.Links)+len(p.Links))
		for k, v := range base.Links {
			links[k] = v
		}
		for k, v := range p.Links {
			links[k] = v
		}
		merged.Links = links
	}

	// List fields replace wholesale when present; no element-wise merge.
	if p.Tools != nil {
		merged.Tools = p.Tools
	}
	if p.WhatIBuilt != nil {
		merged.WhatIBuilt = p.WhatIBuilt
	}
	if p.Challenges != nil {
		merged.Challenges = p.Challenges
	}
	if p.OutcomeDetails != nil {
		merged.OutcomeDetails = p.OutcomeDetails
	}
	if p.Artifacts != nil {
		merged.Artifacts = p.Artifacts
	}
	if p.Architecture != nil {
		merged.Architecture = p.Architecture
	}

	return merged
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

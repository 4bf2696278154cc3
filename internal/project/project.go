// Package project defines the portfolio project records bundled with the
// site and the override patches that layer owner edits on top of them.
package project

import (
	"encoding/json"
	"fmt"
	"os"
)

// Artifact is one supporting item on a project detail page. Type selects the
// variant: "link" artifacts carry a URL, "image" artifacts an optional source.
type Artifact struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Caption string `json:"caption"`
	URL     string `json:"url,omitempty"`
	Src     string `json:"src,omitempty"`
}

// Architecture describes the optional architecture section of a project.
type Architecture struct {
	Diagram string `json:"diagram,omitempty"`
	Note    string `json:"note,omitempty"`
}

// Project is one portfolio entry. ID is stable: it keys the override patch
// in the store and forms the detail page URL.
type Project struct {
	ID             string            `json:"id"`
	Title          string            `json:"title"`
	Tagline        string            `json:"tagline"`
	Problem        string            `json:"problem"`
	Impact         string            `json:"impact"`
	RoleType       string            `json:"roleType"`
	RoleDetail     string            `json:"roleDetail"`
	Timeline       string            `json:"timeline"`
	ContextGoal    string            `json:"contextGoal"`
	Category       string            `json:"category"`
	Featured       bool              `json:"featured"`
	Links          map[string]string `json:"links"`
	Tools          []string          `json:"tools"`
	WhatIBuilt     []string          `json:"whatIBuilt"`
	Challenges     []string          `json:"challenges"`
	OutcomeDetails []string          `json:"outcomeDetails"`
	Architecture   *Architecture     `json:"architecture,omitempty"`
	Artifacts      []Artifact        `json:"artifacts"`
}

// DetailPage returns the generated detail page name for a project id,
// consistent between card generation and request routing.
func DetailPage(id string) string {
	return "project-" + id + ".html"
}

// Load reads the bundled project list (a JSON array) from path.
func Load(path string) ([]Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading projects %s: %w", path, err)
	}
	var projects []Project
	if err := json.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("parsing projects %s: %w", path, err)
	}
	return projects, nil
}

// ByID returns the project with the given id. The second return is false
// when no such project exists.
func ByID(projects []Project, id string) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Featured returns up to max featured projects in list order.
func Featured(projects []Project, max int) []Project {
	var out []Project
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
			if len(out) == max {
				break
			}
		}
	}
	return out
}

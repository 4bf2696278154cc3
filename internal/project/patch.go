package project

import (
	"strconv"
	"strings"
)

// listFields are the form fields whose values are entered as lists.
var listFields = map[string]bool{
	"tools":          true,
	"whatIBuilt":     true,
	"challenges":     true,
	"outcomeDetails": true,
}

// BuildPatch turns the admin form's field map into a Patch. Field names
// follow the form conventions: "featured" parses as a boolean, the list
// fields split on commas or newlines with trimming and empty entries dropped,
// "links.<key>" lands in the links sub-mapping, and every other known name
// is a scalar. Unknown names are ignored.
func BuildPatch(fields map[string]string) Patch {
	var p Patch
	for name, value := range fields {
		switch {
		case name == "featured":
			b := parseCheckbox(value)
			p.Featured = &b
		case listFields[name]:
			list := splitList(value)
			switch name {
			case "tools":
				p.Tools = list
			case "whatIBuilt":
				p.WhatIBuilt = list
			case "challenges":
				p.Challenges = list
			case "outcomeDetails":
				p.OutcomeDetails = list
			}
		case strings.HasPrefix(name, "links."):
			if p.Links == nil {
				p.Links = make(map[string]string)
			}
			p.Links[strings.TrimPrefix(name, "links.")] = value
		default:
			v := value
			switch name {
			case "title":
				p.Title = &v
			case "tagline":
				p.Tagline = &v
			case "problem":
				p.Problem = &v
			case "impact":
				p.Impact = &v
			case "roleType":
				p.RoleType = &v
			case "roleDetail":
				p.RoleDetail = &v
			case "timeline":
				p.Timeline = &v
			case "contextGoal":
				p.ContextGoal = &v
			case "category":
				p.Category = &v
			}
		}
	}
	return p
}

// parseCheckbox accepts both boolean strings and the bare "on" an HTML
// checkbox submits.
func parseCheckbox(value string) bool {
	if value == "on" {
		return true
	}
	b, err := strconv.ParseBool(value)
	return err == nil && b
}

// splitList splits a list field on commas and newlines into trimmed
// non-empty entries. The result is never nil so an emptied form field clears
// the list rather than inheriting the base value.
func splitList(value string) []string {
	out := []string{}
	items := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

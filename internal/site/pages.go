package site

import (
	"github.com/wilsonudomisor/folio/internal/project"
	"github.com/wilsonudomisor/folio/internal/region"
	"github.com/wilsonudomisor/folio/internal/render"
)

// Config-bound regions share their id with the config path, so an edit made
// in place lands on the same stored key the admin panel writes.
func indexPage() region.Page {
	return region.Page{
		Name: "index.html",
		Regions: []region.Region{
			{ID: "images.homeHeroPhoto", Kind: region.Image, ConfigPath: "images.homeHeroPhoto"},
			{ID: "owner.name", Kind: region.Text, ConfigPath: "owner.name", Fallback: "Your Name"},
			{ID: "owner.title", Kind: region.Text, ConfigPath: "owner.title", Fallback: "Data Engineer"},
			{ID: "owner.proofLine", Kind: region.Text, ConfigPath: "owner.proofLine"},
			{ID: "links.resume", Kind: region.Link, ConfigPath: "links.resume"},
			{ID: "links.githubProfile", Kind: region.Link, ConfigPath: "links.githubProfile"},
			{ID: "links.linkedin", Kind: region.Link, ConfigPath: "links.linkedin"},
		},
	}
}

func projectsPage() region.Page {
	return region.Page{Name: "projects.html"}
}

func aboutPage() region.Page {
	return region.Page{
		Name: "about.html",
		Regions: []region.Region{
			{ID: "images.aboutHeroPhoto", Kind: region.Image, ConfigPath: "images.aboutHeroPhoto"},
			{ID: "images.headshot", Kind: region.Image, ConfigPath: "images.headshot"},
			{ID: "owner.name", Kind: region.Text, ConfigPath: "owner.name", Fallback: "Your Name"},
			{ID: "owner.proofLine", Kind: region.Text, ConfigPath: "owner.proofLine"},
		},
	}
}

func contactPage() region.Page {
	return region.Page{
		Name: "contact.html",
		Regions: []region.Region{
			{ID: "links.email", Kind: region.Link, ConfigPath: "links.email"},
			{ID: "links.whatsappNumber", Kind: region.Link, ConfigPath: "links.whatsappNumber"},
			{ID: "links.linkedin", Kind: region.Link, ConfigPath: "links.linkedin"},
		},
	}
}

// detailPage declares the record-bound regions plus one image region per
// image artifact and one for the architecture diagram, so uploads made in
// edit mode land on stable per-artifact keys.
func detailPage(p project.Project) region.Page {
	page := region.Page{
		Name: project.DetailPage(p.ID),
		Regions: []region.Region{
			{ID: render.RegionProjectTitle, Kind: region.Text},
			{ID: render.RegionSnapshotProblem, Kind: region.Text},
			{ID: render.RegionSnapshotRole, Kind: region.Text},
			{ID: render.RegionSnapshotStack, Kind: region.Text},
			{ID: render.RegionSnapshotTimeline, Kind: region.Text},
			{ID: render.RegionLinkGithub, Kind: region.Link},
			{ID: render.RegionLinkDrive, Kind: region.Link},
			{ID: render.RegionLinkCanva, Kind: region.Link},
			{ID: render.RegionContextGoal, Kind: region.Text},
			{ID: render.RegionContextGoalBody, Kind: region.Markup},
			{ID: render.RegionWhatBuiltList, Kind: region.Markup},
			{ID: render.RegionChallengesList, Kind: region.Markup},
			{ID: render.RegionOutcomeList, Kind: region.Markup},
			{ID: render.RegionArchitectureBox, Kind: region.Markup},
			{ID: render.RegionArtifactsGallery, Kind: region.Markup},
		},
	}
	page.Regions = append(page.Regions, region.Region{
		ID:   render.ArchitectureEditKey(p.ID),
		Kind: region.Image,
	})
	for i, a := range p.Artifacts {
		if a.Type == "image" {
			page.Regions = append(page.Regions, region.Region{
				ID:   render.ArtifactEditKey(p.ID, i),
				Kind: region.Image,
			})
		}
	}
	return page
}

package site

import "html/template"

const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="style.css">
</head>
<body{{if .EditOn}} class="edit-mode"{{end}}>
<header class="topbar">
  <a class="brand" href="index.html">{{.SiteTitle}}</a>
  <nav>
    <a href="index.html">Home</a>
    <a href="projects.html">Projects</a>
    <a href="about.html">About</a>
    <a href="contact.html">Contact</a>
  </nav>
  {{if .EditUI}}<button id="edit-toggle" data-on="{{.EditOn}}">{{if .EditOn}}Done editing{{else}}Edit{{end}}</button>{{end}}
</header>
{{if .DataError}}<div class="data-error">{{.DataError}}</div>{{end}}
<main>
{{.Body}}
</main>
<footer>
  <p>{{.SiteTitle}}</p>
</footer>
{{if .EditUI}}<script src="script.js"></script>{{end}}
</body>
</html>
`

const indexTemplate = `<section class="hero">
  {{.HeroPhoto}}
  <div class="hero-copy">
    <h1>{{.OwnerName}}</h1>
    <p class="title-line">{{.OwnerTitle}}</p>
    <p class="proof-line">{{.ProofLine}}</p>
    <div class="hero-links">
      {{.ResumeLink}}
      {{.GithubLink}}
      {{.LinkedInLink}}
    </div>
  </div>
</section>
<section class="featured">
  <h2>Featured projects</h2>
  {{if .FeaturedCards}}<div class="cards">{{.FeaturedCards}}</div>{{else}}<p class="empty">Projects are being updated. Check back soon.</p>{{end}}
</section>
`

const projectsTemplate = `<section class="projects">
  <h1>Projects</h1>
  <div class="filters">
    <button class="filter active" data-category="all">All</button>
    {{range .Categories}}<button class="filter" data-category="{{.}}">{{.}}</button>
    {{end}}
  </div>
  <p class="count" id="project-count">{{.CountLabel}}</p>
  <div class="cards" id="project-cards">{{.Cards}}</div>
</section>
`

const aboutTemplate = `<section class="about">
  {{.AboutHeroPhoto}}
  <div class="about-copy">
    <h1>About {{.OwnerName}}</h1>
    <p>{{.ProofLine}}</p>
    {{.Headshot}}
  </div>
</section>
`

const contactTemplate = `<section class="contact">
  <h1>Contact</h1>
  <ul class="contact-links">
    <li>{{.EmailLink}}</li>
    <li>{{.WhatsAppLink}}</li>
    <li>{{.LinkedInLink}}</li>
  </ul>
</section>
`

const detailTemplate = `<article class="project-detail">
  <h1>{{index .Bound "projectTitle"}}</h1>
  <section class="snapshot">
    <dl>
      <dt>Problem</dt><dd>{{index .Bound "snapshotProblem"}}</dd>
      <dt>Role</dt><dd>{{index .Bound "snapshotRole"}}</dd>
      <dt>Stack</dt><dd>{{index .Bound "snapshotStack"}}</dd>
      <dt>Timeline</dt><dd>{{index .Bound "snapshotTimeline"}}</dd>
    </dl>
    <div class="detail-links">
      {{with index .Bound "linkGithub"}}<a href="{{.}}">GitHub</a>{{end}}
      {{with index .Bound "linkDrive"}}<a href="{{.}}">Drive</a>{{end}}
      {{with index .Bound "linkCanva"}}<a href="{{.}}">Canva</a>{{end}}
    </div>
  </section>
  <section class="context-goal">
    <h2>Context and goal</h2>
    <div class="body">{{index .Bound "contextGoalBody"}}</div>
  </section>
  <section class="what-built">
    <h2>What I built</h2>
    <ul>{{index .Bound "whatBuiltList"}}</ul>
  </section>
  <section class="challenges">
    <h2>Challenges</h2>
    <ul>{{index .Bound "challengesList"}}</ul>
  </section>
  <section class="outcome">
    <h2>Outcome</h2>
    <ul>{{index .Bound "outcomeList"}}</ul>
  </section>
  <section class="architecture">
    <h2>Architecture</h2>
    {{index .Bound "architectureBox"}}
  </section>
  <section class="artifacts">
    <h2>Artifacts</h2>
    <div class="gallery">{{index .Bound "artifactsGallery"}}</div>
  </section>
</article>
`

var (
	layoutTmpl   = template.Must(template.New("layout").Parse(layoutTemplate))
	indexTmpl    = template.Must(template.New("index").Parse(indexTemplate))
	projectsTmpl = template.Must(template.New("projects").Parse(projectsTemplate))
	aboutTmpl    = template.Must(template.New("about").Parse(aboutTemplate))
	contactTmpl  = template.Must(template.New("contact").Parse(contactTemplate))
	detailTmpl   = template.Must(template.New("detail").Parse(detailTemplate))
)

// Stylesheet and ClientScript are also served directly by the live server.
const (
	Stylesheet   = cssContent
	ClientScript = jsContent
)

const cssContent = `:root { --ink: #1d2530; --muted: #5b6775; --line: #dde3ea; --accent: #2f6fb2; }
* { box-sizing: border-box; }
body { margin: 0; color: var(--ink); font: 16px/1.6 -apple-system, "Segoe UI", sans-serif; }
.topbar { display: flex; align-items: center; gap: 24px; padding: 14px 32px; border-bottom: 1px solid var(--line); }
.topbar .brand { font-weight: 600; color: var(--ink); text-decoration: none; }
.topbar nav { display: flex; gap: 16px; }
.topbar nav a { color: var(--muted); text-decoration: none; }
.topbar #edit-toggle { margin-left: auto; }
main { max-width: 960px; margin: 0 auto; padding: 32px; }
.data-error { background: #fcebea; color: #8a2b26; padding: 10px 32px; }
.hero { display: flex; gap: 32px; align-items: center; }
.hero img { width: 280px; border-radius: 10px; }
.proof-line { color: var(--muted); }
.cards { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 20px; }
.card { border: 1px solid var(--line); border-radius: 8px; padding: 18px; }
.card .meta span { color: var(--muted); font-size: 13px; margin-right: 10px; }
.card .tags span { background: #eef2f6; border-radius: 4px; padding: 2px 8px; font-size: 12px; margin-right: 6px; }
.filters .filter { border: 1px solid var(--line); background: #fff; border-radius: 16px; padding: 4px 14px; margin-right: 8px; cursor: pointer; }
.filters .filter.active { background: var(--accent); color: #fff; border-color: var(--accent); }
.image-placeholder, .diagram-placeholder { display: flex; align-items: center; justify-content: center; min-height: 160px; border: 1px dashed var(--line); border-radius: 8px; color: var(--muted); }
.edit-mode [data-edit-text] { outline: 1px dashed var(--accent); cursor: text; }
.edit-mode [data-edit-image], .edit-mode [data-edit-link] { outline: 1px dashed var(--accent); cursor: pointer; }
footer { border-top: 1px solid var(--line); color: var(--muted); padding: 14px 32px; }
`

// jsContent drives the served pages only. Static builds omit it so the
// output has no editing affordances.
const jsContent = `(function () {
  function post(url, body) {
    return fetch(url, {
      method: 'POST',
      headers: {'Content-Type': 'application/json'},
      body: JSON.stringify(body || {}),
    });
  }

  function toggleEditMode() {
    post('api/edit-mode/toggle').then(function (res) {
      if (res.ok) window.location.reload();
    });
  }

  var toggle = document.getElementById('edit-toggle');
  if (toggle) toggle.addEventListener('click', toggleEditMode);

  document.addEventListener('keydown', function (e) {
    if (e.ctrlKey && e.shiftKey && e.code === 'KeyE') {
      e.preventDefault();
      toggleEditMode();
    }
  });

  var editOn = toggle && toggle.dataset.on === 'true';

  if (editOn) {
    document.querySelectorAll('[data-edit-text]').forEach(function (el) {
      el.contentEditable = 'true';
      el.addEventListener('blur', function () {
        post('api/regions/' + encodeURIComponent(el.dataset.editText) + '/text', {text: el.textContent});
      });
    });

    document.querySelectorAll('[data-edit-image], [data-edit-image-key]').forEach(function (el) {
      el.addEventListener('click', function (e) {
        e.preventDefault();
        var id = el.dataset.editImage || el.dataset.editImageKey;
        var input = document.createElement('input');
        input.type = 'file';
        input.accept = 'image/*';
        input.addEventListener('change', function () {
          var file = input.files[0];
          if (!file) return;
          var form = new FormData();
          form.append('image', file);
          fetch('api/regions/' + encodeURIComponent(id) + '/image', {method: 'POST', body: form}).then(function (res) {
            if (res.ok) window.location.reload();
          });
        });
        input.click();
      });
    });

    document.querySelectorAll('[data-edit-link]').forEach(function (el) {
      el.addEventListener('click', function (e) {
        e.preventDefault();
        var url = window.prompt('Link URL', el.getAttribute('href') || '');
        if (url === null || url === '') return;
        post('api/regions/' + encodeURIComponent(el.dataset.editLink) + '/link', {url: url}).then(function (res) {
          if (res.ok) window.location.reload();
        });
      });
    });
  }

  // Category filter on the projects page.
  var cardsEl = document.getElementById('project-cards');
  if (cardsEl) {
    document.querySelectorAll('.filter').forEach(function (btn) {
      btn.addEventListener('click', function () {
        document.querySelectorAll('.filter').forEach(function (b) { b.classList.remove('active'); });
        btn.classList.add('active');
        var category = btn.dataset.category;
        var shown = 0;
        cardsEl.querySelectorAll('.card').forEach(function (card) {
          var match = category === 'all' || card.dataset.category === category;
          card.style.display = match ? '' : 'none';
          if (match) shown++;
        });
        var count = document.getElementById('project-count');
        if (count) count.textContent = shown === 1 ? 'Showing 1 project' : 'Showing ' + shown + ' projects';
      });
    });
  }

  // Reload when the server reports data changes.
  try {
    var proto = window.location.protocol === 'https:' ? 'wss://' : 'ws://';
    var ws = new WebSocket(proto + window.location.host + '/ws/reload');
    ws.addEventListener('message', function () { window.location.reload(); });
  } catch (err) {
    // no live reload without websockets
  }
})();
`

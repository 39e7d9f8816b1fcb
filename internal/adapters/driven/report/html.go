package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/custodia-labs/starcat-cli/internal/core/domain"
)

// htmlView is the template's root data.
type htmlView struct {
	User          string
	GeneratedAt   time.Time
	Repositories  int
	FetchComplete bool
	Categories    []htmlCategory
	Uncategorized []htmlRepo
}

type htmlCategory struct {
	Name        string
	Description string
	Repos       []htmlRepo
}

type htmlRepo struct {
	FullName    string
	URL         string
	Description string
	Language    string
	Stars       int
	Reason      string
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Starred repositories of {{.User}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; color: #1f2328; }
h1 { border-bottom: 1px solid #d1d9e0; padding-bottom: .3rem; }
h2 { margin-top: 2rem; }
p.meta { color: #59636e; font-size: .9rem; }
p.warn { color: #9a6700; }
li { margin: .4rem 0; }
span.lang { color: #59636e; font-size: .85rem; margin-left: .4rem; }
span.reason { display: block; color: #59636e; font-size: .85rem; }
</style>
</head>
<body>
<h1>Starred repositories of {{.User}}</h1>
<p class="meta">{{.Repositories}} repositories, {{len .Categories}} categories &mdash; generated {{.GeneratedAt.Format "2006-01-02 15:04"}}</p>
{{if not .FetchComplete}}<p class="warn">The star listing was incomplete; this report covers a partial collection.</p>{{end}}
{{range .Categories}}
<h2>{{.Name}}</h2>
<p>{{.Description}}</p>
<ul>
{{range .Repos}}<li><a href="{{.URL}}">{{.FullName}}</a>{{if .Language}}<span class="lang">{{.Language}} &middot; {{.Stars}} &#9733;</span>{{end}}{{if .Description}} &mdash; {{.Description}}{{end}}{{if .Reason}}<span class="reason">{{.Reason}}</span>{{end}}</li>
{{end}}</ul>
{{end}}
{{if .Uncategorized}}
<h2>Uncategorized</h2>
<ul>
{{range .Uncategorized}}<li><a href="{{.URL}}">{{.FullName}}</a>{{if .Description}} &mdash; {{.Description}}{{end}}</li>
{{end}}</ul>
{{end}}
</body>
</html>
`))

// writeHTML renders the human-readable view of the taxonomy.
func (s *FileStore) writeHTML(summary *domain.RunSummary) error {
	byName := make(map[string]domain.Repository, len(summary.Repos))
	for _, r := range summary.Repos {
		byName[r.FullName] = r
	}

	view := htmlView{
		User:          summary.User,
		GeneratedAt:   summary.FinishedAt,
		Repositories:  len(summary.Repos),
		FetchComplete: summary.FetchComplete,
	}

	for _, c := range summary.Taxonomy.Categories() {
		hc := htmlCategory{Name: c.Name, Description: c.Description}
		for _, a := range c.Repos {
			r := byName[a.FullName]
			hc.Repos = append(hc.Repos, htmlRepo{
				FullName:    a.FullName,
				URL:         r.URL,
				Description: r.Description,
				Language:    r.Language,
				Stars:       r.Stars,
				Reason:      a.Reason,
			})
		}
		view.Categories = append(view.Categories, hc)
	}

	for _, r := range summary.Uncategorized {
		view.Uncategorized = append(view.Uncategorized, htmlRepo{
			FullName:    r.FullName,
			URL:         r.URL,
			Description: r.Description,
			Language:    r.Language,
			Stars:       r.Stars,
		})
	}

	f, err := os.Create(filepath.Join(s.runDir, htmlFile))
	if err != nil {
		return fmt.Errorf("report: create %s: %w", htmlFile, err)
	}
	defer f.Close()

	if err := reportTemplate.Execute(f, view); err != nil {
		return fmt.Errorf("report: render %s: %w", htmlFile, err)
	}
	return nil
}

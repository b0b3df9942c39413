// Package render turns episode records into HTML pages.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/url"
	"strings"

	"github.com/killallgit/podcastr/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Assets are the images the page templates reference, keyed by file name
// and served from the site root
func Assets() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

const (
	EpisodeTemplate = "episode.html"
	ErrorTemplate   = "error.html"
)

// Site is the fixed identity every page is rendered with
type Site struct {
	Name   string
	URL    string
	Locale string
}

// MetaTag is one Open Graph <meta property content> pair
type MetaTag struct {
	Property string
	Content  string
}

// EpisodeView is the data the episode template is executed with
type EpisodeView struct {
	Site        Site
	Title       string
	Episode     *models.Episode
	Description template.HTML
	PlayAction  string
	Meta        []MetaTag
}

// ErrorView is the data the error template is executed with
type ErrorView struct {
	Site    Site
	Title   string
	Status  int
	Message string
}

// Renderer executes the embedded page templates
type Renderer struct {
	tmpl *template.Template
	site Site
}

// New parses the embedded templates
func New(site Site) (*Renderer, error) {
	if site.Name == "" {
		site.Name = "Podcastr"
	}
	if site.Locale == "" {
		site.Locale = "pt_BR"
	}

	tmpl, err := template.New("pages").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Renderer{tmpl: tmpl, site: site}, nil
}

// Template returns the parsed template set, e.g. for gin's SetHTMLTemplate
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// Site returns the site identity pages are rendered with
func (r *Renderer) Site() Site {
	return r.site
}

// TrustedHTML marks s as safe markup. Episode descriptions come from the
// episodes API already formatted and are trusted as-is: no sanitization
// happens here. This is the only place page content skips escaping.
func TrustedHTML(s string) template.HTML {
	return template.HTML(s)
}

// EpisodePath is the URL of an episode page
func EpisodePath(slug string) string {
	return "/episodes/" + url.PathEscape(slug)
}

// PlayAction is the URL the play control posts to
func PlayAction(slug string) string {
	return EpisodePath(slug) + "/play"
}

// EpisodeView builds the template data for one episode page
func (r *Renderer) EpisodeView(episode *models.Episode) EpisodeView {
	return EpisodeView{
		Site:        r.site,
		Title:       fmt.Sprintf("%s | %s", episode.Title, r.site.Name),
		Episode:     episode,
		Description: TrustedHTML(episode.Description),
		PlayAction:  PlayAction(episode.ID),
		Meta:        r.MetaTags(episode),
	}
}

// MetaTags returns the social preview tags for an episode page
func (r *Renderer) MetaTags(episode *models.Episode) []MetaTag {
	return []MetaTag{
		{Property: "og:locale", Content: r.site.Locale},
		{Property: "og:url", Content: r.site.URL},
		{Property: "og:title", Content: fmt.Sprintf("%s | %s", r.site.Name, episode.Title)},
		{Property: "og:site_name", Content: r.site.Name},
		{Property: "og:image", Content: episode.Thumbnail},
		{Property: "og:image:type", Content: "image/jpeg"},
		{Property: "og:image:width", Content: "1280"},
		{Property: "og:image:height", Content: "720"},
	}
}

// ErrorView builds the template data for an error page
func (r *Renderer) ErrorView(status int, message string) ErrorView {
	return ErrorView{
		Site:    r.site,
		Title:   fmt.Sprintf("%d | %s", status, r.site.Name),
		Status:  status,
		Message: strings.TrimSpace(message),
	}
}

// RenderEpisode writes the full episode page to w
func (r *Renderer) RenderEpisode(w io.Writer, episode *models.Episode) error {
	if episode == nil {
		return fmt.Errorf("rendering episode: nil episode")
	}
	if err := r.tmpl.ExecuteTemplate(w, EpisodeTemplate, r.EpisodeView(episode)); err != nil {
		return fmt.Errorf("rendering episode %q: %w", episode.ID, err)
	}
	return nil
}

// RenderError writes an error page to w
func (r *Renderer) RenderError(w io.Writer, status int, message string) error {
	if err := r.tmpl.ExecuteTemplate(w, ErrorTemplate, r.ErrorView(status, message)); err != nil {
		return fmt.Errorf("rendering error page: %w", err)
	}
	return nil
}

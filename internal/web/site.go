// Package web renders the public home page and serves its static assets.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"beam/internal/domain"
	"beam/internal/infra/geoip"
	"beam/internal/middleware"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Options configures the site renderer.
type Options struct {
	// Cities resolves a visitor IP to "City, ST". Nil disables preselection.
	Cities geoip.CityResolver
	// PublishableKey enables card confirmation in the browser.
	PublishableKey string
	Logger         zerolog.Logger
	Now            func() time.Time
}

// Site renders the home page.
type Site struct {
	tmpl           *template.Template
	cities         geoip.CityResolver
	publishableKey string
	logger         zerolog.Logger
	now            func() time.Time
}

type highlight struct {
	Title       string
	Description string
	Location    string
	Status      string
	StatusLabel string
	Progress    int
	Volunteers  int
	Needed      int
	Target      string
}

type homePage struct {
	Navigation     []link
	Cities         []string
	PopularCities  []string
	SelectedCity   string
	Features       []feature
	Gallery        []transformation
	Highlights     []highlight
	Perks          []feature
	Interests      []string
	Availability   []string
	Experience     []string
	Amounts        []int
	Frequencies    []option
	Designations   []option
	DonationUses   []feature
	Stats          []stat
	FooterColumns  []footerColumn
	Address        string
	Phone          string
	Email          string
	PublishableKey string
	Year           int
}

// NewSite parses the embedded templates.
func NewSite(opts Options) (*Site, error) {
	s := &Site{
		cities:         opts.Cities,
		publishableKey: strings.TrimSpace(opts.PublishableKey),
		logger:         opts.Logger,
		now:            opts.Now,
	}
	if s.now == nil {
		s.now = time.Now
	}
	funcs := template.FuncMap{
		"shortCity": func(c string) string {
			name, _, _ := strings.Cut(c, ",")
			return name
		},
	}
	tmpl, err := template.New("home").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	s.tmpl = tmpl
	return s, nil
}

// RenderHome writes the landing page. Empty highlights fall back to the showcase projects.
func (s *Site) RenderHome(w io.Writer, r *http.Request, highlights []domain.Project) error {
	if len(highlights) == 0 {
		highlights = showcase
	}
	page := homePage{
		Navigation:     navigation,
		Features:       features,
		Gallery:        gallery,
		Highlights:     s.highlights(highlights),
		Perks:          volunteerPerks,
		Interests:      interestOptions,
		Availability:   availabilityOptions,
		Experience:     experienceOptions,
		Amounts:        donationAmounts,
		Frequencies:    frequencyOptions,
		Designations:   designations,
		DonationUses:   donationUses,
		Stats:          impactStats,
		FooterColumns:  footerColumns,
		Address:        contactAddress,
		Phone:          contactPhone,
		Email:          contactEmail,
		PublishableKey: s.publishableKey,
		Year:           s.now().Year(),
	}
	page.Cities, page.SelectedCity = s.cityOptions(r)
	page.PopularCities = cities[:popularCityCount]
	return s.tmpl.ExecuteTemplate(w, "page", page)
}

// Static serves the embedded stylesheet and script under the mount prefix.
func (s *Site) Static(prefix string) http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix(prefix, http.FileServer(http.FS(sub)))
}

// cityOptions puts the visitor's resolved city first when it is not already listed.
func (s *Site) cityOptions(r *http.Request) ([]string, string) {
	if s.cities == nil || r == nil {
		return cities, ""
	}
	city, err := s.cities.City(middleware.ClientIP(r))
	if err != nil {
		s.logger.Debug().Err(err).Msg("city lookup")
		return cities, ""
	}
	if city == "" {
		return cities, ""
	}
	for _, c := range cities {
		if strings.EqualFold(c, city) {
			return cities, c
		}
	}
	out := make([]string, 0, len(cities)+1)
	out = append(out, city)
	return append(out, cities...), city
}

func (s *Site) highlights(projects []domain.Project) []highlight {
	title := cases.Title(language.English)
	out := make([]highlight, 0, len(projects))
	for _, p := range projects {
		h := highlight{
			Title:       p.Title,
			Description: p.Description,
			Location:    p.Location,
			Status:      string(p.Status),
			StatusLabel: title.String(string(p.Status)),
			Progress:    clampPercent(p.Progress),
			Volunteers:  p.CurrentVolunteers,
			Needed:      p.VolunteersNeeded,
		}
		if !p.TargetDate.IsZero() {
			h.Target = p.TargetDate.Format("January 2006")
		}
		out = append(out, h)
	}
	return out
}

func clampPercent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

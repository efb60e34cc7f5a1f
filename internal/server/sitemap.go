package server

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	slugs, err := s.db.ListSlugs(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("sitemap query failed")
		http.Error(w, "sitemap unavailable", http.StatusInternalServerError)
		return
	}
	base := strings.TrimRight(s.baseURL, "/")
	set := sitemapSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	set.URLs = append(set.URLs, sitemapURL{Loc: base + "/"})
	for _, e := range slugs {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     base + "/posts/" + e.Slug,
			LastMod: e.CreatedAt.Format("2006-01-02"),
		})
	}
	w.Header().Set("Content-Type", "application/xml")
	_, _ = w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		log.Error().Err(err).Msg("sitemap encode failed")
	}
}

func (s *Server) handleRobots(w http.ResponseWriter, r *http.Request) {
	base := strings.TrimRight(s.baseURL, "/")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("User-agent: *\nDisallow: /admin/\nDisallow: /api/\nSitemap: " + base + "/sitemap.xml\n"))
}

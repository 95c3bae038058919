// File: internal/handler/settings/sitemap.go
package settings

import (
	"encoding/xml"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
)

// sitemapPages is the fixed public page list. lastmod is the generation
// time, not a per-page modification time.
var sitemapPages = []string{
	"",
	"/about",
	"/exams",
	"/cbt",
	"/subjects",
	"/blog",
	"/contact",
	"/login",
	"/register",
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

var timeNow = time.Now

// SitemapHandler renders sitemap.xml over the fixed page list. The site
// base URL comes from SITE_URL.
// @Summary     Sitemap
// @Tags        seo
// @Produce     xml
// @Success     200 {string} string "XML urlset"
// @Router      /seo/sitemap.xml [get]
func SitemapHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		base := os.Getenv("SITE_URL")
		if base == "" {
			base = "https://eduai.example.com"
		}
		lastMod := timeNow().Format("2006-01-02")

		set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
		for i, page := range sitemapPages {
			priority := "0.8"
			if i == 0 {
				priority = "1.0"
			}
			set.URLs = append(set.URLs, sitemapURL{
				Loc:        base + page,
				LastMod:    lastMod,
				ChangeFreq: "weekly",
				Priority:   priority,
			})
		}

		out, err := xml.MarshalIndent(set, "", "  ")
		if err != nil {
			return c.String(http.StatusInternalServerError, "failed to generate sitemap")
		}
		return c.Blob(http.StatusOK, echo.MIMEApplicationXMLCharsetUTF8, append([]byte(xml.Header), out...))
	}
}

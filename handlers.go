package main

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
)

const (
	cacheControlValue = "no-store, no-cache, must-revalidate, max-age=0"
	pragmaValue       = "no-cache"
	expiresValue      = "0"

	loginPath = "/login"
	closePath = "/"
	logoAlt   = "logo"
)

type loginPageData struct {
	Title     string
	Heading   string
	LogoSrc   string
	LogoAlt   string
	ClosePath string
	Action    string
}

type homePageData struct {
	Title     string
	Heading   string
	LogoSrc   string
	LogoAlt   string
	LoginPath string
}

type pages struct {
	siteName string
}

func (p pages) login() loginPageData {
	return loginPageData{
		Title:     p.siteName + " | Login",
		Heading:   "Welcome to " + p.siteName,
		LogoSrc:   logoPath,
		LogoAlt:   logoAlt,
		ClosePath: closePath,
		Action:    loginPath,
	}
}

func (p pages) home() homePageData {
	return homePageData{
		Title:     p.siteName,
		Heading:   p.siteName,
		LogoSrc:   logoPath,
		LogoAlt:   logoAlt,
		LoginPath: loginPath,
	}
}

// handleLoginGet renders the login view. The markup never depends on the
// request.
func (p pages) handleLoginGet(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, loginTemplate, p.login())
}

// handleLoginPost accepts a login form submission and does nothing with it.
// No fields are read and no cookie is set, and 204 keeps the browser on
// the current page.
func (p pages) handleLoginPost(w http.ResponseWriter, _ *http.Request) {
	setNoCacheHeaders(w)
	w.WriteHeader(http.StatusNoContent)
}

func (p pages) handleHome(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, homeTemplate, p.home())
}

func renderPage(w http.ResponseWriter, r *http.Request, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		log.Error().Err(err).Str("template", tmpl.Name()).Str("path", r.URL.Path).Msg("render page")
		http.Error(w, "Page unavailable.", http.StatusInternalServerError)
		return
	}

	setNoCacheHeaders(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Warn().Err(err).Str("template", tmpl.Name()).Msg("write page")
	}
}

func setNoCacheHeaders(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", cacheControlValue)
	w.Header().Set("Pragma", pragmaValue)
	w.Header().Set("Expires", expiresValue)
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}

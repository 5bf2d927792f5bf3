package model

import (
	"net/url"
	"strings"
)

// Exchange is the raw outcome of one transfer: the metric block plus the
// files the tool wrote the response head and body to.
type Exchange struct {
	URL        string
	Scheme     string
	Metrics    string
	HeaderPath string
	BodyPath   string
}

// Header is one response header line.
type Header struct {
	Name  string
	Value string
}

// Response is the final response head of an exchange.
type Response struct {
	Proto   string // "HTTP/1.1", "HTTP/2"
	Status  string // "200 OK"
	Headers []Header
}

// SchemeOf returns the lowercased scheme of rawURL. URLs without a scheme
// are "http", which is what the transfer tool assumes for them.
func SchemeOf(rawURL string) string {
	if !strings.Contains(rawURL, "://") {
		return "http"
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		return "http"
	}
	return strings.ToLower(u.Scheme)
}

package core

import (
	"net/url"
	"strings"
)

// ShareLink is the URL handed to the browser editor.
type ShareLink struct {
	BaseURL  string
	Token    Token
	Filename string
}

func NewShareLink(baseURL, filename string, tok Token) *ShareLink {
	return &ShareLink{
		BaseURL:  baseURL,
		Token:    tok,
		Filename: filename,
	}
}

// Query encodes content, compressed and filename in that order. url.Values
// sorts its keys, so the string is assembled by hand.
func (l *ShareLink) Query() string {
	var sb strings.Builder
	sb.WriteString("content=")
	sb.WriteString(url.QueryEscape(string(l.Token)))
	sb.WriteString("&compressed=1")
	sb.WriteString("&filename=")
	sb.WriteString(url.QueryEscape(l.Filename))
	return sb.String()
}

// String joins the base URL, used verbatim, and the query.
func (l *ShareLink) String() string {
	return l.BaseURL + "?" + l.Query()
}

func BuildURL(baseURL, filename string, tok Token) string {
	return NewShareLink(baseURL, filename, tok).String()
}

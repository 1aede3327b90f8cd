package web

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

const langQueryParam = "lang"

// languageNegotiator picks the TMDB query language for a request.
type languageNegotiator struct {
	fallback  string
	supported []language.Tag
	matcher   language.Matcher
}

func newLanguageNegotiator(fallback string, supported []string) *languageNegotiator {
	fallbackTag, err := language.Parse(strings.TrimSpace(fallback))
	if err != nil {
		fallbackTag = language.French
	}
	tags := []language.Tag{fallbackTag}
	for _, raw := range supported {
		tag, err := language.Parse(strings.TrimSpace(raw))
		if err != nil || tag == fallbackTag {
			continue
		}
		tags = append(tags, tag)
	}
	return &languageNegotiator{
		fallback:  fallbackTag.String(),
		supported: tags,
		matcher:   language.NewMatcher(tags),
	}
}

// resolve prefers an explicit ?lang= tag, then the best supported match for
// Accept-Language, then the fallback.
func (n *languageNegotiator) resolve(r *http.Request) string {
	if explicit, ok := explicitLanguage(r); ok {
		return explicit
	}
	header := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if header == "" {
		return n.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return n.fallback
	}
	_, index, confidence := n.matcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(n.supported) {
		return n.fallback
	}
	return n.supported[index].String()
}

func explicitLanguage(r *http.Request) (string, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(langQueryParam))
	if raw == "" {
		return "", false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}
	return tag.String(), true
}

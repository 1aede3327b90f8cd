package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const flashCookieName = "marquee_flash"

// popFlashes returns the pending flash messages and expires the cookie.
func popFlashes(w http.ResponseWriter, r *http.Request) []string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return decodeFlashes(cookie.Value)
}

// setFlashes stores messages for the next rendered page.
func setFlashes(w http.ResponseWriter, messages ...string) {
	if len(messages) == 0 {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encodeFlashes(messages),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func encodeFlashes(messages []string) string {
	data, err := json.Marshal(messages)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

func decodeFlashes(value string) []string {
	if value == "" {
		return nil
	}
	data, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var messages []string
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil
	}
	return messages
}

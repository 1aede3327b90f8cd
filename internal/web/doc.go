// Package web serves the marquee HTML front-end.
//
// It mounts a chi router with the listing page at "/", the detail page at
// "/detail/{id}" (digits only), and a JSON health probe. Pages are rendered
// from embedded html/template files. Upstream failures never reach the user
// as raw errors: the listing degrades to an empty list and the detail page
// redirects to the listing, both carrying a one-shot flash message stored in a
// cookie. Each request gets a correlation ID that is echoed in X-Request-ID and
// attached to every log line, and the TMDB query language is negotiated from
// the lang query parameter or the Accept-Language header.
package web

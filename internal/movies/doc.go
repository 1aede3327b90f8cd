// Package movies assembles the data behind the listing and detail pages.
//
// Service wraps the TMDB endpoints: the listing is the now playing results
// passed through as-is, and a detail is the movie record enriched with its
// first trailer and a casting summary (the leading cast members plus every
// director). Enrichment runs concurrently with the base lookup unless
// configured otherwise, and an enrichment failure either degrades the detail
// or fails it, depending on Options.RequireEnrichment.
//
// All upstream failures surface as errors matching tmdb.ErrFetch; use
// IsFetchFailure to recognise them.
package movies

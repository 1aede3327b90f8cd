// Package main hosts the marquee CLI entrypoint and command graph.
//
// The Cobra-based command tree lists the movies now playing, prints a single
// movie's detail with its trailer and main cast, and scaffolds or validates
// the configuration file. Commands talk to TMDB through the same browsing
// service the web front-end uses, so terminal output matches the pages served
// by marqueed.
package main

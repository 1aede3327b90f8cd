// Package daemon owns the lifecycle of the long-running marquee web process.
//
// It enforces single-instance execution with a flock-based lock in the
// runtime directory, binds the configured listen address, and serves the web
// front-end until the parent context is cancelled or Stop is called. Shutdown
// is graceful and bounded so in-flight page renders can finish.
//
// Keep page and upstream logic out of this package: it only starts, stops, and
// reports on the HTTP server.
package daemon

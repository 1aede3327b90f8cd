// Package preflight provides readiness checks for the TMDB API and the
// filesystem paths that marquee depends on.
//
// These checks run in two contexts:
//   - marqueed runs RunAll at startup and logs every failing check as a
//     warning; the server still starts so pages can render their error state.
//   - The CLI "marquee check" command renders the results as a table and
//     exits non-zero when any check fails.
package preflight

// Package stats derives league standings, player leaders and historical chart
// data from raw teams, players, seasons and matches.
//
// Every function is pure: inputs are read-only snapshots, results are freshly
// allocated, and records referencing unknown teams or players are skipped
// rather than reported.
package stats

// Package plex talks to a Plex Media Server over its HTTP API. The cleanup
// run only needs two calls: enumerating library sections and triggering a
// rescan of one section, so the client stays deliberately small. Section
// listings come back as XML; the decoder reads only the Directory attributes
// the caller uses.
package plex

// Package programs exposes the program list as a small net/http component.
//
// The handler responds to GET and HEAD requests, fetches the current program
// catalog through the configured list function, renders it with the
// configured renderer, and serves the resulting fragment. Upstream fetch
// failures map to 502 and guard rejections to 403 unless the guard error
// carries its own status code.
package programs

// Package fetch provides the HTTP client used for listing pages, detail
// pages, and audio downloads. It applies the fixed request headers the site
// expects and handles the gzip-or-plain ambiguity of responses.
package fetch

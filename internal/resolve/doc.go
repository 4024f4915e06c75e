// Package resolve turns a chapter or episode page into an audio URL and
// title. It decodes the base64 JSON state blob embedded in each page,
// reconciles the browsable URL with the content store's internal keys via an
// ordered fallback chain, and selects the preferred narration variant.
package resolve

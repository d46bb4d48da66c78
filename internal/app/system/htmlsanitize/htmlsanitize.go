// Package htmlsanitize strips markup from user-supplied values before they
// are interpolated into HTML email bodies. It uses bluemonday's strict
// policy, so no tags or attributes survive.
package htmlsanitize

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy removes all HTML elements and attributes.
var policy = bluemonday.StrictPolicy()

// Strip removes all markup from a user-supplied value.
func Strip(s string) string {
	return policy.Sanitize(s)
}

// StripToHTML strips markup and returns the result as template.HTML so
// templates interpolate it without double-escaping entities bluemonday
// already encoded.
func StripToHTML(s string) template.HTML {
	return template.HTML(Strip(s))
}

// MultilineHTML strips markup from a multi-line value and converts line
// breaks to <br> so the text keeps its shape inside an HTML body.
func MultilineHTML(s string) template.HTML {
	clean := Strip(s)
	return template.HTML(strings.ReplaceAll(clean, "\n", "<br>"))
}

package padding

import (
	"fmt"
	"strings"
)

// Format names one way of disguising filler as inert markup.
type Format uint8

const (
	FormatHTMLComment   Format = iota // <!-- ... -->
	FormatDataImage                   // hidden <img> with a data: URI
	FormatJSONLD                      // application/ld+json block
	FormatStyleComment                // /* ... */ inside <style>
	FormatScriptComment               // /* ... */ inside <script>
	FormatHiddenSVG                   // <desc> of a hidden <svg>
	FormatDataAttribute               // data-padding on a hidden <div>
	FormatNoscript                    // <noscript> text

	numFormats
)

var formatNames = [numFormats]string{
	FormatHTMLComment:   "html-comment",
	FormatDataImage:     "data-image",
	FormatJSONLD:        "json-ld",
	FormatStyleComment:  "css-comment",
	FormatScriptComment: "js-comment",
	FormatHiddenSVG:     "svg",
	FormatDataAttribute: "data-attribute",
	FormatNoscript:      "noscript",
}

func (f Format) String() string {
	if f.Valid() {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

func (f Format) Valid() bool {
	return f < numFormats
}

// ParseFormat maps a format name back to its Format.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == name {
			return Format(f), nil
		}
	}
	return 0, fmt.Errorf("unknown padding format: %q", name)
}

// AllFormats returns the full catalog in declaration order.
func AllFormats() []Format {
	all := make([]Format, numFormats)
	for i := range all {
		all[i] = Format(i)
	}
	return all
}

type carrier struct {
	open, close string
}

var carriers = [numFormats]carrier{
	FormatHTMLComment:   {"\n<!-- ", " -->\n"},
	FormatDataImage:     {`<img src="data:image/png;base64,`, `" style="display:none;" alt="" />`},
	FormatJSONLD:        {`<script type="application/ld+json">{"@context":"https://schema.org","padding":"`, `"}</script>`},
	FormatStyleComment:  {"<style>/* ", " */</style>"},
	FormatScriptComment: {"<script>/* ", " */</script>"},
	FormatHiddenSVG:     {`<svg style="display:none;"><desc>`, "</desc></svg>"},
	FormatDataAttribute: {`<div style="display:none;" data-padding="`, `"></div>`},
	FormatNoscript:      {"<noscript>", "</noscript>"},
}

// Render wraps an already base64-encoded payload in the carrier markup.
// The base64 alphabet contains none of the characters that could close a
// comment, attribute or element early, so no escaping is needed.
func (f Format) Render(payload string) string {
	if !f.Valid() {
		return ""
	}
	c := carriers[f]
	var b strings.Builder
	b.Grow(len(c.open) + len(payload) + len(c.close))
	b.WriteString(c.open)
	b.WriteString(payload)
	b.WriteString(c.close)
	return b.String()
}

// Overhead is the number of bytes the carrier adds around the payload.
func (f Format) Overhead() int {
	if !f.Valid() {
		return 0
	}
	return len(carriers[f].open) + len(carriers[f].close)
}

package main

import (
	"strings"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

type row struct {
	key, value string
}

// displayWidth is the width of s in en, honouring wide East Asian characters
// and multi-codepoint graphemes.
func displayWidth(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

func pad(s string, width int, context *uax11.Context) string {
	if w := displayWidth(s, context); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// printTable outputs rows as two aligned columns. The rule below the header
// is clipped to the terminal width, if known.
func (r *REPL) printTable(rows []row) {
	kw, vw := len("KEY"), len("VALUE")
	for _, rw := range rows {
		kw = max(kw, displayWidth(rw.key, r.Context))
		vw = max(vw, displayWidth(rw.value, r.Context))
	}
	rule := kw + 3 + vw
	if r.Width > 0 && rule > r.Width {
		rule = r.Width
	}
	r.colors.info.Fprintf(r.out, "%s | %s\n", pad("KEY", kw, r.Context), "VALUE")
	r.colors.info.Fprintln(r.out, strings.Repeat("-", rule))
	for _, rw := range rows {
		r.colors.key.Fprint(r.out, pad(rw.key, kw, r.Context))
		r.out.Write([]byte(" | "))
		r.colors.value.Fprintln(r.out, rw.value)
	}
}

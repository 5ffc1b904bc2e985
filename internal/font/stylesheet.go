package font

import (
	"fmt"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
)

const (
	MimeCSS = "text/css"

	cssAPI = "https://fonts.googleapis.com/css2"
)

// Stylesheet returns the minified CSS that binds each font's class name to
// its custom property.
func Stylesheet(fonts ...*Font) (string, error) {
	var b strings.Builder
	for _, f := range fonts {
		fmt.Fprintf(&b, ".%s {\n  %s: %s;\n}\n", f.ClassName, f.Variable, f.Stack)
	}

	m := minify.New()
	m.AddFunc(MimeCSS, css.Minify)

	out, err := m.String(MimeCSS, b.String())
	if err != nil {
		return "", fmt.Errorf("minify font stylesheet: %w", err)
	}
	return out, nil
}

// Href builds the Google Fonts CSS2 URL that loads every font. The display
// value of the first font applies to the whole request.
func Href(fonts ...*Font) string {
	if len(fonts) == 0 {
		return ""
	}

	params := make([]string, 0, len(fonts)+1)
	for _, f := range fonts {
		family := strings.ReplaceAll(f.Family, " ", "+")
		params = append(params, "family="+family+":"+f.axis())
	}
	params = append(params, "display="+fonts[0].Display)

	return cssAPI + "?" + strings.Join(params, "&")
}

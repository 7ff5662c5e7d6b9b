package demo

import (
	"html/template"
	"io"
	"strconv"

	tooltip "github.com/rvx-apps/ToolTip"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="tooltip-css" content="{{.Stylesheet}}">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}}</h1>
{{with .Words}}<p id="container">{{range .}}<span>{{.}}</span> {{end}}</p>
{{end}}<div class="anchors">
{{range .Anchors}}<button type="button"{{range .Attrs}} {{.}}{{end}}{{with .Style}} style="{{.}}"{{end}}>{{.Label}}</button>
{{end}}</div>
<script src="{{.Script}}"></script>
</body>
</html>
`))

type pageView struct {
	Title      string
	Stylesheet string
	Script     string
	Words      []string
	Anchors    []anchorView
}

type anchorView struct {
	Label string
	Attrs []template.HTMLAttr
	Style template.CSS
}

// Render writes the demo page for f.
func Render(w io.Writer, f Fixture) error {
	view := pageView{
		Title:      f.Title,
		Stylesheet: f.Stylesheet,
		Script:     f.Script,
		Words:      f.Words,
	}
	for _, a := range f.Anchors {
		view.Anchors = append(view.Anchors, anchorView{
			Label: a.Label,
			Attrs: anchorAttrs(a),
			// fixtures are written by whoever runs the server
			Style: template.CSS(a.Style),
		})
	}
	return pageTemplate.Execute(w, view)
}

func anchorAttrs(a Anchor) []template.HTMLAttr {
	attrs := []template.HTMLAttr{attr(tooltip.AttrContent, a.Content)}
	if a.Placement != "" {
		attrs = append(attrs, attr(tooltip.AttrPlacement, a.Placement))
	}
	if a.Theme != "" {
		attrs = append(attrs, attr(tooltip.AttrTheme, a.Theme))
	}
	if a.HTML {
		attrs = append(attrs, template.HTMLAttr(tooltip.AttrHTML))
	}
	if a.Follow {
		attrs = append(attrs, template.HTMLAttr(tooltip.AttrFollow))
	}
	if a.DelayMS != nil {
		attrs = append(attrs, attr(tooltip.AttrDelay, strconv.Itoa(*a.DelayMS)))
	}
	if a.Offset != nil {
		attrs = append(attrs, attr(tooltip.AttrOffset, strconv.FormatFloat(*a.Offset, 'f', -1, 64)))
	}
	return attrs
}

func attr(name, value string) template.HTMLAttr {
	return template.HTMLAttr(name + `="` + template.HTMLEscapeString(value) + `"`)
}

package tooltip

const (
	// DefaultCSSURL is the stylesheet injected when no URL is given.
	DefaultCSSURL = "https://cdn.jsdelivr.net/gh/rvx-apps/ToolTip@refs/heads/main/css/index.css"
	// StylesheetMarker tags the injected link so it is added only once.
	StylesheetMarker = "data-rvx-tooltip"
)

// InjectCSS appends a stylesheet link to the document head unless one
// carrying StylesheetMarker is already present. It reports whether a link
// was added.
func InjectCSS(doc Document, href string) bool {
	if doc.HasStylesheet(StylesheetMarker) {
		return false
	}
	if href == "" {
		href = DefaultCSSURL
	}
	doc.AppendStylesheet(href, StylesheetMarker)
	return true
}

package compile

import "strings"

// Packager turns an Artifact into named output files. The compiler stays a
// pure text transform; packagers decide how the text is laid out on disk or
// offered for download.
type Packager interface {
	Name() string
	Package(artifact Artifact) []File
}

// SplitPackager emits the three blobs as individual files, the layout used
// for multi-file download.
type SplitPackager struct{}

func (SplitPackager) Name() string { return "split" }

func (SplitPackager) Package(artifact Artifact) []File {
	return []File{
		{Name: "index.html", Content: artifact.Markup},
		{Name: "styles.css", Content: artifact.Stylesheet},
		{Name: "form.js", Content: artifact.Behavior},
	}
}

// InlinePackager combines the bundle into one self-contained HTML document
// by inlining the stylesheet and behavior script into the markup's
// placeholder slots.
type InlinePackager struct{}

func (InlinePackager) Name() string { return "inline" }

func (InlinePackager) Package(artifact Artifact) []File {
	document := artifact.Markup
	document = strings.Replace(document,
		`<link rel="stylesheet" href="styles.css">`,
		"<style>\n"+artifact.Stylesheet+"</style>", 1)
	document = strings.Replace(document,
		`<script src="form.js"></script>`,
		"<script>\n"+artifact.Behavior+"</script>", 1)
	return []File{{Name: "index.html", Content: document}}
}

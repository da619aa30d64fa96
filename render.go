package main

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var reportRenderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s Documentation Analysis</title>
</head>
<body>
%s</body>
</html>
`

// renderHTML wraps the markdown report into a standalone HTML page.
func renderHTML(project, markdown string) (string, error) {
	var buf bytes.Buffer
	if err := reportRenderer.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown render: %w", err)
	}

	return fmt.Sprintf(htmlPage, html.EscapeString(project), buf.String()), nil
}

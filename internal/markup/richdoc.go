package markup

import "strings"

const (
	richDocumentHead = `<!DOCTYPE html>
<html xmlns:o='urn:schemas-microsoft-com:office:office' xmlns:w='urn:schemas-microsoft-com:office:word' xmlns='http://www.w3.org/TR/REC-html40'>
<head>
<meta charset='utf-8'>
<title>Export HTML To Doc</title>
<style>
body {
    font-family: Calibri, sans-serif;
    font-size: 11pt;
}
</style>
</head>
<body>`

	richDocumentTail = `</body>
</html>
`
)

// RichDocument embeds markup verbatim in an HTML document that word
// processors open as a .doc file. Formatting is left for the word
// processor to interpret; no conversion takes place.
func RichDocument(markup string) string {
	var b strings.Builder
	b.Grow(len(richDocumentHead) + len(markup) + len(richDocumentTail))
	b.WriteString(richDocumentHead)
	b.WriteString(markup)
	b.WriteString(richDocumentTail)
	return b.String()
}

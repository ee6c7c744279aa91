// Package markup converts editor markup into display and export forms.
//
// Markup is the opaque rich-text payload of a document: an HTML fragment
// built from paragraph containers (<div>, <p>), line breaks and the inline
// emphasis tags <b>/<strong>, <i>/<em> and <u>. Nothing here validates or
// repairs it. Every function accepts arbitrary input and never fails.
//
// Derived views:
//
//   - PlainText: character data only, one line per block
//   - Title, WordCount: sidebar and status bar values
//   - PortableText: text with **bold**, *italic* and _underline_ markers
//   - RichDocument: the markup inside a Word-readable HTML shell
//
// The block model (ParseBlocks, RenderBlocks, Apply) is what the terminal
// editing surface uses to edit markup one paragraph per line.
package markup

package domain

// ExportFormat identifies an export encoding of a document.
type ExportFormat string

// Available export formats.
const (
	// ExportFormatText is portable text with lightweight emphasis markers.
	ExportFormatText ExportFormat = "txt"

	// ExportFormatRichDocument wraps the markup in a word-processor shell.
	ExportFormatRichDocument ExportFormat = "doc"
)

// IsValid returns true if the format is recognised.
func (f ExportFormat) IsValid() bool {
	return f == ExportFormatText || f == ExportFormatRichDocument
}

// String returns the string representation.
func (f ExportFormat) String() string {
	return string(f)
}

// Filename returns the download filename for the format.
func (f ExportFormat) Filename() string {
	switch f {
	case ExportFormatText:
		return "document.txt"
	case ExportFormatRichDocument:
		return "document.doc"
	default:
		return "document"
	}
}

// MediaType returns the media type handed to the download side effect.
func (f ExportFormat) MediaType() string {
	switch f {
	case ExportFormatText:
		return "text/plain;charset=utf-8;"
	case ExportFormatRichDocument:
		return "application/msword"
	default:
		return "application/octet-stream"
	}
}

// Description returns a human-readable label for the format.
func (f ExportFormat) Description() string {
	switch f {
	case ExportFormatText:
		return "Download as .txt"
	case ExportFormatRichDocument:
		return "Download as .docx"
	default:
		return unknownDescription
	}
}

// AllExportFormats returns all export formats in display order.
func AllExportFormats() []ExportFormat {
	return []ExportFormat{ExportFormatText, ExportFormatRichDocument}
}

// Export is a rendered export payload ready for a file sink.
type Export struct {
	Format    ExportFormat
	Filename  string
	MediaType string
	Content   string
}

// FormatCommand is an inline formatting command of the editing surface.
type FormatCommand string

// Available formatting commands.
const (
	FormatBold        FormatCommand = "bold"
	FormatItalic      FormatCommand = "italic"
	FormatUnderline   FormatCommand = "underline"
	FormatAlignLeft   FormatCommand = "align-left"
	FormatAlignCenter FormatCommand = "align-center"
	FormatAlignRight  FormatCommand = "align-right"
)

// IsValid returns true if the command is recognised.
func (c FormatCommand) IsValid() bool {
	switch c {
	case FormatBold, FormatItalic, FormatUnderline,
		FormatAlignLeft, FormatAlignCenter, FormatAlignRight:
		return true
	default:
		return false
	}
}

// IsAlignment reports whether the command changes block alignment.
func (c FormatCommand) IsAlignment() bool {
	return c == FormatAlignLeft || c == FormatAlignCenter || c == FormatAlignRight
}

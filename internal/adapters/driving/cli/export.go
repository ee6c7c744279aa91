package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/blankpage/internal/core/domain"
	"github.com/custodia-labs/blankpage/internal/core/ports/driving"
)

var exportCmd = &cobra.Command{
	Use:   "export [txt|doc] [doc-id]",
	Short: "Export a document",
	Long: `Export a document (the active one by default).

Formats:
  txt  - Portable text with **bold**, *italic* and _underline_ markers
  doc  - Word-processor document

The file is written to the export directory (export.dir in config.toml,
or the working directory). Use --clipboard to copy it instead, or
--stdout to print it.`,
	Args:      cobra.RangeArgs(1, 2),
	ValidArgs: []string{string(domain.ExportFormatText), string(domain.ExportFormatRichDocument)},
	RunE:      runExport,
}

// Flags for the export command.
var (
	exportClipboard bool
	exportStdout    bool
)

func init() {
	exportCmd.Flags().BoolVar(&exportClipboard, "clipboard", false, "Copy to the system clipboard")
	exportCmd.Flags().BoolVar(&exportStdout, "stdout", false, "Print the export instead of writing a file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportService == nil || workspaceService == nil {
		return errors.New("export service not configured")
	}

	format := domain.ExportFormat(args[0])
	if !format.IsValid() {
		return fmt.Errorf("export %q: %w", args[0], domain.ErrUnsupportedFormat)
	}

	if exportStdout {
		doc, err := resolveDocument(args[1:])
		if err != nil {
			return err
		}
		exp, err := exportService.Render(format, doc.Content)
		if err != nil {
			return fmt.Errorf("failed to render document: %w", err)
		}
		cmd.Print(exp.Content)
		return nil
	}

	var svc driving.ExportService = exportService
	if exportClipboard {
		if clipboardService == nil {
			return errors.New("clipboard not available")
		}
		svc = clipboardService
	}

	var (
		location string
		err      error
	)
	if len(args) == 2 {
		location, err = svc.ExportDocument(cmd.Context(), args[1], format)
	} else {
		location, err = svc.ExportActive(cmd.Context(), format)
	}
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	cmd.Printf("Exported %s to %s\n", format.Filename(), location)
	return nil
}

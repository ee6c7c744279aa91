package cli

import (
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/blankpage/internal/core/domain"
	"github.com/custodia-labs/blankpage/internal/markup"
)

var documentCmd = &cobra.Command{
	Use:     "doc",
	Aliases: []string{"document", "docs"},
	Short:   "Manage documents",
	Long:    `List, create, show, switch, edit or delete documents.`,
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents, newest first",
	Args:  cobra.NoArgs,
	RunE:  runDocumentList,
}

var documentNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a document and make it active",
	Args:  cobra.NoArgs,
	RunE:  runDocumentNew,
}

var documentShowCmd = &cobra.Command{
	Use:   "show [doc-id]",
	Short: "Print a document (the active one by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDocumentShow,
}

var documentSwitchCmd = &cobra.Command{
	Use:   "switch [doc-id]",
	Short: "Make a document active",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentSwitch,
}

var documentDeleteCmd = &cobra.Command{
	Use:   "delete [doc-id]",
	Short: "Delete a document",
	Long: `Delete a document. Deleting the active document activates the newest
remaining one; deleting the last document leaves a fresh empty one.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocumentDelete,
}

var documentEditCmd = &cobra.Command{
	Use:   "edit [doc-id]",
	Short: "Replace the content of a document (the active one by default)",
	Long: `Replace the content of a document with markup or plain text.

The new content comes from --content, or from --file (use - for stdin).
With --text every input line becomes one paragraph.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDocumentEdit,
}

// Flags for the document commands.
var (
	newContent  string
	showRaw     bool
	editContent string
	editFile    string
	editText    bool
)

func init() {
	documentNewCmd.Flags().StringVarP(&newContent, "content", "c", "", "Initial markup")
	documentShowCmd.Flags().BoolVar(&showRaw, "raw", false, "Print the markup instead of portable text")
	documentEditCmd.Flags().StringVarP(&editContent, "content", "c", "", "New markup")
	documentEditCmd.Flags().StringVarP(&editFile, "file", "f", "", "Read the new content from a file (- for stdin)")
	documentEditCmd.Flags().BoolVar(&editText, "text", false, "Treat the input as plain text")

	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentNewCmd)
	documentCmd.AddCommand(documentShowCmd)
	documentCmd.AddCommand(documentSwitchCmd)
	documentCmd.AddCommand(documentDeleteCmd)
	documentCmd.AddCommand(documentEditCmd)
	rootCmd.AddCommand(documentCmd)
}

func runDocumentList(cmd *cobra.Command, _ []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	docs := workspaceService.Documents()
	activeID := workspaceService.ActiveID()

	cmd.Println("Documents:")
	cmd.Println()
	for i := range docs {
		marker := " "
		if docs[i].ID == activeID {
			marker = "*"
		}
		cmd.Printf("%s %s\n", marker, docs[i].ID)
		cmd.Printf("    Title:    %s\n", markup.Title(docs[i].Content))
		cmd.Printf("    Words:    %s\n", markup.WordCountLabel(markup.WordCount(docs[i].Content)))
		cmd.Printf("    Modified: %s\n", modifiedAgo(docs[i]))
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentNew(cmd *cobra.Command, _ []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	id := workspaceService.Create()
	if newContent != "" {
		workspaceService.UpdateContent(id, newContent)
	}
	if err := saveWorkspace(cmd.Context()); err != nil {
		return err
	}

	cmd.Printf("Created document %s\n", id)
	return nil
}

func runDocumentShow(cmd *cobra.Command, args []string) error {
	if workspaceService == nil || exportService == nil {
		return errors.New("workspace service not configured")
	}

	doc, err := resolveDocument(args)
	if err != nil {
		return err
	}

	if showRaw {
		cmd.Println(doc.Content)
		return nil
	}

	exp, err := exportService.Render(domain.ExportFormatText, doc.Content)
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	cmd.Println(exp.Content)
	return nil
}

func runDocumentSwitch(cmd *cobra.Command, args []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	id := args[0]
	if !workspaceService.Switch(id) {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	if err := saveWorkspace(cmd.Context()); err != nil {
		return err
	}

	cmd.Printf("Switched to %s\n", id)
	return nil
}

func runDocumentDelete(cmd *cobra.Command, args []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	id := args[0]
	if _, err := workspaceService.Get(id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	workspaceService.Delete(id)
	if err := saveWorkspace(cmd.Context()); err != nil {
		return err
	}

	cmd.Printf("Deleted %s\n", id)
	cmd.Printf("Active document: %s\n", workspaceService.ActiveID())
	return nil
}

func runDocumentEdit(cmd *cobra.Command, args []string) error {
	if workspaceService == nil {
		return errors.New("workspace service not configured")
	}

	doc, err := resolveDocument(args)
	if err != nil {
		return err
	}

	content, err := readEditInput(cmd.InOrStdin())
	if err != nil {
		return err
	}
	if editText {
		content = textToMarkup(content)
	}

	workspaceService.UpdateContent(doc.ID, content)
	if err := saveWorkspace(cmd.Context()); err != nil {
		return err
	}

	cmd.Printf("Updated %s (%s)\n", doc.ID, markup.WordCountLabel(markup.WordCount(content)))
	return nil
}

// resolveDocument returns the document named by args, or the active one.
func resolveDocument(args []string) (domain.Document, error) {
	if len(args) == 0 {
		return workspaceService.Active(), nil
	}
	doc, err := workspaceService.Get(args[0])
	if err != nil {
		return domain.Document{}, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// readEditInput returns the content given by --content or --file.
func readEditInput(stdin io.Reader) (string, error) {
	switch {
	case editContent != "" && editFile != "":
		return "", fmt.Errorf("--content and --file are exclusive: %w", domain.ErrInvalidInput)
	case editContent != "":
		return editContent, nil
	case editFile == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	case editFile != "":
		data, err := os.ReadFile(editFile)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", editFile, err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("one of --content or --file is required: %w", domain.ErrInvalidInput)
	}
}

// textToMarkup turns each line of plain text into an escaped paragraph.
func textToMarkup(text string) string {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	blocks := make([]markup.Block, len(lines))
	for i, line := range lines {
		blocks[i] = markup.Block{Inner: html.EscapeString(line)}
	}
	return markup.RenderBlocks(blocks)
}

// modifiedAgo formats the modification time of doc for listings.
func modifiedAgo(doc domain.Document) string {
	if doc.LastModified == 0 {
		return "never"
	}
	return humanize.Time(doc.ModifiedAt())
}

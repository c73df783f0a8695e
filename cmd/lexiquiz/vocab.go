package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/lexiquiz/internal/bootstrap"
	"github.com/at-ishikawa/lexiquiz/internal/datasync"
	"github.com/at-ishikawa/lexiquiz/internal/lexicon"
	"github.com/at-ishikawa/lexiquiz/internal/pdf"
)

// ExportFormat is the file format export writes.
type ExportFormat string

const (
	ExportFormatYAML     ExportFormat = "yaml"
	ExportFormatMarkdown ExportFormat = "markdown"
	ExportFormatPDF      ExportFormat = "pdf"
)

var allExportFormats = []ExportFormat{ExportFormatYAML, ExportFormatMarkdown, ExportFormatPDF}

func (f *ExportFormat) Set(val string) error {
	for _, format := range allExportFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f ExportFormat) String() string {
	return string(f)
}

func (f *ExportFormat) Type() string {
	return "format"
}

var _ pflag.Value = (*ExportFormat)(nil)

func newVocabCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "vocab",
		Short: "Import and export saved words",
	}
	command.AddCommand(newVocabImportCommand(), newVocabExportCommand())
	return command
}

func newVocabImportCommand() *cobra.Command {
	var opts datasync.ImportOptions
	command := &cobra.Command{
		Use:   "import <file>",
		Short: "Import words from a YAML vocabulary file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := datasync.ReadVocabularyFile(args[0])
			if err != nil {
				return fmt.Errorf("datasync.ReadVocabularyFile() > %w", err)
			}

			return runWithApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				out := cmd.OutOrStdout()
				if opts.DryRun {
					fmt.Fprintln(out, "Dry run: nothing is written")
				}
				result, err := datasync.NewImporter(app.Repository, out).ImportVocabulary(ctx, words, opts)
				if err != nil {
					return fmt.Errorf("importer.ImportVocabulary() > %w", err)
				}
				fmt.Fprintf(out, "\nwords: %d new, %d updated, %d skipped, %d invalid\n",
					result.WordsNew, result.WordsUpdated, result.WordsSkipped, result.WordsInvalid)
				return nil
			})
		},
	}
	command.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show what would be imported without writing")
	command.Flags().BoolVar(&opts.UpdateExisting, "update-existing", false, "Overwrite the score of saved words")
	return command
}

func newVocabExportCommand() *cobra.Command {
	format := ExportFormatYAML
	var outputDir string
	var meanings bool
	var pdfOptions pdf.Options
	command := &cobra.Command{
		Use:   "export",
		Short: "Export saved words as YAML, Markdown or PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(cmd, func(ctx context.Context, app *bootstrap.App) error {
				if outputDir == "" {
					outputDir = app.Config.Outputs.ExportDirectory
				}
				records, err := datasync.NewExporter(app.Repository).Export(ctx)
				if err != nil {
					return fmt.Errorf("exporter.Export() > %w", err)
				}

				var path string
				switch format {
				case ExportFormatYAML:
					path, err = datasync.NewYAMLVocabularySink(outputDir).WriteAll(records)
				case ExportFormatMarkdown, ExportFormatPDF:
					var dictionary lexicon.Dictionary
					if meanings {
						dictionary = app.Lexicon
					}
					sink := datasync.NewMarkdownVocabularySink(outputDir, app.Config.Templates.VocabularyTemplate, dictionary)
					path, err = sink.WriteAll(ctx, records)
					if err == nil && format == ExportFormatPDF {
						path, err = pdf.ConvertMarkdownToPDF(path, pdfOptions)
					}
				}
				if err != nil {
					return fmt.Errorf("export %s: %w", format, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d words to %s\n", len(records), path)
				return nil
			})
		},
	}
	flags := command.Flags()
	flags.Var(&format, "format", fmt.Sprintf("Output format. Possible values are %v", allExportFormats))
	flags.StringVar(&outputDir, "output-dir", "", "Output directory. Defaults to outputs.export_directory")
	flags.BoolVar(&meanings, "meanings", true, "Look up the meanings of each word for markdown and pdf")
	flags.BoolVar(&pdfOptions.Landscape, "landscape", false, "Use landscape orientation for pdf")
	flags.StringVar(&pdfOptions.PaperSize, "paper-size", "A4", "Paper size for pdf")
	flags.BoolVar(&pdfOptions.Dark, "dark", false, "Use the dark theme for pdf")
	return command
}

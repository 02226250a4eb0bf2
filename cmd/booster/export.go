package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-booster/internal/export"
	"github.com/jonathan/resume-booster/internal/preview"
	"github.com/jonathan/resume-booster/internal/types"
)

var (
	exportOut      string
	exportTemplate string
	exportATS      bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume or portfolio to a file",
}

var exportDocxCmd = &cobra.Command{
	Use:   "docx <resume.json>",
	Short: "Export a resume as a Word document",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportDocx,
}

var exportHTMLCmd = &cobra.Command{
	Use:   "html <portfolio.json>",
	Short: "Export a portfolio as a self-contained HTML page",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportHTML,
}

var exportJSXCmd = &cobra.Command{
	Use:   "jsx <portfolio.json>",
	Short: "Export a portfolio as a React component",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportJSX,
}

var exportPDFCmd = &cobra.Command{
	Use:   "pdf <resume.json>",
	Short: "Print the resume preview to PDF (requires Chrome/Chromium)",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportPDF,
}

func init() {
	exportCmd.PersistentFlags().StringVarP(&exportOut, "out", "o", "", "Output path (defaults next to the input)")
	exportPDFCmd.Flags().StringVar(&exportTemplate, "template", "classic", "Preview template: classic|modern|minimal")
	exportPDFCmd.Flags().BoolVar(&exportATS, "ats", false, "Use the plain ATS-safe styling")
	exportCmd.AddCommand(exportDocxCmd, exportHTMLCmd, exportJSXCmd, exportPDFCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExportDocx(cmd *cobra.Command, args []string) error {
	data, err := readResume(args[0])
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = export.DOCXFilename(data)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := export.WriteDOCX(f, data); err != nil {
		return err
	}
	cmd.Printf("Wrote %s\n", out)
	return nil
}

func runExportHTML(cmd *cobra.Command, args []string) error {
	state, err := readPortfolio(args[0])
	if err != nil {
		return err
	}

	page, err := export.PortfolioHTML(state)
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = export.PortfolioHTMLFilename(state)
	}
	if err := os.WriteFile(out, []byte(page), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	cmd.Printf("Wrote %s\n", out)
	return nil
}

func runExportJSX(cmd *cobra.Command, args []string) error {
	state, err := readPortfolio(args[0])
	if err != nil {
		return err
	}

	src, err := export.PortfolioJSX(state)
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = strings.TrimSuffix(export.PortfolioHTMLFilename(state), ".html") + ".jsx"
	}
	if err := os.WriteFile(out, []byte(src), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	cmd.Printf("Wrote %s\n", out)
	return nil
}

func runExportPDF(cmd *cobra.Command, args []string) error {
	data, err := readResume(args[0])
	if err != nil {
		return err
	}

	fragment, err := preview.Render(data, types.TemplateID(exportTemplate).OrDefault(), nil, preview.Options{ATS: exportATS})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	pdf, err := export.PrintPDF(ctx, export.PrintableDocument(data.FullName(), fragment), export.DefaultPrintTimeout)
	if err != nil {
		return err
	}

	out := exportOut
	if out == "" {
		out = strings.TrimSuffix(export.DOCXFilename(data), ".docx") + ".pdf"
	}
	if err := os.WriteFile(out, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	cmd.Printf("Wrote %s\n", out)
	return nil
}

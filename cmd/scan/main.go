package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"k8s.io/klog/v2"

	"apigee-inventory/internal/config"
	"apigee-inventory/internal/inventory"
	"apigee-inventory/internal/model"
	"apigee-inventory/internal/output"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Parse(os.Args[1:])
	switch {
	case errors.Is(err, config.ErrHelp):
		fmt.Fprint(os.Stderr, config.Usage())
		return
	case errors.Is(err, config.ErrVersion):
		fmt.Printf("%s version %s\n", model.ToolName, model.ToolVersion)
		return
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n\n%s", err, config.Usage())
		os.Exit(2)
	}
	defer klog.Flush()

	report, err := inventory.Build(inventory.Options{
		Root:        cfg.Root,
		ComparePath: cfg.ComparePath,
	})
	if err != nil {
		fatal(err, "Inventory failed")
	}

	sheets, err := output.WriteWorkbook(cfg.Output, report)
	if err != nil {
		fatal(err, "Writing workbook failed", "path", cfg.Output)
	}

	write(cfg, report)

	if len(report.Diagnostics) > 0 {
		klog.InfoS("Some files could not be parsed and were reported with default values",
			"count", len(report.Diagnostics))
	}
	if !cfg.Quiet {
		fmt.Println(output.RenderSummary(report))
	}
	fmt.Printf("Sheets written: %q\n", sheets)
	fmt.Println("Report with detailed artifacts completed:", cfg.Output)
}

// write produces the optional exports next to the workbook.
func write(cfg config.Config, report *model.Report) {
	if cfg.JSON {
		if err := output.WriteJSON(cfg.JSONPath(), report); err != nil {
			fatal(err, "Writing JSON failed", "path", cfg.JSONPath())
		}
		fmt.Println("JSON:", cfg.JSONPath())
	}
	if cfg.CSV {
		if _, err := output.WriteCSV(cfg.CSVDir(), report); err != nil {
			fatal(err, "Writing CSV failed", "dir", cfg.CSVDir())
		}
		fmt.Println("CSV exports:", cfg.CSVDir())
	}
	if cfg.Markdown {
		if err := output.WriteMarkdown(cfg.MarkdownPath(), report); err != nil {
			fatal(err, "Writing Markdown failed", "path", cfg.MarkdownPath())
		}
		fmt.Println("Markdown:", cfg.MarkdownPath())
	}
}

func fatal(err error, msg string, keysAndValues ...any) {
	klog.ErrorS(err, msg, keysAndValues...)
	klog.FlushAndExit(klog.ExitFlushTimeout, 1)
}

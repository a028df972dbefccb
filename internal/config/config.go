package config

import (
	"errors"
	goflag "flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"apigee-inventory/internal/output"
)

const (
	EnvRoot       = "APIGEE_EXPORT_ROOT"
	EnvReportName = "APIGEE_REPORT_NAME"
)

var (
	ErrHelp    = errors.New("help requested")
	ErrVersion = errors.New("version requested")
)

type Config struct {
	// Root is the exported workspace directory.
	Root string
	// Output is the workbook path. Relative names are resolved against Root.
	Output      string
	JSON        bool
	CSV         bool
	Markdown    bool
	ComparePath string
	Quiet       bool
}

// JSONPath is the JSON export next to the workbook.
func (c Config) JSONPath() string {
	return trimExt(c.Output) + ".json"
}

func (c Config) MarkdownPath() string {
	return trimExt(c.Output) + ".md"
}

func (c Config) CSVDir() string {
	return filepath.Join(filepath.Dir(c.Output), "csv")
}

func trimExt(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

type flags struct {
	root, output, compare      string
	json, csv, markdown, quiet bool
	version, help              bool
}

func newFlagSet(f *flags) *pflag.FlagSet {
	fs := pflag.NewFlagSet("apigee-inventory", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringVarP(&f.root, "root", "r", os.Getenv(EnvRoot), "Exported workspace root (env "+EnvRoot+")")
	fs.StringVarP(&f.output, "output", "o", firstNonEmpty(os.Getenv(EnvReportName), output.DefaultWorkbookName), "Workbook file, relative to the root unless absolute (env "+EnvReportName+")")
	fs.BoolVarP(&f.json, "json", "j", false, "Also write the full report as JSON next to the workbook")
	fs.BoolVar(&f.csv, "csv", false, "Also write one CSV per sheet to a csv/ folder next to the workbook")
	fs.BoolVarP(&f.markdown, "markdown", "m", false, "Also write a Markdown report next to the workbook")
	fs.StringVar(&f.compare, "compare", "", "Path to a previous JSON report to diff against")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "Do not print the summary table")
	fs.BoolVar(&f.version, "version", false, "Print version and exit")
	fs.BoolVarP(&f.help, "help", "h", false, "Show help")

	logFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(logFlags)
	fs.AddGoFlagSet(logFlags)
	return fs
}

// Parse reads the command line. The workspace root may be given as the only
// positional argument, with --root, or through the environment.
func Parse(args []string) (Config, error) {
	var f flags
	fs := newFlagSet(&f)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return Config{}, ErrHelp
		}
		return Config{}, err
	}
	if f.help {
		return Config{}, ErrHelp
	}
	if f.version {
		return Config{}, ErrVersion
	}

	switch fs.NArg() {
	case 0:
	case 1:
		if fs.Changed("root") {
			return Config{}, errors.New("workspace root given both as argument and --root")
		}
		f.root = fs.Arg(0)
	default:
		return Config{}, fmt.Errorf("expected one workspace root, got %d arguments", fs.NArg())
	}

	root := strings.TrimSpace(f.root)
	if root == "" {
		return Config{}, errors.New("workspace root is required")
	}
	out := strings.TrimSpace(f.output)
	if out == "" {
		return Config{}, errors.New("--output must not be empty")
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(root, out)
	}

	return Config{
		Root:        root,
		Output:      out,
		JSON:        f.json,
		CSV:         f.csv,
		Markdown:    f.markdown,
		ComparePath: strings.TrimSpace(f.compare),
		Quiet:       f.quiet,
	}, nil
}

// Usage returns the help text.
func Usage() string {
	var b strings.Builder
	b.WriteString("Usage: apigee-inventory [options] <workspace-root>\n\n")
	b.WriteString("Inventories an exported Apigee workspace (proxies/, sharedflows/, temp/)\n")
	b.WriteString("and writes a multi-sheet Excel report.\n\n")
	b.WriteString("Options:\n")
	b.WriteString(newFlagSet(&flags{}).FlagUsages())
	b.WriteString("\nExamples:\n")
	b.WriteString("  apigee-inventory ./export                 # write ./export/" + output.DefaultWorkbookName + "\n")
	b.WriteString("  apigee-inventory -o report.xlsx --json .  # also keep a JSON snapshot\n")
	b.WriteString("  apigee-inventory --compare old.json -m .  # Markdown report with changes\n")
	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Command tabconv converts tabular data between CSV, TSV, JSON, YAML,
// Markdown, XML and other formats.
//
// Usage:
//
//	tabconv convert --from csv --to markdown people.csv
//	cat people.json | tabconv convert --to yaml
//	tabconv lint --format csv people.csv
//	tabconv detect people.txt
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/tabconv"
)

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tabconv:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Log records go to stderr; debug
// records only with --verbose.
func newRootCmd(stderr io.Writer) *cobra.Command {
	var configPath string
	var verbose bool
	level := new(slog.LevelVar)
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	root := &cobra.Command{
		Use:           "tabconv",
		Short:         "Convert tabular data between text formats",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				level.Set(slog.LevelDebug)
			}
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML file with default options")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")

	root.AddCommand(
		newConvertCmd(log, &configPath),
		newDetectCmd(),
		newLintCmd(),
		newFormatsCmd(),
	)
	return root
}

func newConvertCmd(log *slog.Logger, configPath *string) *cobra.Command {
	var (
		from, to, out string
		opts          convertFlags
	)
	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert input from one format to another",
		Long: `Convert reads a file (or stdin) in the source format and writes it in the
target format to stdout or --out.

When --from is omitted the format is taken from the file extension, or
guessed from the content. Defaults can be set in a --config YAML file or the
TABCONV_FROM, TABCONV_TO, TABCONV_BORDER, TABCONV_TYPE_NAME, TABCONV_ROOT,
TABCONV_ITEM and TABCONV_SHEET environment variables (a .env file is read).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			opts.applyDefaults(cmd, cfg)
			if !cmd.Flags().Changed("to") {
				to = cfg.To
			}
			if !cmd.Flags().Changed("from") && cfg.From != "" {
				from = cfg.From
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}

			target, err := tabconv.ParseFormat(to)
			if err != nil {
				return err
			}
			source, err := resolveSource(from, path, data)
			if err != nil {
				return err
			}
			conv, err := opts.converter()
			if err != nil {
				return err
			}

			// Binary sources and passthrough conversions keep the input bytes.
			text := string(data)
			if !source.Binary() && source != target {
				if text, err = tabconv.DecodeText(data); err != nil {
					return err
				}
				if msg := tabconv.Mismatch(text, source); msg != "" {
					log.Warn(msg, "from", source)
				}
			}

			log.Debug("converting", "from", source, "to", target, "bytes", len(data))
			result, err := conv.Convert(text, source, target)
			if err != nil {
				return err
			}

			if out == "" {
				w := cmd.OutOrStdout()
				if _, err := io.WriteString(w, result); err != nil {
					return err
				}
				if !target.Binary() && result != "" && !strings.HasSuffix(result, "\n") {
					_, err = io.WriteString(w, "\n")
				}
				return err
			}
			saved, err := saveOutput(out, target, []byte(result))
			if err != nil {
				return err
			}
			log.Info("wrote output", "path", saved, "format", target)
			return nil
		},
	}
	cmd.Flags().StringVarP(&from, "from", "f", "", "Source format (default: from file extension or content)")
	cmd.Flags().StringVarP(&to, "to", "t", "json", "Target format, or go-template=<tmpl>")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file or directory instead of stdout")
	opts.register(cmd)
	return cmd
}

// convertFlags carries Converter options set on the command line.
type convertFlags struct {
	border, typeName, root, item, sheet, title, indent string
	maxWidth                                           int
}

func (o *convertFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.border, "border", "rounded", "Text table border: rounded, ascii, heavy, double or none")
	cmd.Flags().StringVar(&o.typeName, "type-name", "", "Type name for swift, typescript and go output")
	cmd.Flags().StringVar(&o.root, "root", "", "XML root element name")
	cmd.Flags().StringVar(&o.item, "item", "", "XML row element name")
	cmd.Flags().StringVar(&o.sheet, "sheet", "", "XLSX sheet name")
	cmd.Flags().StringVar(&o.title, "title", "", "Title for table and html output")
	cmd.Flags().StringVar(&o.indent, "indent", "", "JSON indentation")
	cmd.Flags().IntVar(&o.maxWidth, "max-width", 0, "Truncate text table cells wider than this")
}

func (o *convertFlags) applyDefaults(cmd *cobra.Command, cfg config) {
	set := func(flag string, dst *string, v string) {
		if !cmd.Flags().Changed(flag) && v != "" {
			*dst = v
		}
	}
	set("border", &o.border, cfg.Border)
	set("type-name", &o.typeName, cfg.TypeName)
	set("root", &o.root, cfg.Root)
	set("item", &o.item, cfg.Item)
	set("sheet", &o.sheet, cfg.Sheet)
}

func (o *convertFlags) converter() (tabconv.Converter, error) {
	border, ok := tabconv.ParseBorderStyle(o.border)
	if !ok {
		return tabconv.Converter{}, fmt.Errorf("unknown border style %q", o.border)
	}
	return tabconv.Converter{
		Indent:   o.indent,
		RootName: o.root,
		ItemName: o.item,
		TypeName: o.typeName,
		Border:   border,
		Title:    o.title,
		MaxWidth: o.maxWidth,
		Sheet:    o.sheet,
	}, nil
}

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [file]",
		Short: "Guess the format of the input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}
			text, err := tabconv.DecodeText(data)
			if err != nil {
				return err
			}
			f, ok := tabconv.Detect(text)
			if !ok {
				return fmt.Errorf("could not detect a format")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), f)
			return err
		},
	}
}

func newLintCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "lint [file]",
		Short: "Check that the input is well formed",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			data, err := readInput(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}
			f, err := resolveSource(format, path, data)
			if err != nil {
				return err
			}
			text, err := tabconv.DecodeText(data)
			if err != nil {
				return err
			}
			if err := tabconv.Lint(text, f); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: valid %s\n", f)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Format to check (default: from file extension or content)")
	return cmd
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List supported formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, f := range tabconv.Formats() {
				var roles []string
				if tabconv.CanParse(f) {
					roles = append(roles, "source")
				}
				if tabconv.CanWrite(f) {
					roles = append(roles, "target")
				}
				if _, err := fmt.Fprintf(w, "%-10s .%-6s %s\n", f, f.Extension(), strings.Join(roles, ",")); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// resolveSource picks the source format: the explicit name, else the file
// extension, else a guess from the content.
func resolveSource(name, path string, data []byte) (tabconv.Format, error) {
	if name != "" {
		return tabconv.ParseFormat(name)
	}
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext != "" {
		if f, err := tabconv.ParseFormat(ext); err == nil && tabconv.CanParse(f) {
			return f, nil
		}
	}
	if text, err := tabconv.DecodeText(data); err == nil {
		if f, ok := tabconv.Detect(text); ok {
			return f, nil
		}
	}
	return "", fmt.Errorf("cannot determine the source format, use --from")
}

// saveOutput writes data to path. A directory gets a file named "export"
// and a path without an extension gets the target format's extension. It
// returns the path written.
func saveOutput(path string, f tabconv.Format, data []byte) (string, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, "export")
	}
	if filepath.Ext(path) == "" {
		path += "." + f.Extension()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("save output: %w", err)
	}
	return path, nil
}

// Command validocx validates .docx documents against a requirements file
// and extracts style information from them.
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tsawler/validocx"
	"github.com/tsawler/validocx/format"
	"github.com/tsawler/validocx/logger"
	"github.com/tsawler/validocx/report"
	"github.com/tsawler/validocx/requirements"
)

const version = "0.4.0"

// Exit codes.
const (
	exitOK       = 0
	exitFindings = 1 // validation produced ERROR findings
	exitFatal    = 2 // bad arguments, unreadable input or invalid requirements
)

// CLI defines the command-line interface for validocx.
type CLI struct {
	Validate ValidateCmd `cmd:"" help:"Validate a docx file against requirements"`
	Extract  ExtractCmd  `cmd:"" help:"Extract identity, sections and paragraph styles"`
	Schema   SchemaCmd   `cmd:"" help:"Print the JSON Schema of requirements files"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// runContext carries the output streams into command Run methods.
type runContext struct {
	stdout io.Writer
	stderr io.Writer
}

// exitError ends the program with a specific status.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// existingFile fails with "File '<path>' does not exist" when path is
// missing.
func existingFile(path string) error {
	if _, err := os.Lstat(path); err != nil {
		return &format.FileNotFoundError{Path: path}
	}
	return nil
}

// ValidateCmd validates a document.
type ValidateCmd struct {
	DocxFile     string  `arg:"" name:"docx-file" help:"docx format file to be validated."`
	Requirements string  `short:"r" required:"" help:"Requirements file (.yaml, .yml or .json)."`
	Verbose      bool    `short:"v" xor:"verbosity" help:"Increase output verbosity."`
	Quiet        bool    `short:"q" xor:"verbosity" help:"Only print errors."`
	LogFile      string  `name:"log-file" env:"VALIDOCX_LOG_FILE" help:"Also write the full log to this file."`
	LogFormat    string  `name:"log-format" env:"VALIDOCX_LOG_FORMAT" default:"PRETTY" enum:"CONSOLE,JSON,PRETTY" help:"Console log format."`
	Tolerance    float64 `env:"VALIDOCX_TOLERANCE" default:"0.01" help:"Relative tolerance for numeric comparisons."`
	Report       string  `help:"Write a report; the format follows the extension (.txt, .json, .yaml, .html)."`
}

func (c *ValidateCmd) level() logger.LogLevel {
	switch {
	case c.Verbose:
		return logger.DebugLevel
	case c.Quiet:
		return logger.ErrorLevel
	default:
		return logger.LogLevel(os.Getenv(logger.EnvLevel))
	}
}

func (c *ValidateCmd) Run(rc *runContext) error {
	for _, path := range []string{c.DocxFile, c.Requirements} {
		if err := existingFile(path); err != nil {
			return &exitError{code: exitFatal, err: err}
		}
	}

	log, closeLog, err := logger.NewDual(logger.Config{
		Level:     c.level(),
		Format:    logger.LogFormat(c.LogFormat),
		Console:   rc.stderr,
		File:      c.LogFile,
		FileLevel: logger.DebugLevel,
	})
	if err != nil {
		return &exitError{code: exitFatal, err: err}
	}
	defer closeLog()

	rep, err := validocx.Open(c.DocxFile).
		Tolerance(c.Tolerance).
		Logger(log.Named("validocx")).
		Validate(c.Requirements)

	if rep != nil && c.Report != "" {
		if werr := report.WriteFile(c.Report, rep); werr != nil {
			log.Error("Failed to write report", zap.Error(werr))
			return &exitError{code: exitFatal, err: werr}
		}
	}
	if err != nil {
		return &exitError{code: exitFatal, err: err}
	}

	log.Info(rep.Summary.String())
	if rep.HasErrors() {
		return &exitError{code: exitFindings}
	}
	return nil
}

// ExtractCmd dumps the attributes of selected paragraphs.
type ExtractCmd struct {
	DocxFile string   `arg:"" name:"docx-file" help:"docx format file to be analyzed."`
	Style    []string `short:"s" required:"" help:"Styles to be fetched and analyzed."`
	Output   string   `short:"o" help:"Write to a .json or .yaml file instead of stdout."`
}

func (c *ExtractCmd) Run(rc *runContext) error {
	if err := existingFile(c.DocxFile); err != nil {
		return &exitError{code: exitFatal, err: err}
	}

	ex, err := validocx.Open(c.DocxFile).Extract(c.Style...)
	if err != nil {
		return &exitError{code: exitFatal, err: err}
	}

	if c.Output != "" {
		if err := requirements.Write(c.Output, ex); err != nil {
			return &exitError{code: exitFatal, err: err}
		}
		return nil
	}

	enc := json.NewEncoder(rc.stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(ex); err != nil {
		return &exitError{code: exitFatal, err: err}
	}
	return nil
}

// SchemaCmd prints the requirements schema.
type SchemaCmd struct{}

func (c *SchemaCmd) Run(rc *runContext) error {
	data, err := requirements.RequirementsSchema.JSON()
	if err != nil {
		return &exitError{code: exitFatal, err: err}
	}
	_, err = fmt.Fprintf(rc.stdout, "%s\n", data)
	return err
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(rc *runContext) error {
	fmt.Fprintf(rc.stdout, "validocx %s\n", version)
	return nil
}

// run parses args, executes the selected command and returns the exit
// status.
func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	exited := -1

	parser, err := kong.New(&cli,
		kong.Name("validocx"),
		kong.Description("docx-file validation CLI."),
		kong.Writers(stdout, stderr),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Exit(func(code int) {
			if exited < 0 {
				exited = code
			}
		}),
	)
	if err != nil {
		fmt.Fprintf(stderr, "validocx: error: %v\n", err)
		return exitFatal
	}

	ctx, err := parser.Parse(args)
	if exited >= 0 {
		return exited
	}
	if err != nil {
		fmt.Fprintf(stderr, "validocx: error: %v\n", err)
		return exitFatal
	}

	err = ctx.Run(&runContext{stdout: stdout, stderr: stderr})
	if err == nil {
		return exitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintf(stderr, "validocx: error: %v\n", ee.err)
		}
		return ee.code
	}
	fmt.Fprintf(stderr, "validocx: error: %v\n", err)
	return exitFatal
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "validocx: warning: reading .env: %v\n", err)
	}
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

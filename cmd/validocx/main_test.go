package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tsawler/validocx/internal/docxtest"
	"github.com/tsawler/validocx/requirements"
)

func execute(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeRequirements(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const passing = `{"sections": [
  {"unit": "cm", "attributes": {"orientation": 0}},
  {"unit": "cm", "attributes": {"orientation": 0}}
], "styles": {}}`

const failing = `sections:
  - unit: cm
    attributes: {orientation: 1}
styles: {}
`

func TestValidate_MissingArguments(t *testing.T) {
	code, _, stderr := execute(t, "validate", "-r", "req.yaml")
	if code != exitFatal {
		t.Errorf("code = %d, want %d", code, exitFatal)
	}
	if !strings.Contains(stderr, "docx-file") {
		t.Errorf("stderr = %q", stderr)
	}

	code, _, stderr = execute(t, "validate", "fake.docx")
	if code != exitFatal || !strings.Contains(stderr, "--requirements") {
		t.Errorf("code = %d, stderr = %q", code, stderr)
	}
}

func TestValidate_FileMissing(t *testing.T) {
	docPath := docxtest.Sample().WriteFile(t, "fake.docx")
	reqPath := writeRequirements(t, "requirements.yaml", failing)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"docx", []string{"validate", "missing.docx", "-r", reqPath}, "File 'missing.docx' does not exist"},
		{"requirements", []string{"validate", docPath, "-r", "requirements.yaml"}, "File 'requirements.yaml' does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := execute(t, tt.args...)
			if code != exitFatal {
				t.Errorf("code = %d", code)
			}
			if !strings.Contains(stderr, tt.want) {
				t.Errorf("stderr = %q, want %q", stderr, tt.want)
			}
		})
	}
}

func TestValidate_VerbosityExclusive(t *testing.T) {
	code, _, stderr := execute(t, "validate", "fake.docx", "-r", "req.yaml", "-q", "-v")
	if code != exitFatal {
		t.Errorf("code = %d", code)
	}
	if !strings.Contains(stderr, "--verbose") || !strings.Contains(stderr, "--quiet") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestValidate_Passing(t *testing.T) {
	docPath := docxtest.Sample().WriteFile(t, "fake.docx")
	reqPath := writeRequirements(t, "requirements.json", passing)

	code, _, stderr := execute(t, "validate", docPath, "-r", reqPath)
	if code != exitOK {
		t.Errorf("code = %d, stderr = %s", code, stderr)
	}
	if !strings.Contains(stderr, "Summary results: Errors - 0, Warnings - 5") {
		t.Errorf("stderr = %s", stderr)
	}
	if !strings.Contains(stderr, "Undefined style: 'Title'.") {
		t.Errorf("warnings should be printed: %s", stderr)
	}
}

func TestValidate_Failing(t *testing.T) {
	docPath := docxtest.Sample().WriteFile(t, "fake.docx")
	reqPath := writeRequirements(t, "requirements.yaml", failing)

	code, _, stderr := execute(t, "validate", docPath, "-r", reqPath)
	if code != exitFindings {
		t.Errorf("code = %d, want %d", code, exitFindings)
	}
	want := "'Section 0': attribute 'orientation' with value PORTRAIT (0) does not match required value 1"
	if !strings.Contains(stderr, want) {
		t.Errorf("stderr = %s", stderr)
	}
	if !strings.Contains(stderr, "Summary results: Errors - 1, Warnings - 6") {
		t.Errorf("stderr = %s", stderr)
	}
}

func TestValidate_Quiet(t *testing.T) {
	docPath := docxtest.Sample().WriteFile(t, "fake.docx")
	reqPath := writeRequirements(t, "requirements.yaml", failing)

	_, _, stderr := execute(t, "validate", docPath, "-r", reqPath, "-q")
	if strings.Contains(stderr, "Undefined style") || strings.Contains(stderr, "Summary results") {
		t.Errorf("quiet mode should only print errors: %s", stderr)
	}
	if !strings.Contains(stderr, "'Section 0'") {
		t.Errorf("errors should still be printed: %s", stderr)
	}
}

func TestValidate_LogFileAndReport(t *testing.T) {
	dir := t.TempDir()
	docPath := docxtest.Sample().WriteFile(t, "fake.docx")
	reqPath := writeRequirements(t, "requirements.yaml", failing)
	logPath := filepath.Join(dir, "fake.log")
	reportPath := filepath.Join(dir, "report.json")

	code, _, _ := execute(t, "validate", docPath, "-r", reqPath, "-q",
		"--log-file", logPath, "--report", reportPath)
	if code != exitFindings {
		t.Errorf("code = %d", code)
	}

	logData, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(logData), "Summary results: Errors - 1, Warnings - 6") {
		t.Errorf("log file = %s", logData)
	}

	var rep struct {
		Summary struct {
			Errors   int `json:"errors"`
			Warnings int `json:"warnings"`
		} `json:"summary"`
		Checksum string `json:"checksum"`
	}
	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(data, &rep); err != nil {
		t.Fatal(err)
	}
	if rep.Summary.Errors != 1 || rep.Summary.Warnings != 6 || rep.Checksum == "" {
		t.Errorf("report = %+v", rep)
	}
}

func TestValidate_SchemaViolation(t *testing.T) {
	docPath := docxtest.Sample().WriteFile(t, "fake.docx")
	reqPath := writeRequirements(t, "requirements.yaml", "sections: []\n")

	code, _, stderr := execute(t, "validate", docPath, "-r", reqPath)
	if code != exitFatal {
		t.Errorf("code = %d", code)
	}
	if !strings.Contains(stderr, "invalid requirements") {
		t.Errorf("stderr = %s", stderr)
	}
}

func TestValidate_ToleranceFromEnv(t *testing.T) {
	docPath := docxtest.Sample().WriteFile(t, "fake.docx")
	reqPath := writeRequirements(t, "requirements.yaml", `sections:
  - unit: cm
    attributes: {page_width: 21.8}
  - unit: cm
    attributes: {}
styles: {}
`)

	if code, _, _ := execute(t, "validate", docPath, "-r", reqPath); code != exitOK {
		t.Errorf("default tolerance: code = %d", code)
	}

	t.Setenv("VALIDOCX_TOLERANCE", "0.001")
	if code, _, _ := execute(t, "validate", docPath, "-r", reqPath); code != exitFindings {
		t.Errorf("strict tolerance: code = %d", code)
	}
}

func TestExtract_Stdout(t *testing.T) {
	docPath := docxtest.Sample().WriteFile(t, "fake.docx")

	code, stdout, stderr := execute(t, "extract", docPath, "-s", "Title")
	if code != exitOK {
		t.Fatalf("code = %d, stderr = %s", code, stderr)
	}

	var got struct {
		Author   string `json:"author"`
		Contents struct {
			Headings []struct {
				Text  string `json:"text"`
				Style string `json:"style"`
			} `json:"headings"`
		} `json:"contents"`
	}
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if got.Author != "Fake Author" || len(got.Contents.Headings) != 1 || got.Contents.Headings[0].Text != "Fake Title" {
		t.Errorf("extract = %+v", got)
	}
	if !strings.HasPrefix(stdout, "{\n  \"") {
		t.Errorf("output should be indented by two spaces:\n%s", stdout)
	}
}

func TestExtract_OutputFile(t *testing.T) {
	docPath := docxtest.Sample().WriteFile(t, "fake.docx")
	out := filepath.Join(t.TempDir(), "seed.yaml")

	if code, _, stderr := execute(t, "extract", docPath, "-s", "Heading", "-o", out); code != exitOK {
		t.Fatalf("code = %d, stderr = %s", code, stderr)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Heading 1") || !strings.Contains(string(data), "Heading 2") {
		t.Errorf("seed file = %s", data)
	}
}

func TestExtract_MissingStyle(t *testing.T) {
	code, _, stderr := execute(t, "extract", "fake.docx")
	if code != exitFatal || !strings.Contains(stderr, "--style") {
		t.Errorf("code = %d, stderr = %q", code, stderr)
	}
}

func TestSchema(t *testing.T) {
	code, stdout, stderr := execute(t, "schema")
	if code != exitOK {
		t.Fatalf("code = %d, stderr = %s", code, stderr)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if doc["$id"] != requirements.SchemaURL {
		t.Errorf("$id = %v", doc["$id"])
	}
	if !strings.Contains(stdout, `"page_width"`) || !strings.Contains(stdout, `"uniqueItems": true`) {
		t.Errorf("schema = %s", stdout)
	}
}

func TestVersion(t *testing.T) {
	code, stdout, _ := execute(t, "version")
	if code != exitOK || stdout != "validocx "+version+"\n" {
		t.Errorf("code = %d, stdout = %q", code, stdout)
	}
}

func TestHelp(t *testing.T) {
	code, stdout, _ := execute(t, "--help")
	if code != exitOK || !strings.Contains(stdout, "validate") {
		t.Errorf("code = %d, stdout = %q", code, stdout)
	}
}

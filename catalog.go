package lsystem

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SchemaVersion is the only catalog entry version understood by ParseCatalog.
const SchemaVersion = 1

//go:embed catalog.yaml
var defaultCatalog []byte

// Definition is the on-disk form of one catalog entry.
type Definition struct {
	Version   int               `yaml:"version"`
	Title     string            `yaml:"title"`
	Refs      []string          `yaml:"refs"`
	Angle     *float64          `yaml:"angle"`
	Orders    []int             `yaml:"orders"`
	Start     string            `yaml:"start"`
	Rules     map[string]string `yaml:"rules"`
	PostRules map[string]string `yaml:"post_rules"`
}

// EntryError describes a catalog entry that could not be loaded.
type EntryError struct {
	Index int // 1-based position of the entry in the catalog
	Chunk string
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("catalog entry %d: %v", e.Index, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// LoadReport counts the entries of a catalog that loaded and failed.
type LoadReport struct {
	Loaded int
	Errors []*EntryError
}

func (r LoadReport) Failed() int {
	return len(r.Errors)
}

func (r LoadReport) Total() int {
	return r.Loaded + r.Failed()
}

func (r LoadReport) Summary() string {
	return fmt.Sprintf("loaded %d of %d l-systems", r.Loaded, r.Total())
}

// Err joins every entry error, or returns nil when all entries loaded.
func (r LoadReport) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}
	return errors.Join(errs...)
}

type Catalog []*LSystem

// Find returns the entry whose title matches, ignoring case.
func (c Catalog) Find(title string) (*LSystem, bool) {
	for _, l := range c {
		if strings.EqualFold(l.Title, title) {
			return l, true
		}
	}
	return nil, false
}

// Filter returns the entries whose title contains substr, ignoring case.
// An empty substr keeps everything.
func (c Catalog) Filter(substr string) Catalog {
	if substr == "" {
		return c
	}
	needle := strings.ToLower(substr)
	out := make(Catalog, 0, len(c))
	for _, l := range c {
		if strings.Contains(strings.ToLower(l.Title), needle) {
			out = append(out, l)
		}
	}
	return out
}

// DefaultCatalog returns the built-in curves and plants.
func DefaultCatalog() (Catalog, LoadReport) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads and parses a catalog file. Only a read failure is
// returned as an error; bad entries are reported in the LoadReport.
func LoadCatalog(path string) (Catalog, LoadReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, report := ParseCatalog(data)
	return c, report, nil
}

// ParseCatalog decodes a YAML stream of entries separated by "---" lines.
// Every entry is decoded on its own so one malformed entry does not hide
// the rest.
func ParseCatalog(data []byte) (Catalog, LoadReport) {
	var (
		catalog Catalog
		report  LoadReport
	)
	for i, chunk := range splitChunks(string(data)) {
		l, err := parseEntry(chunk)
		if err != nil {
			report.Errors = append(report.Errors, &EntryError{Index: i + 1, Chunk: chunk, Err: err})
			continue
		}
		report.Loaded++
		catalog = append(catalog, l)
	}
	return catalog, report
}

func splitChunks(s string) []string {
	var (
		chunks []string
		sb     strings.Builder
	)
	flush := func() {
		if hasContent(sb.String()) {
			chunks = append(chunks, sb.String())
		}
		sb.Reset()
	}
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "---" {
			flush()
			continue
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	flush()
	return chunks
}

func hasContent(chunk string) bool {
	for _, line := range strings.Split(chunk, "\n") {
		l := strings.TrimSpace(line)
		if l != "" && !strings.HasPrefix(l, "#") {
			return true
		}
	}
	return false
}

func parseEntry(chunk string) (*LSystem, error) {
	dec := yaml.NewDecoder(strings.NewReader(chunk))
	dec.KnownFields(true)

	var def Definition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to decode: %w", err)
	}
	return def.LSystem()
}

// LSystem validates the definition and converts it into a grammar.
func (d *Definition) LSystem() (*LSystem, error) {
	if d.Version != SchemaVersion {
		return nil, fmt.Errorf("unsupported schema version %d (want %d)", d.Version, SchemaVersion)
	}
	if strings.TrimSpace(d.Title) == "" {
		return nil, errors.New("missing title")
	}
	if d.Start == "" {
		return nil, fmt.Errorf("%q: missing start", d.Title)
	}
	if d.Angle == nil {
		return nil, fmt.Errorf("%q: missing angle", d.Title)
	}
	if math.IsNaN(*d.Angle) || math.IsInf(*d.Angle, 0) {
		return nil, fmt.Errorf("%q: angle must be finite", d.Title)
	}
	rules, err := convertRules(d.Rules)
	if err != nil {
		return nil, fmt.Errorf("%q: rules: %w", d.Title, err)
	}
	postRules, err := convertRules(d.PostRules)
	if err != nil {
		return nil, fmt.Errorf("%q: post_rules: %w", d.Title, err)
	}
	orders := d.Orders
	if len(orders) == 0 {
		orders = []int{1, 2, 3, 4}
	}
	for _, o := range orders {
		if o < 0 {
			return nil, fmt.Errorf("%q: negative order %d", d.Title, o)
		}
	}

	return &LSystem{
		Title:     d.Title,
		Refs:      d.Refs,
		Start:     d.Start,
		Angle:     *d.Angle,
		Orders:    orders,
		Rules:     rules,
		PostRules: postRules,
	}, nil
}

func convertRules(in map[string]string) (Rules, error) {
	rules := make(Rules, len(in))
	for k, v := range in {
		if len(k) != 1 || k[0] >= 0x80 {
			return nil, fmt.Errorf("predecessor %q must be a single ASCII character", k)
		}
		rules[Token(k[0])] = v
	}
	return rules, nil
}

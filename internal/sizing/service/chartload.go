package service

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"sizeguide-service/internal/fileio"
	"sizeguide-service/internal/sizing/model"
	"sizeguide-service/internal/utils"
)

// ChartSource describes one chart file.
type ChartSource struct {
	Filename  string // extension picks the reader
	Category  string // used when the file does not name one
	HeaderRow int    // tabular files only, 1-based
}

// IsChartFile reports whether LoadChart understands the file extension.
func IsChartFile(filename string) bool {
	return isYAML(filename) || fileio.IsTabular(filename)
}

func isYAML(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}

// LoadChart reads a chart from CSV/XLS/XLSX or YAML, converts it to inches,
// orders it and validates it.
func LoadChart(r io.Reader, src ChartSource) (model.Chart, error) {
	var (
		chart model.Chart
		err   error
	)
	switch {
	case isYAML(src.Filename):
		chart, err = chartFromYAML(r)
	case fileio.IsTabular(src.Filename):
		var recs []map[string]string
		recs, err = fileio.ReadAnyMaps(r, src.Filename, src.HeaderRow)
		if err == nil {
			chart, err = chartFromRecords(recs)
		}
	default:
		err = errors.Wrapf(fileio.ErrUnsupported, "%s", src.Filename)
	}
	if err != nil {
		return model.Chart{}, errors.Wrapf(err, "load chart %s", src.Filename)
	}

	if chart.Category == "" {
		chart.Category = src.Category
	}
	if chart.Category, err = NormalizeCategory(chart.Category); err != nil {
		return model.Chart{}, errors.Wrap(ErrInvalidChart, err.Error())
	}
	SortEntries(chart.Entries)
	if err := Validate(chart); err != nil {
		return model.Chart{}, errors.Wrapf(err, "load chart %s", src.Filename)
	}
	return chart, nil
}

// LoadDir reads every chart file in dir. The category defaults to the file base
// name. Files that fail are reported in failed and skipped. A missing dir is
// not an error.
func LoadDir(dir string) (charts []model.Chart, failed map[string]error, err error) {
	failed = make(map[string]error)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, failed, nil
		}
		return nil, failed, errors.Wrapf(err, "read chart dir %s", dir)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && IsChartFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(dir, name)
		b, err := os.ReadFile(path)
		if err != nil {
			failed[path] = err
			continue
		}
		chart, err := LoadChart(bytes.NewReader(b), ChartSource{
			Filename:  name,
			Category:  strings.TrimSuffix(name, filepath.Ext(name)),
			HeaderRow: 1,
		})
		if err != nil {
			failed[path] = err
			continue
		}
		charts = append(charts, chart)
	}
	return charts, failed, nil
}

// ===== YAML =====

type yamlChart struct {
	Category string      `yaml:"category"`
	Unit     string      `yaml:"unit"`
	Sizes    []yamlEntry `yaml:"sizes"`
}

type yamlEntry struct {
	Label     string    `yaml:"label"`
	Bust      []float64 `yaml:"bust"`
	Waist     []float64 `yaml:"waist"`
	Hips      []float64 `yaml:"hips"`
	Shoulders *float64  `yaml:"shoulders"`
	Length    *float64  `yaml:"length"`
}

func chartFromYAML(r io.Reader) (model.Chart, error) {
	var doc yamlChart
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return model.Chart{}, errors.Wrap(ErrInvalidChart, err.Error())
	}
	unit, err := ParseUnit(doc.Unit, model.Inches)
	if err != nil {
		return model.Chart{}, errors.Wrap(ErrInvalidChart, err.Error())
	}

	chart := model.Chart{Category: doc.Category}
	for i, s := range doc.Sizes {
		label, ok := ParseLabel(s.Label)
		if !ok {
			return model.Chart{}, errors.Wrapf(ErrInvalidChart, "size %d: unknown label %q", i+1, s.Label)
		}
		e := model.SizeEntry{Label: label}
		for _, f := range []struct {
			name string
			in   []float64
			out  *model.Range
		}{{"bust", s.Bust, &e.Bust}, {"waist", s.Waist, &e.Waist}, {"hips", s.Hips, &e.Hips}} {
			switch len(f.in) {
			case 1:
				*f.out = model.Range{Low: f.in[0], High: f.in[0]}
			case 2:
				*f.out = model.Range{Low: f.in[0], High: f.in[1]}
			default:
				return model.Chart{}, errors.Wrapf(ErrInvalidChart, "%s %s: want [low, high]", label, f.name)
			}
		}
		if s.Shoulders == nil || s.Length == nil {
			return model.Chart{}, errors.Wrapf(ErrInvalidChart, "%s: shoulders and length are required", label)
		}
		e.Shoulders, e.Length = *s.Shoulders, *s.Length
		chart.Entries = append(chart.Entries, toInchesEntry(e, unit))
	}
	return chart, nil
}

// ===== tabular =====

// column aliases, compared after normHeaderKey
var columns = map[string][]string{
	"label":     {"size", "label", "size label"},
	"bust":      {"bust", "chest"},
	"bust_min":  {"bust min", "bust from", "bust low", "chest min"},
	"bust_max":  {"bust max", "bust to", "bust high", "chest max"},
	"waist":     {"waist"},
	"waist_min": {"waist min", "waist from", "waist low"},
	"waist_max": {"waist max", "waist to", "waist high"},
	"hips":      {"hips", "hip"},
	"hips_min":  {"hips min", "hips from", "hips low", "hip min"},
	"hips_max":  {"hips max", "hips to", "hips high", "hip max"},
	"shoulders": {"shoulders", "shoulder", "shoulder width"},
	"length":    {"length", "body length"},
	"unit":      {"unit", "units"},
}

var rxNonAlnum = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normHeaderKey: lowercase, punctuation to spaces, collapsed spaces.
// "Bust (min)", "bust_min" and "BUST MIN" all become "bust min".
func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = rxNonAlnum.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveColumns maps logical column names to the real headers of rec.
// Exact alias matches win; columns still missing then take the most similar
// unused header above headerThreshold.
func resolveColumns(rec map[string]string) map[string]string {
	byNorm := make(map[string]string, len(rec))
	for k := range rec {
		byNorm[normHeaderKey(k)] = k
	}
	out := make(map[string]string)
	used := make(map[string]bool)
	for col, aliases := range columns {
		for _, a := range aliases {
			if k, ok := byNorm[a]; ok {
				out[col] = k
				used[k] = true
				break
			}
		}
	}

	// fuzzy pass in a fixed order so ties resolve the same way every time
	cols := lo.Keys(columns)
	sort.Strings(cols)
	norms := lo.Keys(byNorm)
	sort.Strings(norms)
	for _, col := range cols {
		if _, ok := out[col]; ok {
			continue
		}
		bestKey, best := "", 0.0
		for _, n := range norms {
			k := byNorm[n]
			if used[k] {
				continue
			}
			for _, a := range columns[col] {
				if s := similarity(n, a); s > best {
					best, bestKey = s, k
				}
			}
		}
		if bestKey != "" && best >= headerThreshold {
			out[col] = bestKey
			used[bestKey] = true
		}
	}
	return out
}

// "31-32", "31 – 32", `31" - 32"`, "80,5-82" or a single "31"
var rxRange = regexp.MustCompile(`^\s*(.+?)\s*(?:-|–|—|to)\s*(.+?)\s*$`)

func parseRange(s string) (model.Range, bool) {
	if m := rxRange.FindStringSubmatch(s); m != nil {
		low, ok1 := utils.ParseNumber(m[1])
		high, ok2 := utils.ParseNumber(m[2])
		return model.Range{Low: low, High: high}, ok1 && ok2
	}
	v, ok := utils.ParseNumber(s)
	return model.Range{Low: v, High: v}, ok
}

func chartFromRecords(recs []map[string]string) (model.Chart, error) {
	if len(recs) == 0 {
		return model.Chart{}, errors.Wrap(ErrInvalidChart, "no rows")
	}
	cols := resolveColumns(recs[0])
	if _, ok := cols["label"]; !ok {
		return model.Chart{}, errors.Wrap(ErrInvalidChart, "no size column")
	}

	unit := model.Inches
	if k, ok := cols["unit"]; ok {
		for _, rec := range recs {
			if v := rec[k]; v != "" {
				u, err := ParseUnit(v, model.Inches)
				if err != nil {
					return model.Chart{}, errors.Wrap(ErrInvalidChart, err.Error())
				}
				unit = u
				break
			}
		}
	}

	var chart model.Chart
	for i, rec := range recs {
		raw := rec[cols["label"]]
		if raw == "" {
			continue
		}
		label, ok := ParseLabel(raw)
		if !ok {
			return model.Chart{}, errors.Wrapf(ErrInvalidChart, "record %d: unknown size %q", i+1, raw)
		}
		e := model.SizeEntry{Label: label}
		var err error
		if e.Bust, err = rangeColumn(rec, cols, "bust"); err != nil {
			return model.Chart{}, errors.Wrapf(err, "record %d (%s)", i+1, label)
		}
		if e.Waist, err = rangeColumn(rec, cols, "waist"); err != nil {
			return model.Chart{}, errors.Wrapf(err, "record %d (%s)", i+1, label)
		}
		if e.Hips, err = rangeColumn(rec, cols, "hips"); err != nil {
			return model.Chart{}, errors.Wrapf(err, "record %d (%s)", i+1, label)
		}
		if e.Shoulders, err = scalarColumn(rec, cols, "shoulders"); err != nil {
			return model.Chart{}, errors.Wrapf(err, "record %d (%s)", i+1, label)
		}
		if e.Length, err = scalarColumn(rec, cols, "length"); err != nil {
			return model.Chart{}, errors.Wrapf(err, "record %d (%s)", i+1, label)
		}
		chart.Entries = append(chart.Entries, toInchesEntry(e, unit))
	}
	return chart, nil
}

// rangeColumn prefers name_min/name_max and falls back to a single "low-high" cell.
func rangeColumn(rec map[string]string, cols map[string]string, name string) (model.Range, error) {
	kMin, okMin := cols[name+"_min"]
	kMax, okMax := cols[name+"_max"]
	if okMin && okMax {
		low, ok1 := utils.ParseNumber(rec[kMin])
		high, ok2 := utils.ParseNumber(rec[kMax])
		if !ok1 || !ok2 {
			return model.Range{}, errors.Wrapf(ErrInvalidChart, "%s: bad range %q..%q", name, rec[kMin], rec[kMax])
		}
		return model.Range{Low: low, High: high}, nil
	}
	k, ok := cols[name]
	if !ok {
		return model.Range{}, errors.Wrapf(ErrInvalidChart, "no %s column", name)
	}
	r, ok := parseRange(rec[k])
	if !ok {
		return model.Range{}, errors.Wrapf(ErrInvalidChart, "%s: bad range %q", name, rec[k])
	}
	return r, nil
}

func scalarColumn(rec map[string]string, cols map[string]string, name string) (float64, error) {
	k, ok := cols[name]
	if !ok {
		return 0, errors.Wrapf(ErrInvalidChart, "no %s column", name)
	}
	v, ok := utils.ParseNumber(rec[k])
	if !ok {
		return 0, errors.Wrapf(ErrInvalidChart, "%s: bad value %q", name, rec[k])
	}
	return v, nil
}

func toInchesEntry(e model.SizeEntry, u model.Unit) model.SizeEntry {
	if u != model.Centimeters {
		return e
	}
	conv := func(r model.Range) model.Range { return model.Range{Low: ToInches(r.Low), High: ToInches(r.High)} }
	e.Bust, e.Waist, e.Hips = conv(e.Bust), conv(e.Waist), conv(e.Hips)
	e.Shoulders, e.Length = ToInches(e.Shoulders), ToInches(e.Length)
	return e
}

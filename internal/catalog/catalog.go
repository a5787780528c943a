// Package catalog reads labeled parameter records ("name,min,max,unit",
// one per line) for the building and for each supported material.
package catalog

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/alexiusacademia/gowind/internal/params"
)

//go:embed data/*.csv
var defaults embed.FS

// Dataset names one record file.
type Dataset string

const (
	Building Dataset = "building"
	Wood     Dataset = "wood"
	Concrete Dataset = "concrete"
	Brick    Dataset = "brick"
	Stone    Dataset = "stone"
	Steel    Dataset = "steel"
)

// Materials lists the material datasets in menu order.
var Materials = []Dataset{Wood, Concrete, Brick, Stone, Steel}

// Datasets lists every dataset.
var Datasets = append([]Dataset{Building}, Materials...)

// ErrUnknownDataset is returned for names that match no dataset.
var ErrUnknownDataset = errors.New("unknown dataset")

var menuCodes = map[string]Dataset{
	"BU": Building,
	"W":  Wood,
	"C":  Concrete,
	"BR": Brick,
	"ST": Stone,
	"EL": Steel,
}

// Code returns the short menu code of the dataset, e.g. "EL" for steel.
func (d Dataset) Code() string {
	for code, ds := range menuCodes {
		if ds == d {
			return code
		}
	}
	return ""
}

// Title returns the display name, e.g. "Concrete".
func (d Dataset) Title() string {
	s := string(d)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseDataset accepts a dataset name or its menu code, case-insensitively.
func ParseDataset(s string) (Dataset, error) {
	s = strings.TrimSpace(s)
	if d, ok := menuCodes[strings.ToUpper(s)]; ok {
		return d, nil
	}
	for _, d := range Datasets {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDataset, s)
}

// ParseMaterial is ParseDataset restricted to material datasets.
func ParseMaterial(s string) (Dataset, error) {
	d, err := ParseDataset(s)
	if err != nil {
		return "", err
	}
	if d == Building {
		return "", fmt.Errorf("%w: %q is not a material", ErrUnknownDataset, s)
	}
	return d, nil
}

// Catalog loads datasets from a directory of <name>.csv files, or from the
// built-in defaults.
type Catalog struct {
	fsys   fs.FS
	prefix string
	logger *slog.Logger
}

// New returns a catalog reading from dir, or the built-in datasets when dir
// is empty. A nil logger discards.
func New(dir string, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if dir == "" {
		return &Catalog{fsys: defaults, prefix: "data/", logger: logger}
	}
	return &Catalog{fsys: os.DirFS(dir), logger: logger}
}

// Load reads one dataset.
func (c *Catalog) Load(d Dataset) ([]params.Spec, error) {
	name := c.prefix + string(d) + ".csv"
	f, err := c.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening %s data: %w", d, err)
	}
	defer f.Close()

	specs, err := Parse(f, c.logger.With("dataset", string(d)))
	if err != nil {
		return nil, fmt.Errorf("reading %s data: %w", d, err)
	}
	c.logger.Debug("dataset loaded", "dataset", string(d), "records", len(specs))
	return specs, nil
}

// Combined returns the building records followed by the material's records.
func (c *Catalog) Combined(material Dataset) ([]params.Spec, error) {
	building, err := c.Load(Building)
	if err != nil {
		return nil, err
	}
	mat, err := c.Load(material)
	if err != nil {
		return nil, err
	}
	return append(building, mat...), nil
}

// Parse reads records from r. Blank lines are skipped; lines without a comma,
// with other than four fields, or with non-numeric bounds are dropped.
func Parse(r io.Reader, logger *slog.Logger) ([]params.Spec, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var specs []params.Spec
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || !strings.Contains(line, ",") {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 4 {
			logger.Debug("dropping malformed record", "line", lineNo, "fields", len(parts))
			continue
		}
		rec, err := params.FromFlat(parts)
		if err != nil {
			logger.Debug("dropping record with bad bounds", "line", lineNo, "error", err)
			continue
		}
		specs = append(specs, rec...)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return specs, nil
}

// Write emits specs in the record format Parse reads, one per line.
func Write(w io.Writer, specs []params.Spec) error {
	flat := params.Flatten(specs)
	bw := bufio.NewWriter(w)
	for i := 0; i < len(flat); i += 4 {
		if _, err := fmt.Fprintln(bw, strings.Join(flat[i:i+4], ",")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

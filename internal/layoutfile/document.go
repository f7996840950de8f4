// Package layoutfile reads grid declarations from YAML layout documents
package layoutfile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/young1lin/termgrid/grid"
	"github.com/young1lin/termgrid/layout"
)

// DefaultVersion is assumed when a document does not name its format version
const DefaultVersion = "1.0.0"

var (
	// ErrUnsupportedVersion is returned for documents outside the supported
	// format versions
	ErrUnsupportedVersion = errors.New("unsupported layout version")
	// ErrInvalidLayout is returned for documents that decode but do not
	// describe a valid grid
	ErrInvalidLayout = errors.New("invalid layout")
)

var supportedVersions = mustConstraint("^1")

//go:embed demo.yaml
var demoLayout []byte

// Document is a decoded layout document
type Document struct {
	Name    string
	Version *semver.Version
	// Path is the file the document was loaded from, empty for parsed bytes
	Path    string
	Builder *grid.Builder
	// Labels holds one entry per leaf, in the order the grid yields them
	Labels []string
}

// Label returns the label of the i-th leaf, or "" when it has none
func (d *Document) Label(i int) string {
	if i < 0 || i >= len(d.Labels) {
		return ""
	}
	return d.Labels[i]
}

type fileDoc struct {
	Version string `yaml:"version"`
	Name    string `yaml:"name"`
	gridDoc `yaml:",inline"`
}

type gridDoc struct {
	Spacing       []int    `yaml:"spacing"`
	Clip          bool     `yaml:"clip"`
	RowsAsColumns bool     `yaml:"rowsAsColumns"`
	Place         []string `yaml:"place"`
	Rows          []rowDoc `yaml:"rows"`
}

type rowDoc struct {
	Size  string    `yaml:"size"`
	Align string    `yaml:"align"`
	Clip  *bool     `yaml:"clip"`
	Cells []cellDoc `yaml:"cells"`
}

type cellDoc struct {
	Size   string   `yaml:"size"`
	Text   string   `yaml:"text"`
	Count  *int     `yaml:"count"`
	Margin []int    `yaml:"margin"`
	Place  []string `yaml:"place"`
	Grid   *gridDoc `yaml:"grid"`
}

// Parse decodes a layout document. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	var f fileDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrInvalidLayout)
		}
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	if f.Version == "" {
		f.Version = DefaultVersion
	}
	version, err := semver.NewVersion(f.Version)
	if err != nil {
		return nil, fmt.Errorf("version %q: %w", f.Version, err)
	}
	if !supportedVersions.Check(version) {
		return nil, fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedVersion, version, supportedVersions)
	}

	doc := &Document{Name: f.Name, Version: version}
	doc.Builder, err = f.gridDoc.build("", &doc.Labels)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Demo returns the built-in layout shown when no document is configured
func Demo() *Document {
	doc, err := Parse(demoLayout)
	if err != nil {
		panic(fmt.Sprintf("layoutfile: built-in layout: %v", err))
	}
	return doc
}

func (g *gridDoc) build(prefix string, labels *[]string) (*grid.Builder, error) {
	b := grid.New().Clip(g.Clip).RowsAsColumns(g.RowsAsColumns)

	if len(g.Spacing) > 0 {
		x, y, err := spacing(g.Spacing)
		if err != nil {
			return nil, fmt.Errorf("%sspacing: %w", prefix, err)
		}
		b.Spacing(x, y)
	}
	if len(g.Place) > 0 {
		p, err := placement(g.Place)
		if err != nil {
			return nil, fmt.Errorf("%splace: %w", prefix, err)
		}
		b.DefaultPlace(p)
	}

	for i, row := range g.Rows {
		path := fmt.Sprintf("%srows[%d]", prefix, i)
		size, err := parseSize(row.Size)
		if err != nil {
			return nil, fmt.Errorf("%s.size: %w", path, err)
		}
		align, err := layout.ParseAlign(row.Align)
		if err != nil {
			return nil, fmt.Errorf("%s.align: %w", path, err)
		}
		opts := []grid.RowOption{grid.WithAlign(align)}
		if row.Clip != nil {
			opts = append(opts, grid.WithClip(*row.Clip))
		}
		b.Row(size, opts...)

		for j := range row.Cells {
			if err := row.Cells[j].add(b, fmt.Sprintf("%s.cells[%d]", path, j), labels); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// add declares the cell on the current row of b
func (c *cellDoc) add(b *grid.Builder, path string, labels *[]string) error {
	size, err := parseSize(c.Size)
	if err != nil {
		return fmt.Errorf("%s.size: %w", path, err)
	}

	if c.Grid != nil {
		if c.Count != nil {
			return fmt.Errorf("%s: %w: count cannot be used with grid", path, ErrInvalidLayout)
		}
		if c.Text != "" {
			return fmt.Errorf("%s: %w: text cannot be used with grid", path, ErrInvalidLayout)
		}
		sub, err := c.Grid.build(path+".grid.", labels)
		if err != nil {
			return err
		}
		b.Nest(size, sub)
	} else {
		n := 1
		if c.Count != nil {
			n = *c.Count
		}
		if n < 0 {
			return fmt.Errorf("%s.count: %w: %d is negative", path, ErrInvalidLayout, n)
		}
		b.Cells(size, n)
		for k := 0; k < n; k++ {
			label := c.Text
			if n > 1 && label != "" {
				label = fmt.Sprintf("%s %d", c.Text, k+1)
			}
			*labels = append(*labels, label)
		}
	}

	if len(c.Margin) > 0 {
		e, err := margin(c.Margin)
		if err != nil {
			return fmt.Errorf("%s.margin: %w", path, err)
		}
		b.Margin(e)
	}
	if len(c.Place) > 0 {
		p, err := placement(c.Place)
		if err != nil {
			return fmt.Errorf("%s.place: %w", path, err)
		}
		b.Place(p)
	}
	return nil
}

// parseSize treats a missing size as a remainder
func parseSize(text string) (layout.Size, error) {
	if text == "" {
		return layout.Remainder(), nil
	}
	return layout.ParseSize(text)
}

func spacing(v []int) (x, y int, err error) {
	for _, n := range v {
		if n < 0 {
			return 0, 0, fmt.Errorf("%w: %d is negative", ErrInvalidLayout, n)
		}
	}
	switch len(v) {
	case 1:
		return v[0], v[0], nil
	case 2:
		return v[0], v[1], nil
	}
	return 0, 0, fmt.Errorf("%w: want 1 or 2 values, got %d", ErrInvalidLayout, len(v))
}

// margin follows CSS shorthand order
func margin(v []int) (layout.Edges, error) {
	for _, n := range v {
		if n < 0 {
			return layout.Edges{}, fmt.Errorf("%w: %d is negative", ErrInvalidLayout, n)
		}
	}
	switch len(v) {
	case 1:
		return layout.EdgeAll(v[0]), nil
	case 2:
		return layout.EdgeSymmetric(v[0], v[1]), nil
	case 4:
		return layout.EdgeTRBL(v[0], v[1], v[2], v[3]), nil
	}
	return layout.Edges{}, fmt.Errorf("%w: want 1, 2 or 4 values, got %d", ErrInvalidLayout, len(v))
}

func placement(v []string) (layout.Placement, error) {
	if len(v) != 2 {
		return layout.Placement{}, fmt.Errorf("%w: want [horizontal, vertical], got %d values", ErrInvalidLayout, len(v))
	}
	h, err := layout.ParsePosition(v[0])
	if err != nil {
		return layout.Placement{}, err
	}
	vert, err := layout.ParsePosition(v[1])
	if err != nil {
		return layout.Placement{}, err
	}
	return layout.Placement{H: h, V: vert}, nil
}

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

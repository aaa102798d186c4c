package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Gaurav-Gosain/dragresize/internal/geom"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidImage is returned for an image record without a positive size.
var ErrInvalidImage = errors.New("image must have a positive width and height")

type fileFormat struct {
	Title  string        `toml:"title"`
	Images []imageRecord `toml:"image"`
}

type imageRecord struct {
	Src    string  `toml:"src"`
	Alt    string  `toml:"alt,omitempty"`
	Left   float64 `toml:"left"`
	Top    float64 `toml:"top"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Parse decodes a TOML document layout.
func Parse(data []byte) (*Document, error) {
	var f fileFormat
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	images := make([]*Image, 0, len(f.Images))
	for i, rec := range f.Images {
		box := geom.Box{Left: rec.Left, Top: rec.Top, Width: rec.Width, Height: rec.Height}
		if !box.Valid() {
			return nil, fmt.Errorf("image %d (%s): %w", i+1, rec.Src, ErrInvalidImage)
		}
		images = append(images, NewImage(rec.Src, rec.Alt, box))
	}
	return New(f.Title, images...), nil
}

// Load reads a document layout file.
func Load(path string) (*Document, error) {
	// #nosec G304 - the path is chosen by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return Parse(data)
}

// Marshal encodes the document layout as TOML.
func (d *Document) Marshal() ([]byte, error) {
	f := fileFormat{Title: d.Title}
	for _, img := range d.images {
		f.Images = append(f.Images, imageRecord{
			Src:    img.src,
			Alt:    img.alt,
			Left:   img.box.Left,
			Top:    img.box.Top,
			Width:  img.box.Width,
			Height: img.box.Height,
		})
	}
	data, err := toml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return data, nil
}

// Save writes the layout to path and marks the document unmodified.
func (d *Document) Save(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	d.markSaved()
	return nil
}

// Sample returns a small document used when no file is given.
func Sample() *Document {
	return New("Sample document",
		NewImage("images/harbour.jpg", "Harbour at dawn", geom.Box{Left: 16, Top: 32, Width: 240, Height: 160}),
		NewImage("images/lighthouse.png", "Lighthouse", geom.Box{Left: 304, Top: 32, Width: 120, Height: 160}),
		NewImage("images/gull.png", "Gull", geom.Box{Left: 16, Top: 240, Width: 128, Height: 96}),
		NewImage("images/map.png", "Coastal map", geom.Box{Left: 192, Top: 240, Width: 232, Height: 160}),
	)
}

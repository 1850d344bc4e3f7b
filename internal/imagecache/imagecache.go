// Package imagecache resolves image and SVG handles to their intrinsic
// dimensions, memoized per handle ID.
package imagecache

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/easelui/easel/graphics"
)

// Cache memoizes intrinsic image dimensions. Raster and vector handles
// share one ID space, so one map serves both. A Cache is safe for
// concurrent use.
type Cache struct {
	mu    sync.Mutex
	sizes map[uint64]graphics.Size
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{sizes: make(map[uint64]graphics.Size)}
}

// ImageSize returns the pixel dimensions of a raster image.
func (c *Cache) ImageSize(h graphics.ImageHandle) (graphics.Size, error) {
	if sz, ok := c.lookup(h.ID()); ok {
		return sz, nil
	}
	sz, err := measureImage(h.Source())
	if err != nil {
		return graphics.Size{}, err
	}
	c.store(h.ID(), sz)
	return sz, nil
}

// SVGSize returns the intrinsic dimensions of a vector image, taken from
// the root element's width and height attributes or its viewBox.
func (c *Cache) SVGSize(h graphics.SVGHandle) (graphics.Size, error) {
	if sz, ok := c.lookup(h.ID()); ok {
		return sz, nil
	}
	data, err := sourceData(h.Source())
	if err != nil {
		return graphics.Size{}, err
	}
	sz, err := svgDimensions(data)
	if err != nil {
		return graphics.Size{}, err
	}
	c.store(h.ID(), sz)
	return sz, nil
}

func (c *Cache) lookup(id uint64) (graphics.Size, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sz, ok := c.sizes[id]
	return sz, ok
}

func (c *Cache) store(id uint64, sz graphics.Size) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sizes[id] = sz
}

func measureImage(src graphics.ImageSource) (graphics.Size, error) {
	switch s := src.(type) {
	case graphics.PixelsSource:
		return graphics.Sz(float64(s.Width), float64(s.Height)), nil
	case graphics.BytesSource:
		return decodeConfig(bytes.NewReader(s.Data))
	case graphics.FileSource:
		f, err := os.Open(s.Path)
		if err != nil {
			return graphics.Size{}, fmt.Errorf("imagecache: open %s: %w", s.Path, err)
		}
		defer f.Close()
		return decodeConfig(f)
	default:
		return graphics.Size{}, fmt.Errorf("imagecache: unknown image source %T", src)
	}
}

func decodeConfig(r io.Reader) (graphics.Size, error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return graphics.Size{}, fmt.Errorf("imagecache: decode image: %w", err)
	}
	return graphics.Sz(float64(cfg.Width), float64(cfg.Height)), nil
}

func sourceData(src graphics.ImageSource) ([]byte, error) {
	switch s := src.(type) {
	case graphics.BytesSource:
		return s.Data, nil
	case graphics.FileSource:
		data, err := os.ReadFile(s.Path)
		if err != nil {
			return nil, fmt.Errorf("imagecache: open %s: %w", s.Path, err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("imagecache: unsupported svg source %T", src)
	}
}

// svgDimensions reads the width/height attributes of the root <svg>
// element, falling back to its viewBox.
func svgDimensions(data []byte) (graphics.Size, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	for {
		tok, err := dec.Token()
		if err != nil {
			return graphics.Size{}, fmt.Errorf("imagecache: parse svg: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Local != "svg" {
			return graphics.Size{}, fmt.Errorf("imagecache: not an svg document (root element %q)", se.Name.Local)
		}

		var width, height float64
		var viewBox string
		for _, attr := range se.Attr {
			switch attr.Name.Local {
			case "width":
				width = parseLength(attr.Value)
			case "height":
				height = parseLength(attr.Value)
			case "viewBox":
				viewBox = attr.Value
			}
		}
		if width > 0 && height > 0 {
			return graphics.Sz(width, height), nil
		}
		if w, h, ok := parseViewBox(viewBox); ok {
			return graphics.Sz(w, h), nil
		}
		return graphics.Size{}, fmt.Errorf("imagecache: svg has no usable dimensions")
	}
}

// parseLength parses an SVG length, accepting a px suffix. Percentages
// and other units yield zero.
func parseLength(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(s, "px"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// parseViewBox extracts the width and height of a viewBox attribute.
func parseViewBox(s string) (w, h float64, ok bool) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	if len(fields) != 4 {
		return 0, 0, false
	}
	w, errW := strconv.ParseFloat(fields[2], 64)
	h, errH := strconv.ParseFloat(fields[3], 64)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

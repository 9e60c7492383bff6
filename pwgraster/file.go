// PWG-Raster file and page assembly.

package pwgraster

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// SyncWord is the 4-byte big-endian synchronization word that opens every
// PWG-Raster file.
const SyncWord = "RaS2"

// Page holds one page's header plus its decoded pixel bitmap, stored
// top-to-bottom, left-to-right.
type Page struct {
	Header PageHeader
	Pixels [][]Pixel // Pixels[y][x], len(Pixels) == Header.Height
}

// NewPage makes a Page of the given dimensions, filled with white, using
// DefaultPageHeader adjusted to width/height and a matching BytesPerLine.
func NewPage(width, height int) Page {
	h := DefaultPageHeader()
	h.Width = uint32(width)
	h.Height = uint32(height)
	h.BytesPerLine = uint32(width * 3)

	pixels := make([][]Pixel, height)
	for y := range pixels {
		row := make([]Pixel, width)
		for x := range row {
			row[x] = Pixel{0xff, 0xff, 0xff}
		}
		pixels[y] = row
	}

	return Page{Header: h, Pixels: pixels}
}

// Encode writes the page's header followed by its RLE-encoded body.
func (p Page) Encode(out io.Writer) error {
	if err := p.Header.Encode(out); err != nil {
		return err
	}
	return EncodeBody(out, p.Pixels)
}

// Decode reads a page's header and body from in.
func (p *Page) Decode(in io.Reader) error {
	if err := p.Header.Decode(in); err != nil {
		return err
	}

	rows, err := DecodeBody(in, int(p.Header.Width), int(p.Header.Height))
	if err != nil {
		return err
	}
	p.Pixels = rows
	return nil
}

// File is a complete PWG-Raster document: the synchronization word
// followed by one or more pages.
type File struct {
	Pages []Page
}

// Encode writes the synchronization word and every page to out, in order.
func (f File) Encode(out io.Writer) error {
	if _, err := out.Write([]byte(SyncWord)); err != nil {
		return err
	}
	for i, p := range f.Pages {
		if err := p.Encode(out); err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}
	}
	return nil
}

// EncodeBytes encodes the file to a byte slice.
func (f File) EncodeBytes() ([]byte, error) {
	var buf bytes.Buffer
	err := f.Encode(&buf)
	return buf.Bytes(), err
}

// Decode reads a synchronization word followed by pages until in is
// exhausted. A single buffered reader is shared across every page so that
// no bytes are lost between one page's body and the next page's header.
func (f *File) Decode(in io.Reader) error {
	r := bufio.NewReader(in)

	sync := make([]byte, len(SyncWord))
	if _, err := io.ReadFull(r, sync); err != nil {
		return err
	}
	if string(sync) != SyncWord {
		return fmt.Errorf("pwgraster: bad synchronization word %q", sync)
	}

	var pages []Page
	for {
		var p Page
		err := p.Decode(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("page %d: %w", len(pages), err)
		}
		pages = append(pages, p)
	}

	f.Pages = pages
	return nil
}

// PWG-Raster page header codec.

package pwgraster

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the fixed on-wire size of a page header, per PWG 5102.4.
const HeaderSize = 1796

// PageHeader describes one page's imaging parameters. Field names and
// layout follow the field-for-field reader in the original capture tool
// (a transliteration of the CUPS/PWG raster v2 page header); Go callers get
// named fields instead of raw offsets, string fields instead of
// NUL-terminated arrays, and bools instead of 0/1 uint32s.
type PageHeader struct {
	MediaClass string // NUL-padded to 64 bytes on the wire
	MediaColor string
	MediaType  string
	OutputType string // "print-content-optimize" in PWG terms

	AdvanceDistance uint32
	AdvanceMedia    uint32
	Collate         bool
	CutMedia        uint32
	Duplex          bool

	HWResolutionX uint32
	HWResolutionY uint32

	ImagingBBoxLeft   uint32
	ImagingBBoxBottom uint32
	ImagingBBoxRight  uint32
	ImagingBBoxTop    uint32

	InsertSheet bool
	Jog         uint32
	LeadingEdge uint32

	MarginLeft   uint32
	MarginBottom uint32

	ManualFeed          bool
	MediaPosition       uint32
	MediaWeightMetric   uint32
	MirrorPrint         bool
	NegativePrint       bool
	NumCopies           uint32
	Orientation         uint32
	OutputFaceUp        bool
	PageSizeWidth       uint32
	PageSizeLength      uint32
	Separations         bool
	TraySwitch          bool
	Tumble              bool
	Width               uint32
	Height              uint32
	CUPSMediaType       uint32
	BitsPerColor        uint32
	BitsPerPixel        uint32
	BytesPerLine        uint32
	ColorOrder          uint32
	ColorSpace          uint32
	Compression         uint32
	RowCount            uint32
	RowFeed             uint32
	RowStep             uint32
	NumColors           uint32

	BorderlessScalingFactor float32
	CUPSPageSizeWidth       float32
	CUPSPageSizeLength      float32
	CUPSImagingBBoxLeft     float32
	CUPSImagingBBoxBottom   float32
	CUPSImagingBBoxRight    float32
	CUPSImagingBBoxTop      float32

	TotalPageCount      uint32
	CrossFeedTransform  int32
	FeedTransform       int32
	ImageBoxLeft        uint32
	ImageBoxTop         uint32
	ImageBoxRight       uint32
	ImageBoxBottom      uint32
	AlternatePrimary    uint32
	PrintQuality        uint32

	VendorIdentifier uint32
	VendorData       []byte // up to 1088 bytes, zero-padded

	RenderingIntent string
	PageSizeName    string
}

// DefaultPageHeader returns a PageHeader populated with this package's
// defaults: 300dpi, ISO A4 at 300dpi, 8-bit sRGB chunky, one page.
func DefaultPageHeader() PageHeader {
	const width = 2480
	return PageHeader{
		HWResolutionX:      300,
		HWResolutionY:      300,
		PageSizeWidth:      595,
		PageSizeLength:     841,
		Width:              width,
		Height:             3507,
		BitsPerColor:       8,
		BitsPerPixel:       24,
		BytesPerLine:       width * 3,
		ColorOrder:         0,
		ColorSpace:         19,
		NumColors:          3,
		TotalPageCount:     1,
		CrossFeedTransform: 1,
		FeedTransform:      1,
		AlternatePrimary:   0xFFFFFF,
		PageSizeName:       "iso_a4_210x297mm",
	}
}

// wireHeader is the fixed-layout, fixed-size mirror of PageHeader used for
// binary.Write/Read: every field is a type encoding/binary understands
// directly, so its encoded size is fixed by the struct layout; init checks
// once, when the package loads, that this size equals HeaderSize.
type wireHeader struct {
	MediaClass      [64]byte
	MediaColor      [64]byte
	MediaType       [64]byte
	OutputType      [64]byte
	AdvanceDistance uint32
	AdvanceMedia    uint32
	Collate         uint32
	CutMedia        uint32
	Duplex          uint32
	HWResolution    [2]uint32
	ImagingBBox     [4]uint32
	InsertSheet     uint32
	Jog             uint32
	LeadingEdge     uint32
	Margins         [2]uint32
	ManualFeed      uint32
	MediaPosition   uint32
	MediaWeight     uint32
	MirrorPrint     uint32
	NegativePrint   uint32
	NumCopies       uint32
	Orientation     uint32
	OutputFaceUp    uint32
	PageSize        [2]uint32
	Separations     uint32
	TraySwitch      uint32
	Tumble          uint32
	Width           uint32
	Height          uint32
	CUPSMediaType   uint32
	BitsPerColor    uint32
	BitsPerPixel    uint32
	BytesPerLine    uint32
	ColorOrder      uint32
	ColorSpace      uint32
	Compression     uint32
	RowCount        uint32
	RowFeed         uint32
	RowStep         uint32
	NumColors       uint32
	BorderlessScale float32
	CUPSPageSize    [2]float32
	CUPSImagingBBox [4]float32
	TotalPageCount  uint32
	CrossFeedXform  int32
	FeedXform       int32
	ImageBox        [4]uint32
	AlternatePrim   uint32
	PrintQuality    uint32
	Reserved9       [20]byte
	VendorID        uint32
	VendorLength    uint32
	VendorData      [1088]byte
	Reserved10      [64]byte
	RenderingIntent [64]byte
	PageSizeName    [64]byte
}

func putString(dst *[64]byte, s string) {
	n := copy(dst[:], s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

func getString(src [64]byte) string {
	n := bytes.IndexByte(src[:], 0)
	if n < 0 {
		n = len(src)
	}
	return string(src[:n])
}

func boolToU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Encode writes h to out in the fixed 1796-byte wire layout.
func (h PageHeader) Encode(out io.Writer) error {
	var w wireHeader

	putString(&w.MediaClass, h.MediaClass)
	putString(&w.MediaColor, h.MediaColor)
	putString(&w.MediaType, h.MediaType)
	putString(&w.OutputType, h.OutputType)

	w.AdvanceDistance = h.AdvanceDistance
	w.AdvanceMedia = h.AdvanceMedia
	w.Collate = boolToU32(h.Collate)
	w.CutMedia = h.CutMedia
	w.Duplex = boolToU32(h.Duplex)
	w.HWResolution = [2]uint32{h.HWResolutionX, h.HWResolutionY}
	w.ImagingBBox = [4]uint32{h.ImagingBBoxLeft, h.ImagingBBoxBottom, h.ImagingBBoxRight, h.ImagingBBoxTop}
	w.InsertSheet = boolToU32(h.InsertSheet)
	w.Jog = h.Jog
	w.LeadingEdge = h.LeadingEdge
	w.Margins = [2]uint32{h.MarginLeft, h.MarginBottom}
	w.ManualFeed = boolToU32(h.ManualFeed)
	w.MediaPosition = h.MediaPosition
	w.MediaWeight = h.MediaWeightMetric
	w.MirrorPrint = boolToU32(h.MirrorPrint)
	w.NegativePrint = boolToU32(h.NegativePrint)
	w.NumCopies = h.NumCopies
	w.Orientation = h.Orientation
	w.OutputFaceUp = boolToU32(h.OutputFaceUp)
	w.PageSize = [2]uint32{h.PageSizeWidth, h.PageSizeLength}
	w.Separations = boolToU32(h.Separations)
	w.TraySwitch = boolToU32(h.TraySwitch)
	w.Tumble = boolToU32(h.Tumble)
	w.Width = h.Width
	w.Height = h.Height
	w.CUPSMediaType = h.CUPSMediaType
	w.BitsPerColor = h.BitsPerColor
	w.BitsPerPixel = h.BitsPerPixel
	w.BytesPerLine = h.BytesPerLine
	w.ColorOrder = h.ColorOrder
	w.ColorSpace = h.ColorSpace
	w.Compression = h.Compression
	w.RowCount = h.RowCount
	w.RowFeed = h.RowFeed
	w.RowStep = h.RowStep
	w.NumColors = h.NumColors
	w.BorderlessScale = h.BorderlessScalingFactor
	w.CUPSPageSize = [2]float32{h.CUPSPageSizeWidth, h.CUPSPageSizeLength}
	w.CUPSImagingBBox = [4]float32{
		h.CUPSImagingBBoxLeft, h.CUPSImagingBBoxBottom,
		h.CUPSImagingBBoxRight, h.CUPSImagingBBoxTop,
	}
	w.TotalPageCount = h.TotalPageCount
	w.CrossFeedXform = h.CrossFeedTransform
	w.FeedXform = h.FeedTransform
	w.ImageBox = [4]uint32{h.ImageBoxLeft, h.ImageBoxTop, h.ImageBoxRight, h.ImageBoxBottom}
	w.AlternatePrim = h.AlternatePrimary
	w.PrintQuality = h.PrintQuality
	w.VendorID = h.VendorIdentifier
	w.VendorLength = uint32(len(h.VendorData))
	copy(w.VendorData[:], h.VendorData)
	putString(&w.RenderingIntent, h.RenderingIntent)
	putString(&w.PageSizeName, h.PageSizeName)

	return binary.Write(out, binary.BigEndian, &w)
}

// Decode reads a PageHeader from in. Reserved regions are ignored.
func (h *PageHeader) Decode(in io.Reader) error {
	var w wireHeader
	if err := binary.Read(in, binary.BigEndian, &w); err != nil {
		return err
	}

	*h = PageHeader{
		MediaClass:              getString(w.MediaClass),
		MediaColor:              getString(w.MediaColor),
		MediaType:               getString(w.MediaType),
		OutputType:              getString(w.OutputType),
		AdvanceDistance:         w.AdvanceDistance,
		AdvanceMedia:            w.AdvanceMedia,
		Collate:                 w.Collate != 0,
		CutMedia:                w.CutMedia,
		Duplex:                  w.Duplex != 0,
		HWResolutionX:           w.HWResolution[0],
		HWResolutionY:           w.HWResolution[1],
		ImagingBBoxLeft:         w.ImagingBBox[0],
		ImagingBBoxBottom:       w.ImagingBBox[1],
		ImagingBBoxRight:        w.ImagingBBox[2],
		ImagingBBoxTop:          w.ImagingBBox[3],
		InsertSheet:             w.InsertSheet != 0,
		Jog:                     w.Jog,
		LeadingEdge:             w.LeadingEdge,
		MarginLeft:              w.Margins[0],
		MarginBottom:            w.Margins[1],
		ManualFeed:              w.ManualFeed != 0,
		MediaPosition:           w.MediaPosition,
		MediaWeightMetric:       w.MediaWeight,
		MirrorPrint:             w.MirrorPrint != 0,
		NegativePrint:           w.NegativePrint != 0,
		NumCopies:               w.NumCopies,
		Orientation:             w.Orientation,
		OutputFaceUp:            w.OutputFaceUp != 0,
		PageSizeWidth:           w.PageSize[0],
		PageSizeLength:          w.PageSize[1],
		Separations:             w.Separations != 0,
		TraySwitch:              w.TraySwitch != 0,
		Tumble:                  w.Tumble != 0,
		Width:                   w.Width,
		Height:                  w.Height,
		CUPSMediaType:           w.CUPSMediaType,
		BitsPerColor:            w.BitsPerColor,
		BitsPerPixel:            w.BitsPerPixel,
		BytesPerLine:            w.BytesPerLine,
		ColorOrder:              w.ColorOrder,
		ColorSpace:              w.ColorSpace,
		Compression:             w.Compression,
		RowCount:                w.RowCount,
		RowFeed:                 w.RowFeed,
		RowStep:                 w.RowStep,
		NumColors:               w.NumColors,
		BorderlessScalingFactor: w.BorderlessScale,
		CUPSPageSizeWidth:       w.CUPSPageSize[0],
		CUPSPageSizeLength:      w.CUPSPageSize[1],
		CUPSImagingBBoxLeft:     w.CUPSImagingBBox[0],
		CUPSImagingBBoxBottom:   w.CUPSImagingBBox[1],
		CUPSImagingBBoxRight:    w.CUPSImagingBBox[2],
		CUPSImagingBBoxTop:      w.CUPSImagingBBox[3],
		TotalPageCount:          w.TotalPageCount,
		CrossFeedTransform:      w.CrossFeedXform,
		FeedTransform:           w.FeedXform,
		ImageBoxLeft:            w.ImageBox[0],
		ImageBoxTop:             w.ImageBox[1],
		ImageBoxRight:           w.ImageBox[2],
		ImageBoxBottom:          w.ImageBox[3],
		AlternatePrimary:        w.AlternatePrim,
		PrintQuality:            w.PrintQuality,
		VendorIdentifier:        w.VendorID,
		RenderingIntent:         getString(w.RenderingIntent),
		PageSizeName:            getString(w.PageSizeName),
	}

	if n := int(w.VendorLength); n > 0 && n <= len(w.VendorData) {
		h.VendorData = append([]byte(nil), w.VendorData[:n]...)
	}

	return nil
}

func init() {
	if sz := binary.Size(wireHeader{}); sz != HeaderSize {
		panic(fmt.Sprintf("pwgraster: wireHeader is %d bytes, want %d", sz, HeaderSize))
	}
}

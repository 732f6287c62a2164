package pdf

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/foodgram/foodgram/pkg/internal/models"
	"github.com/go-pdf/fpdf"
)

const ShoppingListHeader = "Shopping list:"

// Layout in points, measured from the top left corner of an A4 page.
const (
	headerX      = 40.0
	headerY      = 100.0
	lineX        = 100.0
	firstLineY   = 150.0
	continuedY   = 100.0
	lineStep     = 20.0
	bottomMargin = 60.0
)

const defaultFontFamily = "DejaVu"

//go:embed fonts/DejaVuSansCondensed.ttf
var defaultFont []byte

type Options struct {
	// FontPath points to a TrueType font used instead of the embedded
	// DejaVu Sans Condensed. Either way text is written as UTF-8.
	FontPath   string
	FontFamily string
	FontSize   float64
}

// Capitalize upper cases the first letter and lower cases the rest.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

func FormatShoppingListLine(item models.ShoppingListItem) string {
	return fmt.Sprintf("%s --> %d %s", Capitalize(item.Name), item.Amount, item.MeasurementUnit)
}

// RenderShoppingList draws the header followed by one line per item and
// returns the encoded document. Lines that do not fit continue on new pages.
func RenderShoppingList(items []models.ShoppingListItem, opts Options) ([]byte, error) {
	doc, err := build(items, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func build(items []models.ShoppingListItem, opts Options) (*fpdf.Fpdf, error) {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle("Shopping list", true)

	size := opts.FontSize
	if size <= 0 {
		size = 16
	}

	family := defaultFontFamily
	if len(opts.FontPath) > 0 {
		if len(opts.FontFamily) > 0 {
			family = opts.FontFamily
		}
		doc.AddUTF8Font(family, "", opts.FontPath)
	} else {
		doc.AddUTF8FontFromBytes(family, "", defaultFont)
	}
	doc.SetFont(family, "", size)
	if doc.Err() {
		return nil, fmt.Errorf("unable to load font: %v", doc.Error())
	}

	_, height := doc.GetPageSize()

	doc.AddPage()
	doc.Text(headerX, headerY, ShoppingListHeader)

	y := firstLineY
	for _, item := range items {
		if y > height-bottomMargin {
			doc.AddPage()
			y = continuedY
		}
		doc.Text(lineX, y, FormatShoppingListLine(item))
		y += lineStep
	}

	if doc.Err() {
		return nil, doc.Error()
	}
	return doc, nil
}

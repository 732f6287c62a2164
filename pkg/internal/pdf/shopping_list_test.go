package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/foodgram/foodgram/pkg/internal/models"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, items []models.ShoppingListItem) (string, int) {
	t.Helper()

	doc, err := build(items, Options{FontSize: 16})
	require.NoError(t, err)
	doc.SetCompression(false)

	var buf bytes.Buffer
	require.NoError(t, doc.Output(&buf))
	return buf.String(), doc.PageCount()
}

// shown is the text operator a line produces in an uncompressed page stream,
// UTF-8 fonts write strings as escaped UTF-16BE.
func shown(s string) string {
	var b strings.Builder
	for _, unit := range utf16.Encode([]rune(s)) {
		for _, c := range []byte{byte(unit >> 8), byte(unit)} {
			switch c {
			case '\\', '(', ')':
				b.WriteByte('\\')
				b.WriteByte(c)
			case '\r':
				b.WriteString(`\r`)
			default:
				b.WriteByte(c)
			}
		}
	}
	return "(" + b.String() + ") Tj"
}

func TestCapitalize(t *testing.T) {
	require.Equal(t, "Flour", Capitalize("flour"))
	require.Equal(t, "Brown sugar", Capitalize("bROWN SUGAR"))
	require.Equal(t, "Мука", Capitalize("мука"))
	require.Equal(t, "", Capitalize(""))
}

func TestFormatShoppingListLine(t *testing.T) {
	line := FormatShoppingListLine(models.ShoppingListItem{Name: "flour", MeasurementUnit: "g", Amount: 300})
	require.Equal(t, "Flour --> 300 g", line)
}

func TestRenderShoppingList(t *testing.T) {
	content, pages := render(t, []models.ShoppingListItem{
		{Name: "flour", MeasurementUnit: "g", Amount: 300},
		{Name: "sugar", MeasurementUnit: "g", Amount: 50},
		{Name: "egg", MeasurementUnit: "pcs", Amount: 2},
	})

	require.Equal(t, 1, pages)
	require.Contains(t, content, shown("Shopping list:"))
	require.Contains(t, content, shown("Flour --> 300 g"))
	require.Contains(t, content, shown("Sugar --> 50 g"))
	require.Contains(t, content, shown("Egg --> 2 pcs"))
}

func TestRenderEmptyShoppingList(t *testing.T) {
	content, pages := render(t, nil)

	require.Equal(t, 1, pages)
	require.Contains(t, content, shown("Shopping list:"))
	require.Equal(t, 1, strings.Count(content, ") Tj"))
}

func TestRenderLongShoppingListPaginates(t *testing.T) {
	var items []models.ShoppingListItem
	for i := 0; i < 100; i++ {
		items = append(items, models.ShoppingListItem{
			Name:            fmt.Sprintf("item %d", i),
			MeasurementUnit: "g",
			Amount:          int64(i + 1),
		})
	}

	content, pages := render(t, items)
	require.Greater(t, pages, 1)
	require.Contains(t, content, shown("Item 0 --> 1 g"))
	require.Contains(t, content, shown("Item 99 --> 100 g"))
}

func TestRenderCyrillicShoppingList(t *testing.T) {
	content, _ := render(t, []models.ShoppingListItem{
		{Name: "мука", MeasurementUnit: "г", Amount: 300},
		{Name: "ЯЙЦА", MeasurementUnit: "шт", Amount: 2},
	})

	require.Contains(t, content, shown("Мука --> 300 г"))
	require.Contains(t, content, shown("Яйца --> 2 шт"))
	require.NotContains(t, content, "(.... --> 300 .) Tj")
}

func TestRenderShoppingListOutput(t *testing.T) {
	out, err := RenderShoppingList([]models.ShoppingListItem{
		{Name: "flour", MeasurementUnit: "g", Amount: 300},
	}, Options{})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestRenderShoppingListMissingFont(t *testing.T) {
	_, err := RenderShoppingList(nil, Options{FontPath: "/nonexistent/font.ttf", FontFamily: "Lato"})
	require.Error(t, err)
}

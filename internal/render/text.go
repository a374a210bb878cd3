package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/dedent"

	"github.com/aleksi/catalog-browser/internal/catalog"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	priceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Row renders one product as a terminal grid row.
func Row(p catalog.Product) string {
	return fmt.Sprintf("%4d  %s  %s  %s",
		p.ID,
		priceStyle.Render(fmt.Sprintf("$%8.2f", p.Price)),
		titleStyle.Render(p.Title),
		categoryStyle.Render(p.Category.Slug()),
	)
}

// Rows renders a product list one row per product, keeping the given
// order.
func Rows(products []catalog.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, Row(p))
	}
	return strings.Join(lines, "\n")
}

// Detail renders the product detail view shown by the show command.
func Detail(p catalog.Product) string {
	return fmtf(`
		%s
		$%v (%s)
		%s`,
		titleStyle.Render(p.Title),
		p.Price,
		p.Category.Slug(),
		categoryStyle.Render(p.Thumbnail),
	)
}

// Summary renders the footer line under a grid: product count and the
// price range state.
func Summary(count int, min, max, selected float64) string {
	return categoryStyle.Render(
		fmt.Sprintf("%d products, price range %v to %v (selected %v)", count, min, max, selected),
	)
}

func fmtf(text string, a ...any) string {
	return fmt.Sprintf(strings.TrimSpace(dedent.Dedent(text)), a...)
}

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"targetrack/internal/analytics"
	"targetrack/internal/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numberStyle  = cellStyle.Align(lipgloss.Right)
)

// Render writes the dashboard to w.
func Render(w io.Writer, d *Dashboard) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Target report %d", d.Year)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Target %s · Achievement %s · %s\n",
		FormatRupiah(d.Totals.Target),
		FormatRupiah(d.Totals.Achievement),
		ratePill(d.Totals.Percentage),
	))

	writeSection(&b, "Monthly", monthlyTable(d.Monthly))
	for _, series := range d.ByCategory {
		writeSection(&b, "Category: "+series.CategoryName, monthlyTable(series.Months))
	}
	writeSection(&b, "Products", productTable(d.Products))
	writeSection(&b, "Top achievers", leaderboardTable(d.Top))

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, title string, body string) {
	b.WriteString(sectionStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
}

// ratePill colors a percentage green once the goal is met.
func ratePill(p float64) string {
	if p >= 100 {
		return goodStyle.Render(FormatPercent(p))
	}
	return badStyle.Render(FormatPercent(p))
}

func newTable(numericFrom int, headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col >= numericFrom {
				return numberStyle
			}
			return cellStyle
		})
}

func monthlyTable(points []analytics.MonthlyPoint) string {
	if len(points) == 0 {
		return mutedStyle.Render("No targets.")
	}
	t := newTable(1, "Month", "Target", "Achievement", "%")
	for _, p := range points {
		t.Row(models.MonthName(p.Month), FormatRupiah(p.Target), FormatRupiah(p.Achievement), FormatPercent(p.Percentage))
	}
	return t.String()
}

func productTable(totals []analytics.ProductTotal) string {
	if len(totals) == 0 {
		return mutedStyle.Render("No products with targets.")
	}
	t := newTable(2, "Product", "Category", "Target")
	for _, p := range totals {
		t.Row(p.ProductName, p.CategoryName, FormatRupiah(p.TotalNominal))
	}
	return t.String()
}

func leaderboardTable(rows []analytics.TopEmployee) string {
	if len(rows) == 0 {
		return mutedStyle.Render("No employees ranked yet.")
	}
	t := newTable(3, "#", "Employee", "Office", "Target", "Achievement", "Rate")
	for i, r := range rows {
		t.Row(strconv.Itoa(i+1), r.Name, r.OfficeLocation,
			FormatRupiah(r.TotalTarget), FormatRupiah(r.TotalAchievement), FormatPercent(r.AchievementRate))
	}
	return t.String()
}

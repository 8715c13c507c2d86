package output

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/hostdni/host-aggregator/internal/aggregator"
	"github.com/hostdni/host-aggregator/internal/config"
)

var (
	styleHeader   = lipgloss.NewStyle().Bold(true)
	styleCount    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")) // cyan
	styleCategory = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleWarn     = lipgloss.NewStyle().Foreground(lipgloss.Color("220")) // yellow
	styleFail     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	stylePath     = lipgloss.NewStyle().Faint(true)
)

// Summary prints a human-readable recap of an aggregation run.
type Summary struct {
	w io.Writer
}

// NewSummary returns a Summary that writes to stdout.
func NewSummary() *Summary {
	return &Summary{w: os.Stdout}
}

// Render prints per-category counts, dedupe numbers, failed sources,
// and the files written.
func (s *Summary) Render(stats aggregator.Stats, files []string) {
	fmt.Fprintln(s.w, styleHeader.Render("Aggregation summary"))

	categories := make([]string, 0, len(stats.CategoryCounts))
	for c := range stats.CategoryCounts {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	for _, c := range categories {
		fmt.Fprintf(s.w, "  %s %s\n",
			styleCount.Render(fmt.Sprintf("%6d", stats.CategoryCounts[c])),
			styleCategory.Render(c))
	}

	fmt.Fprintf(s.w, "  %s unique entries (%s duplicates removed)\n",
		styleCount.Render(fmt.Sprintf("%d", stats.Unique)),
		styleWarn.Render(fmt.Sprintf("%d", stats.Duplicates)))

	for _, url := range stats.FailedSources {
		fmt.Fprintf(s.w, "  %s %s\n", styleFail.Render("failed:"), url)
	}

	for _, f := range files {
		fmt.Fprintf(s.w, "  %s %s\n", stylePath.Render("wrote"), f)
	}
}

// RenderSources prints the configured source table.
func (s *Summary) RenderSources(sources []config.Source) {
	fmt.Fprintln(s.w, styleHeader.Render("Configured sources"))
	for _, src := range sources {
		fmt.Fprintf(s.w, "  %s %s\n    %s\n",
			styleCategory.Render(fmt.Sprintf("%-18s", src.Category)),
			stylePath.Render("("+src.Format+")"),
			src.URL)
	}
}

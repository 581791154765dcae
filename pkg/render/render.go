// Package render formats path results and graph statistics for terminals.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/actorgraph/pkg/algorithms"
	"github.com/dd0wney/actorgraph/pkg/graph"
)

// Renderer writes styled boxes to a terminal. Colors are dropped
// automatically when the writer is not a TTY.
type Renderer struct {
	out io.Writer

	titleStyle   lipgloss.Style
	boxStyle     lipgloss.Style
	labelStyle   lipgloss.Style
	pathStyle    lipgloss.Style
	missingStyle lipgloss.Style
}

// New returns a Renderer for w
func New(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		out: w,
		titleStyle: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")),
		boxStyle: r.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1),
		labelStyle: r.NewStyle().
			Foreground(lipgloss.Color("#888888")),
		pathStyle: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF00")),
		missingStyle: r.NewStyle().
			Foreground(lipgloss.Color("#FF0000")),
	}
}

func title(algorithm string) string {
	switch algorithm {
	case algorithms.AlgorithmBFS:
		return "BFS Path Result"
	case algorithms.AlgorithmDijkstra:
		return "Dijkstra Path Result"
	default:
		return "Path Result"
	}
}

func (r *Renderer) row(label string, value any) string {
	return r.labelStyle.Render(label+":") + " " + fmt.Sprint(value)
}

// FormatPath renders a single result. Results without a path show
// "No path found." and the reason.
func (r *Renderer) FormatPath(res algorithms.PathResult) string {
	var s strings.Builder
	s.WriteString(r.titleStyle.Render(title(res.Algorithm)))
	s.WriteString("\n")

	if !res.PathExists {
		body := r.missingStyle.Render("No path found.") + "\n" +
			r.row("Reason", strings.ReplaceAll(string(res.Outcome), "_", " "))
		s.WriteString(r.boxStyle.Render(body))
		return s.String()
	}

	lines := []string{
		r.row("Path Length", fmt.Sprintf("%d degrees of separation", res.HopCount)),
		r.row("Total Collaboration Weight", res.TotalWeight),
		r.row("Execution Time", fmt.Sprintf("%.3f ms", res.ExecutionTimeMs)),
		"",
		r.pathStyle.Render(strings.Join(res.ActorNames, " → ")),
	}
	s.WriteString(r.boxStyle.Render(strings.Join(lines, "\n")))
	return s.String()
}

// FormatStats renders network statistics
func (r *Renderer) FormatStats(st graph.Stats) string {
	lines := []string{
		r.row("Total Actors", st.Actors),
		r.row("Total Edges", st.Edges),
		r.row("Maximum Edge Weight", st.MaxWeight),
		r.row("Average Degree", fmt.Sprintf("%.2f", st.AverageDegree)),
	}
	return r.titleStyle.Render("Graph Statistics") + "\n" + r.boxStyle.Render(strings.Join(lines, "\n"))
}

// FormatComparison renders results side by side
func (r *Renderer) FormatComparison(results ...algorithms.PathResult) string {
	boxes := make([]string, len(results))
	for i, res := range results {
		boxes[i] = r.FormatPath(res)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// Path writes FormatPath(res) followed by a newline
func (r *Renderer) Path(res algorithms.PathResult) error {
	_, err := fmt.Fprintln(r.out, r.FormatPath(res))
	return err
}

// Stats writes FormatStats(st) followed by a newline
func (r *Renderer) Stats(st graph.Stats) error {
	_, err := fmt.Fprintln(r.out, r.FormatStats(st))
	return err
}

// Comparison writes FormatComparison(results...) followed by a newline
func (r *Renderer) Comparison(results ...algorithms.PathResult) error {
	_, err := fmt.Fprintln(r.out, r.FormatComparison(results...))
	return err
}

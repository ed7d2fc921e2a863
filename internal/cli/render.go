package cli

import (
	"fmt"
	"io"
	"strings"

	"research-gap-be/internal/dto"

	"github.com/fatih/color"
)

const barWidth = 30

var (
	heading = color.New(color.FgCyan, color.Bold)
	warning = color.New(color.FgYellow)
	bullet  = color.New(color.FgGreen)
	muted   = color.New(color.Faint)
)

// RenderResult prints a search result as a terminal report.
func RenderResult(w io.Writer, r *dto.ResearchResultResponse) {
	heading.Fprintf(w, "Research landscape: %s\n", r.Query)
	if r.Degraded {
		warning.Fprintln(w, "Some sources failed; parts of this report are placeholders.")
	}
	fmt.Fprintf(w, "\n%s\n", r.Summary)

	timeline := make([]namedValue, 0, len(r.Timeline))
	for _, p := range r.Timeline {
		timeline = append(timeline, namedValue{fmt.Sprint(p.Year), p.Count})
	}
	renderBars(w, "Publications per year", timeline, "")

	regions := make([]namedValue, 0, len(r.Regions))
	for _, p := range r.Regions {
		regions = append(regions, namedValue{p.Name, p.Count})
	}
	renderBars(w, "Regions", regions, "")

	populations := make([]namedValue, 0, len(r.Populations))
	for _, p := range r.Populations {
		populations = append(populations, namedValue{p.Name, p.Count})
	}
	renderBars(w, "Populations", populations, "")

	subtopics := make([]namedValue, 0, len(r.Subtopics))
	for _, p := range r.Subtopics {
		subtopics = append(subtopics, namedValue{p.Name, p.Coverage})
	}
	renderBars(w, "Subtopic coverage", subtopics, "%")

	renderList(w, "Research gaps", r.Insights)
	renderList(w, "Suggested questions", r.SuggestedQuestions)
}

// RenderInsights prints regenerated insights with their question groups.
func RenderInsights(w io.Writer, topic string, r *dto.InsightsResponse) {
	heading.Fprintf(w, "Refined insights: %s\n", topic)
	if r.Degraded {
		warning.Fprintln(w, "Insight generation failed; showing fallback text.")
	}
	renderList(w, "Research gaps", r.Insights)
	for _, g := range r.QuestionGroups {
		renderList(w, g.Group, g.Questions)
	}
}

// RenderSaved prints one line per saved query.
func RenderSaved(w io.Writer, saved []dto.ResearchResultResponse) {
	if len(saved) == 0 {
		muted.Fprintln(w, "No saved queries.")
		return
	}
	for _, s := range saved {
		when := ""
		if s.SavedAt != nil {
			when = s.SavedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s  %s  ", bullet.Sprint(s.Id), s.Query)
		muted.Fprintln(w, when)
	}
}

type namedValue struct {
	name  string
	value int
}

func renderBars(w io.Writer, title string, rows []namedValue, unit string) {
	fmt.Fprintln(w)
	heading.Fprintln(w, title)
	if len(rows) == 0 {
		muted.Fprintln(w, "  no data")
		return
	}

	labelWidth, peak := 0, 0
	for _, r := range rows {
		if len(r.name) > labelWidth {
			labelWidth = len(r.name)
		}
		if r.value > peak {
			peak = r.value
		}
	}

	for _, r := range rows {
		n := 0
		if peak > 0 {
			n = r.value * barWidth / peak
		}
		fmt.Fprintf(w, "  %-*s %s %d%s\n", labelWidth, r.name, bullet.Sprint(strings.Repeat("█", n)), r.value, unit)
	}
}

func renderList(w io.Writer, title string, items []string) {
	fmt.Fprintln(w)
	heading.Fprintln(w, title)
	for _, item := range items {
		fmt.Fprintf(w, "  • %s\n", item)
	}
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/olimci/frontkit/pkg/config"
	"github.com/olimci/frontkit/pkg/deps"
	"github.com/olimci/frontkit/pkg/events"
	"github.com/olimci/frontkit/pkg/generate"
	"github.com/olimci/frontkit/pkg/project"
	"github.com/olimci/frontkit/pkg/steps"
)

// logPrinter writes summaries and reports, styled when out is a terminal.
type logPrinter struct {
	out io.Writer
	mu  sync.Mutex

	rich        bool
	levelStyles map[events.Level]lipgloss.Style
	stepStyle   lipgloss.Style
	titleStyle  lipgloss.Style
	accentStyle lipgloss.Style
	mutedStyle  lipgloss.Style
}

func newLogPrinter(out io.Writer) *logPrinter {
	p := &logPrinter{out: out}

	if f, ok := out.(*os.File); ok {
		p.rich = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	if !p.rich {
		return p
	}

	p.levelStyles = map[events.Level]lipgloss.Style{
		events.Debug:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086")), // muted
		events.Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")), // blue
		events.Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af")), // yellow
		events.Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")), // red
	}
	p.stepStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	p.titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cba6f7"))
	p.accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	p.mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	return p
}

func (p *logPrinter) style(s lipgloss.Style, text string) string {
	if !p.rich {
		return text
	}
	return s.Render(text)
}

func (p *logPrinter) println(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, line)
}

// PrintSummary lists the warnings of a run; nothing is printed without any.
func (p *logPrinter) PrintSummary(summary *events.Summary) {
	if summary == nil || len(summary.Warnings) == 0 {
		return
	}

	p.println(p.style(p.titleStyle, fmt.Sprintf("Warnings (%d):", len(summary.Warnings))))
	for _, w := range summary.Warnings {
		p.println("- " + p.formatEvent(w))
	}
}

func (p *logPrinter) formatEvent(e events.Event) string {
	var b strings.Builder

	if style, ok := p.levelStyles[e.Level]; ok {
		b.WriteString(style.Render(e.Level.String()))
	} else {
		b.WriteString(e.Level.String())
	}
	if e.Step != "" {
		b.WriteString(" ")
		b.WriteString(p.style(p.stepStyle, "["+e.Step+"]"))
	}
	b.WriteString(": ")

	b.WriteString(e.Message)
	if e.Error != nil {
		b.WriteString(": ")
		b.WriteString(e.Error.Error())
	}

	return b.String()
}

// PrintSuccess prints the next steps for a finished project.
func (p *logPrinter) PrintSuccess(report *generate.Report, pub config.Publisher) {
	name := report.Record.Name

	p.println("")
	p.println(p.style(p.titleStyle, "Created "+name))
	p.println("")
	p.println("Next steps:")
	p.println("  " + p.style(p.accentStyle, "cd "+name))
	p.println("  " + p.style(p.accentStyle, report.Plan.Manager.Run("dev")))

	if len(report.Skipped()) > 0 {
		p.println("")
		p.println(p.style(p.mutedStyle, "Some steps were skipped; run `frontkit apply` after fixing them."))
	}

	links := make([]string, 0, len(pub.Links))
	for label := range pub.Links {
		links = append(links, label)
	}
	sort.Strings(links)
	if len(links) == 0 && pub.URL == "" {
		return
	}

	p.println("")
	if pub.URL != "" {
		p.println(p.style(p.mutedStyle, pub.Name+": "+pub.URL))
	}
	for _, label := range links {
		p.println(p.style(p.mutedStyle, fmt.Sprintf("%s: %s", label, pub.Links[label])))
	}
}

// PrintPlan prints the record, the commands and the mutation steps of a
// dry run.
func (p *logPrinter) PrintPlan(rec project.Record, plan deps.Plan, list []steps.Step) {
	p.println(p.style(p.titleStyle, "Configuration"))
	a := rec.Answers()
	rows := [][2]string{
		{"name", a.Name},
		{"flavor", a.Flavor},
		{"language", a.Language},
		{"ui", a.UI},
		{"router", optBool(a.Router)},
		{"icons", a.Icons},
		{"notification", a.Notification},
		{"auth", a.Auth},
		{"state", optBool(a.State)},
		{"http", optBool(a.HTTP)},
		{"structure", a.Structure},
	}
	for _, row := range rows {
		value := row[1]
		if value == "" {
			value = p.style(p.mutedStyle, "n/a")
		}
		p.println(fmt.Sprintf("  %-13s %s", row[0], value))
	}

	p.println("")
	p.println(p.style(p.titleStyle, "Commands"))
	p.println("  " + p.style(p.accentStyle, plan.Scaffold.String()))
	for _, cmd := range plan.Commands {
		line := cmd.String()
		if cmd.Dir != "" {
			line = "(in " + cmd.Dir + ") " + line
		}
		p.println("  " + p.style(p.accentStyle, line))
	}

	p.println("")
	p.println(p.style(p.titleStyle, "Steps"))
	for _, step := range list {
		p.println(fmt.Sprintf("  %-32s %s %s", step.ID, step.Target, p.style(p.mutedStyle, "("+step.Phase.String()+")")))
	}
}

// PrintReport lists the outcome of every mutation step.
func (p *logPrinter) PrintReport(results []steps.StepResult) {
	for _, res := range results {
		line := fmt.Sprintf("  %-32s %-9s %s", res.ID, res.Status, res.Target)
		if res.Reason != nil {
			line += p.style(p.mutedStyle, " ("+res.Reason.Error()+")")
		}
		p.println(line)
	}
}

func optBool(b *bool) string {
	if b == nil {
		return ""
	}
	if *b {
		return "yes"
	}
	return "no"
}

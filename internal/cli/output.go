package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"taskboard/internal/api"
	"taskboard/internal/session"
)

const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

func validateFormat(f string) error {
	switch f {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want table, json or yaml)", f)
}

// printer writes command results in the selected format. Table output is
// styled for the session theme.
type printer struct {
	w      io.Writer
	format string
	theme  string
}

func (p printer) heading(text string) string {
	color := lipgloss.Color("#4f46e5")
	if p.theme == session.ThemeDark {
		color = lipgloss.Color("#a5b4fc")
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}

// structured writes v as JSON or YAML. It reports false for table output.
func (p printer) structured(v interface{}) (bool, error) {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(p.w)
		defer enc.Close()
		return true, enc.Encode(v)
	}
	return false, nil
}

func (p printer) table(header string, rows [][]string) error {
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func formatDue(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

func formatLabels(labels []string) string {
	if len(labels) == 0 {
		return "-"
	}
	return strings.Join(labels, ",")
}

func (p printer) user(u *api.User) error {
	if ok, err := p.structured(u); ok {
		return err
	}
	return p.table("ID\tNAME\tEMAIL\tPICTURE", [][]string{{u.ID, u.Name, u.Email, orDash(u.ProfilePicture)}})
}

func (p printer) boards(boards []api.Board) error {
	if ok, err := p.structured(boards); ok {
		return err
	}
	rows := make([][]string, 0, len(boards))
	for _, b := range boards {
		rows = append(rows, []string{b.ID, b.Title, orDash(b.Description), b.CreatedAt.Format("2006-01-02")})
	}
	return p.table("ID\tTITLE\tDESCRIPTION\tCREATED", rows)
}

func (p printer) board(lists []api.List) error {
	if ok, err := p.structured(lists); ok {
		return err
	}
	for i, l := range lists {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		fmt.Fprintf(p.w, "%s  %s (%d)\n", p.heading(l.Title), l.ID, len(l.Cards))
		if err := p.cardRows(l.Cards); err != nil {
			return err
		}
	}
	return nil
}

func (p printer) cards(cards []api.Card) error {
	if ok, err := p.structured(cards); ok {
		return err
	}
	return p.cardRows(cards)
}

func (p printer) cardRows(cards []api.Card) error {
	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, []string{c.ID, c.Title, formatDue(c.DueDate), formatLabels(c.Labels), fmt.Sprint(len(c.Comments))})
	}
	return p.table("ID\tTITLE\tDUE\tLABELS\tCOMMENTS", rows)
}

func (p printer) card(c *api.Card) error {
	if ok, err := p.structured(c); ok {
		return err
	}
	fmt.Fprintf(p.w, "%s  %s\n", p.heading(c.Title), c.ID)
	if c.Description != "" {
		fmt.Fprintln(p.w, c.Description)
	}
	fmt.Fprintf(p.w, "due: %s  labels: %s\n", formatDue(c.DueDate), formatLabels(c.Labels))
	for _, cm := range c.Comments {
		author := cm.AuthorName
		if author == "" {
			author = cm.Author
		}
		fmt.Fprintf(p.w, "  [%s] %s: %s\n", cm.ID, author, cm.Text)
	}
	return nil
}

func (p printer) list(l *api.List) error {
	if ok, err := p.structured(l); ok {
		return err
	}
	return p.table("ID\tTITLE\tDESCRIPTION\tPOSITION", [][]string{{l.ID, l.Title, orDash(l.Description), fmt.Sprint(l.Position)}})
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

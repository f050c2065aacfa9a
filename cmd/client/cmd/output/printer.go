// Package output печатает результаты команд: таблицей с цветом или JSON.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"sitecms/internal/domain/record"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type ctxKey struct{}

type Printer struct {
	out  io.Writer
	json bool

	ok   *color.Color
	warn *color.Color
	dim  *color.Color
	bold *color.Color
}

// New создает Printer. Цвет включается, только если out - терминал.
func New(out io.Writer, jsonOutput bool) *Printer {
	colored := false
	if f, ok := out.(*os.File); ok {
		colored = term.IsTerminal(int(f.Fd()))
	}

	p := &Printer{
		out:  out,
		json: jsonOutput,
		ok:   color.New(color.FgGreen),
		warn: color.New(color.FgYellow),
		dim:  color.New(color.FgHiBlack),
		bold: color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.ok, p.warn, p.dim, p.bold} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext возвращает Printer команды или печатающий в stdout без цвета
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(io.Writer(os.Stdout), false)
}

func (p *Printer) JSONMode() bool {
	return p.json
}

func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (p *Printer) Success(format string, args ...any) {
	p.ok.Fprintf(p.out, "✓ "+format+"\n", args...)
}

func (p *Printer) Warn(format string, args ...any) {
	p.warn.Fprintf(p.out, "⚠ "+format+"\n", args...)
}

func (p *Printer) Posts(posts []record.Post) error {
	if p.json {
		return p.JSON(posts)
	}
	if len(posts) == 0 {
		p.dim.Fprintln(p.out, "Постов нет")
		return nil
	}

	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, p.bold.Sprint("ID\tДата\tТип\tЗаголовок\tМедиа"))
	for _, post := range posts {
		media := post.Media
		if media == "" {
			media = p.dim.Sprint("-")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", post.ID, post.Date, post.Type, truncate(post.Title, 40), media)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "\nВсего постов: %d\n", len(posts))
	return nil
}

func (p *Printer) Jobs(jobs []record.Job) error {
	if p.json {
		return p.JSON(jobs)
	}
	if len(jobs) == 0 {
		p.dim.Fprintln(p.out, "Вакансий нет")
		return nil
	}

	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, p.bold.Sprint("ID\tДата\tКомпания\tНазвание\tСсылка"))
	for _, job := range jobs {
		company := job.Company
		if company == "" {
			company = p.dim.Sprint("-")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", job.ID, job.Date, company, truncate(job.Title, 40), job.Link)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(p.out, "\nВсего вакансий: %d\n", len(jobs))
	return nil
}

func truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length {
		return s
	}
	return string(r[:length-3]) + "..."
}

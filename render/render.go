// Package render turns a catalog of l-systems into a paged SVG document,
// one page per grammar.
package render

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	lsystem "github.com/viktordanov/lsvg"
	"github.com/viktordanov/lsvg/config"
	"github.com/viktordanov/lsvg/internal/logging"
	"github.com/viktordanov/lsvg/svg"
	"github.com/viktordanov/lsvg/turtle"
)

const (
	titleSize = 0.30 // inches
	noteSize  = 0.12
	textInset = 0.10
)

var ErrEmptyCatalog = errors.New("no l-systems to render")

// Summary counts what a render produced.
type Summary struct {
	Pages  int
	Shapes int
	Failed int
}

type Renderer struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *Metrics
	outline bool
	opener  svg.Opener
}

type Option func(*Renderer)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

func WithMetrics(m *Metrics) Option {
	return func(r *Renderer) {
		r.metrics = m
	}
}

// WithOutline draws the layout boxes on every page.
func WithOutline(outline bool) Option {
	return func(r *Renderer) {
		r.outline = outline
	}
}

func WithOpener(open svg.Opener) Option {
	return func(r *Renderer) {
		r.opener = open
	}
}

func New(cfg *config.Config, opts ...Option) *Renderer {
	r := &Renderer{
		cfg:    cfg,
		logger: logging.NewNop(),
		opener: svg.CreateFile,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Shape elaborates l at order and fits the drawing into target. It returns
// the path data and the number of drawing actions.
func (r *Renderer) Shape(l *lsystem.LSystem, order int, target turtle.BBox) (string, int, error) {
	actions := l.Elaborate(order)
	path, box, err := turtle.Interpret(actions, l.AngleRadians())
	if err != nil {
		return "", 0, fmt.Errorf("%s order %d: %w", l.Title, order, err)
	}
	return svg.Fit(path, box, target, r.cfg.PathMode), len(path), nil
}

// RenderCatalog writes every l-system in c to a new document at path.
// A shape whose grammar is broken is skipped and counted; document and
// sink errors abort the whole render.
func (r *Renderer) RenderCatalog(c lsystem.Catalog, path string) (Summary, error) {
	var summary Summary
	if len(c) == 0 {
		return summary, ErrEmptyCatalog
	}

	doc := svg.NewDocument(r.cfg, svg.WithOpener(r.opener))
	if err := doc.Open(path, fmt.Sprintf("%d l-systems", len(c))); err != nil {
		return summary, err
	}
	layout := svg.LayoutBoxes(r.cfg)

	for _, l := range c {
		if err := r.renderPage(doc, l, layout, &summary); err != nil {
			doc.Abort()
			return summary, err
		}
	}
	if err := doc.Close(); err != nil {
		doc.Abort()
		return summary, err
	}
	return summary, nil
}

func (r *Renderer) renderPage(doc *svg.Document, l *lsystem.LSystem, layout svg.Layout, summary *Summary) error {
	if err := doc.StartPage(l.Title); err != nil {
		return err
	}
	r.logger.Debug("page_start", "page", doc.PageNumber(), "title", l.Title)

	if err := doc.AddFragment(r.captions(l, layout)); err != nil {
		return err
	}
	if r.outline {
		if err := doc.AddFragment(svg.DrawBoxes(layout, r.cfg)); err != nil {
			return err
		}
	}

	for i, order := range l.Orders {
		if i >= len(svg.DrawingBoxes) {
			r.logger.Warn("order_dropped", "title", l.Title, "order", order)
			break
		}
		data, n, err := r.Shape(l, order, layout[svg.DrawingBoxes[i]])
		if err != nil {
			summary.Failed++
			r.countShape("failed", 0)
			r.logger.Error("shape_failed", "title", l.Title, "order", order, "error", err)
			continue
		}
		frag := fmt.Sprintf("<!-- %s, order %d, %d actions -->\n", svg.Comment(l.Title), order, n) +
			svg.PathElement(data, r.cfg.LineWidth)
		if err := doc.AddFragment(frag); err != nil {
			return err
		}
		summary.Shapes++
		r.countShape("ok", n)
	}

	if err := doc.EndPage(); err != nil {
		return err
	}
	summary.Pages++
	if r.metrics != nil {
		r.metrics.Pages.Inc()
	}
	return nil
}

func (r *Renderer) countShape(result string, actions int) {
	if r.metrics == nil {
		return
	}
	r.metrics.Shapes.WithLabelValues(result).Inc()
	r.metrics.Actions.Add(float64(actions))
}

// captions renders the title, references and grammar attributes.
func (r *Renderer) captions(l *lsystem.LSystem, layout svg.Layout) string {
	var sb strings.Builder

	top := layout[svg.BoxTop]
	sb.WriteString(svg.TextElement(top.XMin+textInset, top.YMin+top.Height()*0.6, titleSize, l.Title))

	a := layout[svg.BoxA]
	for i, ref := range l.Refs {
		y := a.YMin + float64(i+1)*noteSize*1.5
		if y > a.YMax {
			break
		}
		sb.WriteString(svg.TextElement(a.XMin+textInset, y, noteSize, ref))
	}

	b := layout[svg.BoxB]
	attrs := []string{
		fmt.Sprintf("angle %g", l.Angle),
		"start " + l.Start,
		fmt.Sprintf("orders %v", l.Orders),
	}
	for _, p := range l.Rules.Productions() {
		attrs = append(attrs, p.String())
	}
	for i, attr := range attrs {
		y := b.YMin + float64(i+1)*noteSize*1.5
		if y > b.YMax {
			break
		}
		sb.WriteString(svg.TextElement(b.XMin+textInset, y, noteSize, attr))
	}
	return sb.String()
}

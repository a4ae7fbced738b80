package svg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/viktordanov/lsvg/config"
)

// State is the nesting level of a Document.
type State int

const (
	StateClosed State = iota
	StateDocument
	StatePage
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateDocument:
		return "document"
	case StatePage:
		return "page"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var ErrInvalidTransition = errors.New("invalid document transition")

// TransitionError is returned when an operation is attempted in a state
// that does not allow it. The document is left unchanged.
type TransitionError struct {
	Op     string
	State  State
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s in state %s: %s", e.Op, e.State, e.Reason)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Sink receives the finished document.
type Sink interface {
	io.Writer
	Sync() error
	Close() error
}

type Opener func(path string) (Sink, error)

// CreateFile opens path for writing, creating or truncating it.
func CreateFile(path string) (Sink, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	return f, nil
}

type Option func(*Document)

func WithOpener(open Opener) Option {
	return func(d *Document) {
		d.open = open
	}
}

// Document enforces document -> page -> fragment nesting while collecting
// markup. Pages are written to the sink when they end; fragments are not
// inspected.
type Document struct {
	cfg  *config.Config
	open Opener

	inDoc  bool
	inPage bool
	pageNo int
	fragNo int
	buf    bytes.Buffer
	sink   Sink
}

func NewDocument(cfg *config.Config, opts ...Option) *Document {
	d := &Document{cfg: cfg, open: CreateFile}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Document) State() State {
	switch {
	case d.inPage:
		return StatePage
	case d.inDoc:
		return StateDocument
	}
	return StateClosed
}

func (d *Document) PageNumber() int     { return d.pageNo }
func (d *Document) FragmentNumber() int { return d.fragNo }

// Pending returns the number of buffered bytes not yet written.
func (d *Document) Pending() int { return d.buf.Len() }

func (d *Document) fail(op, reason string) error {
	return &TransitionError{Op: op, State: d.State(), Reason: reason}
}

// Open starts a document written to path. Only valid on a pristine
// document.
func (d *Document) Open(path, comment string) error {
	const op = "open document"
	switch {
	case d.inDoc || d.inPage:
		return d.fail(op, "document already open")
	case d.pageNo != 0 || d.fragNo != 0 || d.buf.Len() != 0 || d.sink != nil:
		return d.fail(op, "document state not reset")
	}

	sink, err := d.open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	d.sink = sink

	fmt.Fprintf(&d.buf, `<!-- %s
     %s -->
<svg
    xmlns="http://www.w3.org/2000/svg"
    version="1.2"
    width="%gin"
    height="%gin"
>
<pageSet>

`, Comment(path), Comment(comment), d.cfg.PageWidth, d.cfg.PageHeight)
	d.inDoc = true
	return nil
}

func (d *Document) StartPage(comment string) error {
	const op = "start page"
	switch {
	case !d.inDoc:
		return d.fail(op, "no document open")
	case d.inPage:
		return d.fail(op, "page already open")
	}

	d.pageNo++
	d.fragNo = 0
	fmt.Fprintf(&d.buf, `<page>
<!-- begin page %d
     %s -->
`, d.pageNo, Comment(comment))
	d.inPage = true
	return nil
}

// AddFragment appends content verbatim to the open page.
func (d *Document) AddFragment(content string) error {
	if !d.inPage {
		return d.fail("add fragment", "no page open")
	}

	d.fragNo++
	fmt.Fprintf(&d.buf, "\n<!-- page %d fragment %d -->\n", d.pageNo, d.fragNo)
	d.buf.WriteString(content)
	return nil
}

// EndPage closes the page and writes everything buffered so far.
func (d *Document) EndPage() error {
	const op = "end page"
	switch {
	case !d.inDoc || !d.inPage:
		return d.fail(op, "no page open")
	case d.fragNo == 0:
		return d.fail(op, "page has no fragments")
	case d.sink == nil:
		return d.fail(op, "no sink")
	}

	mark := d.buf.Len()
	fmt.Fprintf(&d.buf, "\n</page>\n<!-- end page %d -->\n\n", d.pageNo)
	if _, err := d.sink.Write(d.buf.Bytes()); err != nil {
		d.buf.Truncate(mark)
		return fmt.Errorf("failed to write page %d: %w", d.pageNo, err)
	}
	d.buf.Reset()
	d.inPage = false
	return nil
}

// Close writes the document footer, syncs and releases the sink, and
// returns the document to its initial state.
func (d *Document) Close() error {
	const op = "close document"
	switch {
	case !d.inDoc:
		return d.fail(op, "no document open")
	case d.inPage:
		return d.fail(op, "page still open")
	case d.pageNo == 0:
		return d.fail(op, "document has no pages")
	case d.buf.Len() != 0:
		return d.fail(op, "unwritten data pending")
	case d.sink == nil:
		return d.fail(op, "no sink")
	}

	if _, err := io.WriteString(d.sink, "</pageSet>\n</svg>\n"); err != nil {
		return fmt.Errorf("failed to write document footer: %w", err)
	}
	if err := d.sink.Sync(); err != nil {
		return fmt.Errorf("failed to sync document: %w", err)
	}
	err := d.sink.Close()
	d.reset()
	if err != nil {
		return fmt.Errorf("failed to close document: %w", err)
	}
	return nil
}

// Abort releases the sink without finishing the document. It is valid in
// any state.
func (d *Document) Abort() error {
	var err error
	if d.sink != nil {
		err = d.sink.Close()
	}
	d.reset()
	return err
}

func (d *Document) reset() {
	d.inDoc = false
	d.inPage = false
	d.pageNo = 0
	d.fragNo = 0
	d.buf.Reset()
	d.sink = nil
}

// Action is one document operation, for callers that drive the document
// from a list of steps.
type Action interface {
	apply(d *Document) error
}

type OpenDocument struct{ Path, Comment string }
type StartPage struct{ Comment string }
type AddFragment struct{ Content string }
type EndPage struct{}
type CloseDocument struct{}

func (a OpenDocument) apply(d *Document) error  { return d.Open(a.Path, a.Comment) }
func (a StartPage) apply(d *Document) error     { return d.StartPage(a.Comment) }
func (a AddFragment) apply(d *Document) error   { return d.AddFragment(a.Content) }
func (a EndPage) apply(d *Document) error       { return d.EndPage() }
func (a CloseDocument) apply(d *Document) error { return d.Close() }

// Apply performs the actions in order and stops at the first failure.
func (d *Document) Apply(actions ...Action) error {
	for _, a := range actions {
		if err := a.apply(d); err != nil {
			return err
		}
	}
	return nil
}

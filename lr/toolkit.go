package lr

import "github.com/phpdave11/gofpdf"

type rgb struct{ r, g, b int }

var (
	black    = rgb{0, 0, 0}
	red      = rgb{200, 0, 0}
	formRule = rgb{0, 100, 0}  // border rule on the green Transports stock
	formFill = rgb{210, 240, 210}
)

// page wraps a gofpdf document with the small set of primitives both LR
// templates are drawn with. All coordinates are millimetres on an A4 page.
type page struct {
	pdf *gofpdf.Fpdf
}

func (p *page) font(style string, size float64) {
	p.pdf.SetFont("Helvetica", style, size)
}

func (p *page) color(c rgb) {
	p.pdf.SetTextColor(c.r, c.g, c.b)
}

func (p *page) draw(c rgb) {
	p.pdf.SetDrawColor(c.r, c.g, c.b)
}

func (p *page) fill(c rgb) {
	p.pdf.SetFillColor(c.r, c.g, c.b)
}

func (p *page) lineWidth(w float64) {
	p.pdf.SetLineWidth(w)
}

func (p *page) rect(x, y, w, h float64) {
	p.pdf.Rect(x, y, w, h, "D")
}

func (p *page) rectFill(x, y, w, h float64) {
	p.pdf.Rect(x, y, w, h, "F")
}

func (p *page) line(x1, y1, x2, y2 float64) {
	p.pdf.Line(x1, y1, x2, y2)
}

func (p *page) circle(x, y, r float64) {
	p.pdf.Circle(x, y, r, "D")
}

func (p *page) text(x, y float64, s string) {
	p.pdf.Text(x, y, s)
}

// textCenter places s so its middle sits at x.
func (p *page) textCenter(x, y float64, s string) {
	p.pdf.Text(x-p.pdf.GetStringWidth(s)/2, y, s)
}

// textRight places s so it ends at x.
func (p *page) textRight(x, y float64, s string) {
	p.pdf.Text(x-p.pdf.GetStringWidth(s), y, s)
}

// ruledField draws a bold label, the value alongside it, and the ruled
// underline the value is written on. Used by the side-panel fields of both
// forms.
func (p *page) ruledField(labelX, valueX, ruleX2, y float64, label, value string) {
	p.font("B", 0)
	p.text(labelX, y, label)
	p.font("", 0)
	p.text(valueX, y, value)
	p.line(labelX, y+2, ruleX2, y+2)
}

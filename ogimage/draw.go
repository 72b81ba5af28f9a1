package ogimage

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	teal      = color.RGBA{0x14, 0xb8, 0xa6, 0xff}
	tealDark  = color.RGBA{0x0d, 0x94, 0x88, 0xff}
	emerald   = color.RGBA{0x10, 0xb9, 0x81, 0xff}
	ink       = color.RGBA{0x1a, 0x1a, 0x1a, 0xff}
	muted     = color.RGBA{0x66, 0x66, 0x66, 0xff}
	bodyText  = color.RGBA{0x33, 0x33, 0x33, 0xff}
	hairline  = color.RGBA{0xe5, 0xe5, 0xe5, 0xff}
	cardWhite = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// faces caches the font faces of one render so they can be closed together.
type faces struct {
	r    *Renderer
	open []font.Face
}

func (f *faces) get(bold bool, size float64) (font.Face, error) {
	src := f.r.regular
	if bold {
		src = f.r.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	f.open = append(f.open, face)
	return face, nil
}

func (f *faces) close() {
	for _, face := range f.open {
		face.Close()
	}
}

func (r *Renderer) draw(l Layout) (*image.RGBA, error) {
	dst := image.NewRGBA(image.Rect(0, 0, Width, Height))
	fillGradient(dst, dst.Bounds(), teal, tealDark)

	fs := &faces{r: r}
	defer fs.close()

	if l.Kind == KindSite {
		return dst, drawSite(dst, fs, l)
	}
	return dst, drawCourse(dst, fs, l)
}

func drawSite(dst *image.RGBA, fs *faces, l Layout) error {
	card := image.Rect(100, 60, Width-100, Height-60)
	fillRounded(dst, card, image.NewUniform(cardWhite), 16)
	centerX := card.Min.X + card.Dx()/2
	y := card.Min.Y + 60

	badgeFace, err := fs.get(true, 18)
	if err != nil {
		return err
	}
	badgeW := textWidth(badgeFace, l.Badge)
	pill := image.Rect(centerX-badgeW/2-28, y, centerX+badgeW/2+28, y+50)
	badge := image.NewRGBA(image.Rect(0, 0, pill.Dx(), pill.Dy()))
	fillGradient(badge, badge.Bounds(), teal, emerald)
	draw.DrawMask(dst, pill, badge, image.Point{}, roundedRect{r: pill, radius: 25}, pill.Min, draw.Over)
	drawText(dst, badgeFace, color.White, centerX-badgeW/2, pill.Min.Y+14, l.Badge)
	y = pill.Max.Y + 28

	titleFace, err := fs.get(true, 58)
	if err != nil {
		return err
	}
	for _, line := range wrap(titleFace, l.Title, card.Dx()-140) {
		drawText(dst, titleFace, ink, centerX-textWidth(titleFace, line)/2, y, line)
		y += 70
	}
	y += 24

	subFace, err := fs.get(false, 26)
	if err != nil {
		return err
	}
	for _, line := range wrap(subFace, l.Description, 800) {
		drawText(dst, subFace, muted, centerX-textWidth(subFace, line)/2, y, line)
		y += 36
	}
	y += 36

	statFace, err := fs.get(true, 20)
	if err != nil {
		return err
	}
	const gap = 40
	total := gap * (len(l.Stats) - 1)
	for _, s := range l.Stats {
		total += textWidth(statFace, s)
	}
	x := centerX - total/2
	for _, s := range l.Stats {
		drawText(dst, statFace, bodyText, x, y, s)
		x += textWidth(statFace, s) + gap
	}
	return nil
}

func drawCourse(dst *image.RGBA, fs *faces, l Layout) error {
	card := image.Rect(100, 50, Width-100, Height-50)
	fillRounded(dst, card, image.NewUniform(cardWhite), 16)
	left := card.Min.X + 55
	right := card.Max.X - 55
	y := card.Min.Y + 55

	titleFace, err := fs.get(true, 54)
	if err != nil {
		return err
	}
	for _, line := range wrap(titleFace, l.Title, right-left) {
		drawText(dst, titleFace, ink, left, y, line)
		y += 65
	}
	y += 22

	descFace, err := fs.get(false, 24)
	if err != nil {
		return err
	}
	for _, line := range wrap(descFace, l.Description, right-left) {
		drawText(dst, descFace, muted, left, y, line)
		y += 34
	}
	y += 32

	metaFace, err := fs.get(false, 21)
	if err != nil {
		return err
	}
	x := left
	for _, s := range l.Stats {
		drawText(dst, metaFace, bodyText, x, y, s)
		x += textWidth(metaFace, s) + 32
	}
	y += 25 + 32

	draw.Draw(dst, image.Rect(left, y, right, y+2), image.NewUniform(hairline), image.Point{}, draw.Src)
	y += 28

	footerFace, err := fs.get(true, 24)
	if err != nil {
		return err
	}
	priceFace, err := fs.get(true, 32)
	if err != nil {
		return err
	}
	baseline := y + ascent(priceFace)
	drawTextBaseline(dst, footerFace, teal, left, baseline, l.Footer)
	drawTextBaseline(dst, priceFace, ink, right-textWidth(priceFace, l.Price), baseline, l.Price)
	return nil
}

// wrap breaks text into lines no wider than maxWidth pixels. A single word
// wider than maxWidth gets a line of its own.
func wrap(face font.Face, text string, maxWidth int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && textWidth(face, candidate) > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

func ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}

// drawText draws s with its top edge at y.
func drawText(dst *image.RGBA, face font.Face, c color.Color, x, y int, s string) {
	drawTextBaseline(dst, face, c, x, y+ascent(face), s)
}

func drawTextBaseline(dst *image.RGBA, face font.Face, c color.Color, x, baseline int, s string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

// fillGradient paints a 135 degree linear gradient over r.
func fillGradient(dst *image.RGBA, r image.Rectangle, from, to color.RGBA) {
	span := r.Dx() + r.Dy()
	if span == 0 {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			t := float64(x-r.Min.X+y-r.Min.Y) / float64(span)
			dst.SetRGBA(x, y, color.RGBA{
				R: lerp(from.R, to.R, t),
				G: lerp(from.G, to.G, t),
				B: lerp(from.B, to.B, t),
				A: 0xff,
			})
		}
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func fillRounded(dst *image.RGBA, r image.Rectangle, src image.Image, radius int) {
	draw.DrawMask(dst, r, src, image.Point{}, roundedRect{r: r, radius: radius}, r.Min, draw.Over)
}

// roundedRect is an alpha mask covering r with rounded corners.
type roundedRect struct {
	r      image.Rectangle
	radius int
}

func (m roundedRect) ColorModel() color.Model { return color.AlphaModel }

func (m roundedRect) Bounds() image.Rectangle { return m.r }

func (m roundedRect) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(m.r) {
		return color.Transparent
	}
	rad := min(m.radius, m.r.Dx()/2, m.r.Dy()/2)
	cx, cy := x, y
	switch {
	case x < m.r.Min.X+rad:
		cx = m.r.Min.X + rad
	case x >= m.r.Max.X-rad:
		cx = m.r.Max.X - rad - 1
	}
	switch {
	case y < m.r.Min.Y+rad:
		cy = m.r.Min.Y + rad
	case y >= m.r.Max.Y-rad:
		cy = m.r.Max.Y - rad - 1
	}
	dx, dy := x-cx, y-cy
	if dx*dx+dy*dy > rad*rad {
		return color.Transparent
	}
	return color.Opaque
}

package ebitenhost

import (
	"errors"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var errEmptyLabel = errors.New("label has no size")

// labelCache keeps the most recently rendered label. The label only changes
// once a second so most frames reuse the image.
type labelCache struct {
	face  text.Face
	color color.Color

	text string
	img  *ebiten.Image
}

func (l *labelCache) render(s string) (*ebiten.Image, error) {
	if l.img != nil && s == l.text {
		return l.img, nil
	}

	w, h := text.Measure(s, l.face, 0)
	iw, ih := int(math.Ceil(w)), int(math.Ceil(h))
	if iw <= 0 || ih <= 0 {
		return nil, errEmptyLabel
	}

	if l.img != nil {
		l.img.Deallocate()
	}
	l.img = ebiten.NewImage(iw, ih)
	l.text = s

	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(l.color)
	text.Draw(l.img, s, l.face, op)

	return l.img, nil
}

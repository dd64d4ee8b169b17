package ui

import (
	"image"

	cfg "github.com/automoto/latticeveil/config"
	"github.com/automoto/latticeveil/worldgen"
)

// Layout is the world settings panel geometry for one viewport.
type Layout struct {
	Viewport image.Rectangle
	Panel    image.Rectangle
	Content  image.Rectangle
	Title    image.Rectangle
	Toggles  [worldgen.OptionCount]image.Rectangle
	Field    image.Rectangle
	Back     image.Rectangle
}

// ComputeLayout derives the panel geometry from the viewport alone.
// backAspect is the back button's width/height ratio.
func ComputeLayout(viewport image.Rectangle, backAspect float64) Layout {
	c := cfg.WorldSettings
	l := Layout{Viewport: viewport}

	vw, vh := viewport.Dx(), viewport.Dy()
	pw := max(0, min(c.PanelMaxWidth, vw-2*c.ViewportMargin))
	ph := max(0, min(c.PanelMaxHeight, vh-2*c.ViewportMargin))
	px := viewport.Min.X + (vw-pw)/2
	py := viewport.Min.Y + (vh-ph)/2
	l.Panel = image.Rect(px, py, px+pw, py+ph)

	padX := clampInt(int(float64(pw)*c.PaddingRatio), c.PaddingMin, c.PaddingMax)
	padY := clampInt(int(float64(ph)*c.PaddingRatio), c.PaddingMin, c.PaddingMax)
	l.Content = inset(l.Panel, padX+c.ContentShrink, padY+c.ContentShrink)

	titleBottom := min(l.Content.Min.Y+c.TitleHeight, l.Content.Max.Y)
	l.Title = image.Rect(l.Content.Min.X, l.Content.Min.Y, l.Content.Max.X, titleBottom)

	// Rows shrink evenly when the content area is too short for full-height buttons
	n := int(worldgen.OptionCount)
	avail := l.Content.Max.Y - titleBottom - (n-1)*c.ButtonSpacing
	rowH := max(0, min(c.ButtonHeight, avail/n))

	toggleW := int(float64(l.Content.Dx()) * c.ToggleWidthRatio)
	y := titleBottom
	for i := range l.Toggles {
		l.Toggles[i] = image.Rect(l.Content.Min.X, y, l.Content.Min.X+toggleW, y+rowH)
		y += rowH + c.ButtonSpacing
	}

	homes := l.Toggles[worldgen.OptionHomes]
	fx := homes.Max.X + c.FieldGap
	fw := max(0, min(c.FieldMaxWidth, l.Content.Max.X-fx))
	l.Field = image.Rect(fx, homes.Min.Y, fx+fw, homes.Max.Y)

	l.Back = backRect(viewport, backAspect)
	return l
}

// backRect fits the back button into its target box, keeping aspect ratio.
func backRect(viewport image.Rectangle, aspect float64) image.Rectangle {
	c := cfg.WorldSettings
	if aspect <= 0 {
		aspect = c.BackDefaultAspect
	}

	w := float64(c.BackBoxWidth)
	h := w / aspect
	if h > float64(c.BackBoxHeight) {
		h = float64(c.BackBoxHeight)
		w = h * aspect
	}

	x0 := viewport.Min.X + c.BackMargin
	y1 := viewport.Max.Y - c.BackMargin
	return image.Rect(x0, y1-int(h), x0+int(w), y1)
}

func inset(r image.Rectangle, dx, dy int) image.Rectangle {
	if r.Dx() < 2*dx {
		mid := r.Min.X + r.Dx()/2
		r.Min.X, r.Max.X = mid, mid
	} else {
		r.Min.X += dx
		r.Max.X -= dx
	}
	if r.Dy() < 2*dy {
		mid := r.Min.Y + r.Dy()/2
		r.Min.Y, r.Max.Y = mid, mid
	} else {
		r.Min.Y += dy
		r.Max.Y -= dy
	}
	return r
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package fyneview

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	sdui "github.com/jbriggs-source/PestGenie-sub002"
)

// animated wraps a canvas object and plays its entrance effect on first
// layout, once the final geometry is known. Exactly one of anim/trans is
// set; the renderer dispatches on whichever it finds.
type animated struct {
	widget.BaseWidget
	content fyne.CanvasObject
	anim    *sdui.AnimationSpec
	trans   *sdui.TransitionSpec
}

func newAnimated(content fyne.CanvasObject, anim *sdui.AnimationSpec, trans *sdui.TransitionSpec) *animated {
	a := &animated{content: content, anim: anim, trans: trans}
	a.ExtendBaseWidget(a)
	return a
}

func (a *animated) CreateRenderer() fyne.WidgetRenderer {
	return &animatedRenderer{owner: a}
}

type animatedRenderer struct {
	owner   *animated
	running *fyne.Animation
	started bool
}

func (r *animatedRenderer) MinSize() fyne.Size {
	return r.owner.content.MinSize()
}

func (r *animatedRenderer) Layout(size fyne.Size) {
	r.owner.content.Resize(size)
	r.owner.content.Move(fyne.NewPos(0, 0))
	if !r.started && size.Width > 0 {
		r.started = true
		r.start(size)
	}
}

func (r *animatedRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.owner.content}
}

func (r *animatedRenderer) Refresh() {
	r.owner.content.Refresh()
}

func (r *animatedRenderer) Destroy() {
	if r.running != nil {
		r.running.Stop()
	}
}

func (r *animatedRenderer) start(size fyne.Size) {
	if spec := r.owner.trans; spec != nil {
		switch spec.Type {
		case sdui.TransitionSlide, sdui.TransitionMoveIn:
			r.slide(size, -size.Width)
		case sdui.TransitionMoveOut:
			r.slide(size, size.Width)
		case sdui.TransitionScale:
			r.scale(size)
		case sdui.TransitionOpacity:
			// Canvas objects carry no alpha channel; a short rise reads
			// as a fade-in at this scale.
			r.rise(size, sdui.DefaultAnimationDuration, fyne.AnimationEaseInOut)
		}
		return
	}
	if spec := r.owner.anim; spec != nil && spec.Type != sdui.AnimationNone {
		r.rise(size, spec.TimeDuration(), curveFor(spec.Type))
	}
}

// slide moves the content in from offset to rest.
func (r *animatedRenderer) slide(size fyne.Size, offset float32) {
	content := r.owner.content
	r.play(sdui.DefaultAnimationDuration, fyne.AnimationEaseOut, func(p float32) {
		content.Move(fyne.NewPos(offset*(1-p), 0))
	})
}

// scale grows the content from 90% around its center.
func (r *animatedRenderer) scale(size fyne.Size) {
	content := r.owner.content
	r.play(sdui.DefaultAnimationDuration, fyne.AnimationEaseOut, func(p float32) {
		f := 0.9 + 0.1*p
		w, h := size.Width*f, size.Height*f
		content.Resize(fyne.NewSize(w, h))
		content.Move(fyne.NewPos((size.Width-w)/2, (size.Height-h)/2))
	})
}

// rise is the generic entrance: a short upward settle.
func (r *animatedRenderer) rise(size fyne.Size, d time.Duration, curve fyne.AnimationCurve) {
	content := r.owner.content
	r.play(d, curve, func(p float32) {
		content.Move(fyne.NewPos(0, 12*(1-p)))
	})
}

func (r *animatedRenderer) play(d time.Duration, curve fyne.AnimationCurve, tick func(float32)) {
	anim := fyne.NewAnimation(d, tick)
	anim.Curve = curve
	r.running = anim
	anim.Start()
}

func curveFor(t sdui.AnimationType) fyne.AnimationCurve {
	switch t {
	case sdui.AnimationLinear:
		return fyne.AnimationLinear
	case sdui.AnimationEaseIn:
		return fyne.AnimationEaseIn
	case sdui.AnimationEaseOut, sdui.AnimationSpring:
		return fyne.AnimationEaseOut
	default:
		return fyne.AnimationEaseInOut
	}
}

package pinchview

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RefreshState describes the externally-driven refresh status of the
// page strip. Scrolling is disabled for as long as a refresh is active.
type RefreshState uint8

const (
	RefreshNone   RefreshState = iota // no refresh in progress
	RefreshHeader                     // pulled past the first page
	RefreshFooter                     // pulled past the last page
)

const (
	// pageScrollTime is the duration in seconds of an animated page snap.
	pageScrollTime float32 = 0.25
	// defaultPullThreshold is how far past an edge the strip must be
	// pulled, in pixels, before a refresh is requested.
	defaultPullThreshold = 60.0
	// maxOvershoot limits how far past an edge the strip can be dragged,
	// as a multiple of the pull threshold.
	maxOvershoot = 1.5
)

// Pager models the horizontally paged strip the gallery scrolls through.
// It tracks the scroll offset and current page, animates page snaps, and
// requests a refresh when the strip is pulled past either edge. The real
// list view is an external collaborator; this model carries just enough
// state to honor the realign, refresh, and scroll-gating contracts.
type Pager struct {
	pageWidth     float64
	count         int
	page          int
	offset        float64
	pullThreshold float64

	tween *gween.Tween

	refreshing RefreshState
	onChange   func(page int)
	onRefresh  func(edge RefreshState)
}

// newPager creates a pager with count pages of the given width, starting
// at page 0.
func newPager(pageWidth float64, count int) *Pager {
	if count < 1 {
		count = 1
	}
	return &Pager{
		pageWidth:     pageWidth,
		count:         count,
		pullThreshold: defaultPullThreshold,
	}
}

// Page returns the current page index.
func (p *Pager) Page() int {
	return p.page
}

// Offset returns the current scroll offset in pixels. Page i rests at
// offset i*pageWidth.
func (p *Pager) Offset() float64 {
	return p.offset
}

// PageCount returns the number of pages.
func (p *Pager) PageCount() int {
	return p.count
}

// ScrollEnabled reports whether the strip may scroll. Scrolling is
// disabled only while a refresh is active, never because zooming is;
// zoom suppression happens through the responder-claim predicates.
func (p *Pager) ScrollEnabled() bool {
	return p.refreshing == RefreshNone
}

// OnPageChange registers a callback fired whenever the current page
// index changes.
func (p *Pager) OnPageChange(fn func(page int)) {
	p.onChange = fn
}

// OnRefresh registers the edge pull callback. It fires once per pull
// with RefreshHeader or RefreshFooter; call FinishRefresh when the
// host's data load completes.
func (p *Pager) OnRefresh(fn func(edge RefreshState)) {
	p.onRefresh = fn
}

// Refreshing returns the active refresh state.
func (p *Pager) Refreshing() RefreshState {
	return p.refreshing
}

// FinishRefresh clears the refresh state, re-enabling scrolling, and
// snaps the strip back onto the current page.
func (p *Pager) FinishRefresh() {
	p.refreshing = RefreshNone
	p.ScrollToPage(p.page, true)
}

// ScrollToPage moves the strip to the given page, clamped to the valid
// range. Animated snaps tween the offset; unanimated ones jump.
func (p *Pager) ScrollToPage(page int, animated bool) {
	if page < 0 {
		page = 0
	}
	if page > p.count-1 {
		page = p.count - 1
	}

	target := float64(page) * p.pageWidth
	if animated {
		p.tween = gween.New(float32(p.offset), float32(target), pageScrollTime, ease.OutCubic)
	} else {
		p.tween = nil
		p.offset = target
	}
	p.setPage(page)
}

// Realign snaps the strip onto the current page without animation.
// Executed when a pinch begins, so the strip cannot drift mid-gesture.
func (p *Pager) Realign() {
	p.ScrollToPage(p.page, false)
}

// ScrollBy drags the strip by delta pixels. Overshoot past either edge
// is elastic up to a limit; pulling past the threshold requests a
// header or footer refresh. No-op while a refresh is active.
func (p *Pager) ScrollBy(delta float64) {
	if !p.ScrollEnabled() {
		return
	}
	p.tween = nil

	maxOffset := float64(p.count-1) * p.pageWidth
	limit := p.pullThreshold * maxOvershoot
	p.offset = clamp(p.offset+delta, -limit, maxOffset+limit)

	if p.offset < -p.pullThreshold {
		p.requestRefresh(RefreshHeader)
	} else if p.offset > maxOffset+p.pullThreshold {
		p.requestRefresh(RefreshFooter)
	}
}

// Settle snaps the strip to the nearest page with an animated tween.
// Call on drag release.
func (p *Pager) Settle() {
	if !p.ScrollEnabled() {
		return
	}
	nearest := int(p.offset/p.pageWidth + 0.5)
	if p.offset < 0 {
		nearest = 0
	}
	p.ScrollToPage(nearest, true)
}

// update advances the page snap tween by dt seconds.
func (p *Pager) update(dt float32) {
	if p.tween == nil {
		return
	}
	v, done := p.tween.Update(dt)
	p.offset = float64(v)
	if done {
		p.tween = nil
	}
}

func (p *Pager) setPage(page int) {
	if page == p.page {
		return
	}
	p.page = page
	if p.onChange != nil {
		p.onChange(page)
	}
}

func (p *Pager) requestRefresh(edge RefreshState) {
	if p.refreshing != RefreshNone {
		return
	}
	p.refreshing = edge
	if p.onRefresh != nil {
		p.onRefresh(edge)
	}
}

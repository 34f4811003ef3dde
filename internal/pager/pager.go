// Package pager windows a view into fixed-size batches for "show more" rendering.
package pager

import "github.com/haryoiro/golha/internal/structures"

// AppendBatch returns view[visible:end] with end = min(visible+batch, len(view))
// and the new visible count. Nothing remaining yields an empty slice.
func AppendBatch(view []*structures.Program, visible, batch int) ([]*structures.Program, int) {
	if visible < 0 {
		visible = 0
	}
	if batch <= 0 || visible >= len(view) {
		return nil, min(visible, len(view))
	}
	end := min(visible+batch, len(view))
	return view[visible:end], end
}

// Pager tracks how much of the current view has been rendered
type Pager struct {
	view      []*structures.Program
	visible   int
	batchSize int
}

// New creates a pager appending batchSize rows per batch
func New(batchSize int) *Pager {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Pager{batchSize: batchSize}
}

// Reset replaces the view and clears the visible count
func (p *Pager) Reset(view []*structures.Program) {
	p.view = view
	p.visible = 0
}

// AppendBatch materializes the next batch and returns it
func (p *Pager) AppendBatch() []*structures.Program {
	batch, visible := AppendBatch(p.view, p.visible, p.batchSize)
	p.visible = visible
	return batch
}

// EnsureVisible appends batches until index is rendered
func (p *Pager) EnsureVisible(index int) {
	if index < 0 || index >= len(p.view) {
		return
	}
	for p.visible <= index {
		p.AppendBatch()
	}
}

// HasMore reports whether rows remain beyond the visible window
func (p *Pager) HasMore() bool {
	return p.visible < len(p.view)
}

func (p *Pager) Visible() int {
	return p.visible
}

func (p *Pager) Len() int {
	return len(p.view)
}

// Rendered returns the rows materialized so far
func (p *Pager) Rendered() []*structures.Program {
	return p.view[:p.visible]
}

// View returns the whole view the pager windows over
func (p *Pager) View() []*structures.Program {
	return p.view
}

// Package pager models lightbox navigation over an ordered, already
// filtered item list: open on a clicked index, step with clamping at both
// ends, close on escape or overlay click.
package pager

const closed = -1

type Pager struct {
	length int
	index  int
}

func New(length int) Pager {
	if length < 0 {
		length = 0
	}
	return Pager{length: length, index: closed}
}

func (p *Pager) IsOpen() bool { return p.index != closed }

// Index is the current position, or -1 while closed.
func (p *Pager) Index() int { return p.index }

func (p *Pager) Len() int { return p.length }

// Open jumps to i, clamped into range. Opening an empty pager is a no-op.
func (p *Pager) Open(i int) {
	if p.length == 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i > p.length-1 {
		i = p.length - 1
	}
	p.index = i
}

func (p *Pager) Close() { p.index = closed }

// Next steps forward, stopping at the last item. No wraparound.
func (p *Pager) Next() {
	if !p.IsOpen() {
		return
	}
	if p.index < p.length-1 {
		p.index++
	}
}

// Prev steps backward, stopping at the first item.
func (p *Pager) Prev() {
	if !p.IsOpen() {
		return
	}
	if p.index > 0 {
		p.index--
	}
}

// SetItems replaces the underlying item count. The item under the cursor
// may no longer exist, so the pager closes rather than jump to an
// unrelated item.
func (p *Pager) SetItems(length int) {
	if length < 0 {
		length = 0
	}
	p.length = length
	p.index = closed
}

// HandleKey dispatches a keyboard event while the modal is open. A closed
// pager consumes nothing, so page-level shortcuts stay unaffected.
func (p *Pager) HandleKey(key string) bool {
	if !p.IsOpen() {
		return false
	}
	switch key {
	case "Escape":
		p.Close()
	case "ArrowLeft":
		p.Prev()
	case "ArrowRight":
		p.Next()
	default:
		return false
	}
	return true
}

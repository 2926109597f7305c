package invaders

// MaxBullets is the default bullet pool capacity.
const MaxBullets = 128

// BulletPool is a fixed-capacity arena of bullets with a live-count cursor.
// Slots [0, Len()) are live. Removal swaps the last live bullet into the
// freed slot, so order is not preserved.
type BulletPool struct {
	slots []Bullet
	live  int
}

// NewBulletPool creates an empty pool that holds at most capacity bullets.
func NewBulletPool(capacity int) *BulletPool {
	if capacity < 0 {
		capacity = 0
	}
	return &BulletPool{slots: make([]Bullet, capacity)}
}

// Len returns the number of live bullets.
func (p *BulletPool) Len() int {
	return p.live
}

// Cap returns the pool capacity.
func (p *BulletPool) Cap() int {
	return len(p.slots)
}

// Full reports whether a Spawn would be dropped.
func (p *BulletPool) Full() bool {
	return p.live >= len(p.slots)
}

// Spawn adds a bullet. It returns false and does nothing when the pool is full.
func (p *BulletPool) Spawn(b Bullet) bool {
	if p.Full() {
		return false
	}
	p.slots[p.live] = b
	p.live++
	return true
}

// Live returns the live bullets. The slice aliases the pool and is only
// valid until the next mutation.
func (p *BulletPool) Live() []Bullet {
	return p.slots[:p.live]
}

// Advance moves every live bullet by its Dir and removes those whose y
// leaves [minY, maxY). Returns the number removed.
func (p *BulletPool) Advance(minY, maxY int) int {
	removed := 0
	for i := 0; i < p.live; {
		p.slots[i].Y += p.slots[i].Dir
		if y := p.slots[i].Y; y >= maxY || y < minY {
			// The swapped-in bullet has not moved yet, so revisit slot i
			p.slots[i] = p.slots[p.live-1]
			p.live--
			removed++
			continue
		}
		i++
	}
	return removed
}

// Clear removes all bullets.
func (p *BulletPool) Clear() {
	p.live = 0
}

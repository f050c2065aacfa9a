package record

import (
	"sync"
	"time"
)

// DateLayout matches the "Www Mmm dd yyyy" form used for the date field.
const DateLayout = "Mon Jan 02 2006"

// IDGenerator hands out epoch-millisecond identifiers. Two calls within the
// same millisecond still get distinct values: the second one is bumped past
// the last issued id.
type IDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

// Next возвращает следующий идентификатор.
func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

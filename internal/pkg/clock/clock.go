package clock

import (
	"sync"
	"time"
)

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Zoned reports the wrapped clock's time in a fixed location.
type Zoned struct {
	base Clock
	loc  *time.Location
}

func NewZoned(base Clock, loc *time.Location) *Zoned {
	return &Zoned{base: base, loc: loc}
}

func (z *Zoned) Now() time.Time {
	return z.base.Now().In(z.loc)
}

func (z *Zoned) Location() *time.Location {
	return z.loc
}

type MockClock struct {
	mu          sync.Mutex
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentTime
}

func (c *MockClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentTime = c.currentTime.Add(d)
}

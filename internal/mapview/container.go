package mapview

import (
	"errors"
	"sync"
)

var (
	ErrContainerInUse = errors.New("container_in_use")
	ErrSurfaceClosed  = errors.New("surface_closed")
)

// Container is the host element a map is bound to. At most one live map may
// be bound at a time.
type Container struct {
	ID string

	mu sync.Mutex
	m  *Map
}

func NewContainer(id string) *Container {
	return &Container{ID: id}
}

// Instances is the number of live maps bound to the container (0 or 1).
func (c *Container) Instances() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.m == nil {
		return 0
	}
	return 1
}

func (c *Container) bind(m *Map) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.m != nil && c.m != m {
		return ErrContainerInUse
	}
	c.m = m
	return nil
}

func (c *Container) release(m *Map) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.m == m {
		c.m = nil
	}
}

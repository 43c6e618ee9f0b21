package queue

import (
	"sync"
)

// exclusivityController hands out one named lock per mutual-exclusion class.
// Callers pass classes pre-sorted; acquiring in sorted order and releasing in
// reverse keeps lock ordering consistent across tasks sharing classes.
type exclusivityController struct {
	mu      sync.Mutex
	classes map[string]*sync.Mutex
}

func newExclusivityController() *exclusivityController {
	return &exclusivityController{classes: make(map[string]*sync.Mutex)}
}

func (c *exclusivityController) lockFor(class string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock, ok := c.classes[class]
	if !ok {
		lock = &sync.Mutex{}
		c.classes[class] = lock
	}
	return lock
}

func (c *exclusivityController) acquire(classes []string) {
	for _, class := range classes {
		c.lockFor(class).Lock()
	}
}

func (c *exclusivityController) release(classes []string) {
	for i := len(classes) - 1; i >= 0; i-- {
		c.lockFor(classes[i]).Unlock()
	}
}

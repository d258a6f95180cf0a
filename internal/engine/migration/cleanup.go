package migration

import (
	"go.trai.ch/reroot/internal/core/domain"
	"go.trai.ch/reroot/internal/core/ports"
)

// Cleanup mounts filesystems and remembers them for release in reverse order.
type Cleanup struct {
	mounter ports.Mounter
	logger  ports.Logger
	targets []string
}

// NewCleanup creates an empty Cleanup.
func NewCleanup(mounter ports.Mounter, logger ports.Logger) *Cleanup {
	return &Cleanup{mounter: mounter, logger: logger}
}

// Mount attaches m and registers its target for release. A failed mount is not registered.
func (c *Cleanup) Mount(m domain.Mount) error {
	if err := c.mounter.Mount(m); err != nil {
		return err
	}
	c.targets = append(c.targets, m.Target)
	return nil
}

// MountAll attaches each mount in order and stops at the first failure.
func (c *Cleanup) MountAll(mounts []domain.Mount) error {
	for _, m := range mounts {
		if err := c.Mount(m); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of registered mounts.
func (c *Cleanup) Len() int {
	return len(c.targets)
}

// Release unmounts every registered target, most recent first. A failed unmount is logged
// and the remaining targets are still released. The stack is empty afterwards.
func (c *Cleanup) Release() {
	for i := len(c.targets) - 1; i >= 0; i-- {
		if err := c.mounter.Unmount(c.targets[i]); err != nil {
			c.logger.Error(err)
		}
	}
	c.targets = nil
}

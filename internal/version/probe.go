package version

import "sync"

// PotionNameProbe resolves, once per process, whether the current engine
// exposes a potion display-name accessor. Engines below 1.21.4 carry one
// accessor pair and newer engines a renamed one; both conventions back the
// same stored field, so the probe only gates availability. The probe is
// idempotent: a concurrent first use does redundant work at worst, so the
// result needs no lock beyond Once.
type PotionNameProbe struct {
	versions *Service

	once    sync.Once
	enabled bool
}

// NewPotionNameProbe creates a probe backed by the given version service.
func NewPotionNameProbe(versions *Service) *PotionNameProbe {
	return &PotionNameProbe{versions: versions}
}

// Available reports whether the potion display-name field is supported.
// When the engine version is unknown neither accessor convention can be
// resolved, so the feature stays disabled for the remainder of the process;
// there are no retries.
func (p *PotionNameProbe) Available() bool {
	p.once.Do(func() {
		_, known := p.versions.Current()
		p.enabled = known
	})
	return p.enabled
}

package config

// Features holds the tenant-scoped feature gates for the two orchestration
// surfaces. Both the graph validator (compile time) and the kernel services
// (runtime) consult the same gate, so a disabled surface is unreachable
// end to end.
type Features struct {
	// GraphSpecV2 gates acceptance of spec_version="2.0" graphs.
	GraphSpecV2 Surface `yaml:"graph_spec_v2"`

	// RuntimeOrchestration gates the spawn/join/cancel/replan primitives.
	RuntimeOrchestration Surface `yaml:"runtime_orchestration"`
}

// Surface is one independently gated feature surface.
type Surface struct {
	Enabled bool `yaml:"enabled"`

	// TenantAllowlist, when non-empty, restricts the surface to the listed
	// tenants even if Enabled is true.
	TenantAllowlist []string `yaml:"tenant_allowlist"`
}

// EnabledForTenant reports whether the surface is available to the tenant.
func (s Surface) EnabledForTenant(tenantID string) bool {
	if !s.Enabled {
		return false
	}
	if len(s.TenantAllowlist) == 0 {
		return true
	}
	for _, t := range s.TenantAllowlist {
		if t == tenantID {
			return true
		}
	}
	return false
}

// DefaultFeatures returns the built-in feature gate defaults.
// Both surfaces ship enabled for all tenants; deployments restrict them
// via the config file.
func DefaultFeatures() *Features {
	return &Features{
		GraphSpecV2:          Surface{Enabled: true},
		RuntimeOrchestration: Surface{Enabled: true},
	}
}

package model

// GenerationResult reports the outcome of one generation run. It is
// immutable once returned.
type GenerationResult struct {
	// Success indicates whether the run completed without a fatal error.
	Success bool
	// Files lists the relative paths written, in write order. On failure
	// it still lists everything written before the failure; generation is
	// not transactional and never rolls back.
	Files []string
	// Warnings holds advisory messages accumulated during the run.
	Warnings []string
	// Error is the failure message when Success is false.
	Error string
	// NextSteps lists suggested shell commands for the user to run next.
	NextSteps []string
}

// Descriptor is the immutable metadata a generator declares about itself.
type Descriptor struct {
	// ID uniquely identifies the generator in the registry.
	ID string `json:"id"`
	// Framework is the framework tag the generator serves.
	Framework Framework `json:"framework"`
	// Name is the human-readable generator name.
	Name string `json:"name"`
	// Description describes what the generator produces.
	Description string `json:"description"`
	// Version is the generator version.
	Version string `json:"version"`
	// PackageTypes lists the package types the generator supports.
	PackageTypes []PackageType `json:"package_types"`
	// RuntimeTargets lists the runtime targets the generator supports.
	RuntimeTargets []RuntimeTarget `json:"runtime_targets"`
	// RecommendedBuildTool is the build tool the generator suggests.
	RecommendedBuildTool BuildTool `json:"recommended_build_tool"`
}

// SupportsPackageType reports whether t is in the descriptor's supported set.
func (d Descriptor) SupportsPackageType(t PackageType) bool {
	for _, pt := range d.PackageTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// SupportsRuntimeTarget reports whether t is in the descriptor's supported set.
func (d Descriptor) SupportsRuntimeTarget(t RuntimeTarget) bool {
	for _, rt := range d.RuntimeTargets {
		if rt == t {
			return true
		}
	}
	return false
}

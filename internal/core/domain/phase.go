package domain

// Phase is the role the current process plays in the migration.
type Phase int

const (
	// PhaseUnknown means no guard matched; the operator takes over.
	PhaseUnknown Phase = iota
	// PhaseBootstrap stages the new root, installs this binary as init and reboots.
	PhaseBootstrap
	// PhaseInitPassthrough hands a non-PID-1 invocation of init to the original init.
	PhaseInitPassthrough
	// PhaseBecomeInit runs as PID 1 on the old root and changes root into the staged system.
	PhaseBecomeInit
	// PhaseChrootFinalize runs as PID 1 inside the staged root and merges it into the old root.
	PhaseChrootFinalize
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	switch p {
	case PhaseBootstrap:
		return "bootstrap"
	case PhaseInitPassthrough:
		return "init-passthrough"
	case PhaseBecomeInit:
		return "become-init"
	case PhaseChrootFinalize:
		return "chroot-finalize"
	default:
		return "unknown"
	}
}

// Sentinels records which of the filesystem markers that encode progress exist.
type Sentinels struct {
	// OriginalInit is true when the original init has been saved under Layout.OriginalInitPath.
	OriginalInit bool

	// StagingRoot is true when Layout.StagingRoot exists.
	StagingRoot bool
}

// Observables are the only inputs that survive the reboot.
type Observables struct {
	// IsPID1 is true when the process is the system's first process.
	IsPID1 bool

	// SelfPath is the canonical (absolute, symlink-resolved) path of the running binary.
	SelfPath string

	// Sentinels are the markers found on the filesystem.
	Sentinels Sentinels
}

// DeriveState selects the phase for the given observables.
// It is a pure function: the same observables always select the same phase.
func DeriveState(obs Observables, layout Layout) Phase {
	isInit := obs.SelfPath == layout.InitPath

	switch {
	case !obs.IsPID1 && !isInit:
		return PhaseBootstrap
	case !obs.IsPID1 && isInit && obs.Sentinels.OriginalInit:
		return PhaseInitPassthrough
	case obs.IsPID1 && isInit && obs.Sentinels.OriginalInit && obs.Sentinels.StagingRoot:
		return PhaseBecomeInit
	case obs.IsPID1 && obs.SelfPath == layout.SelfCopyPath():
		return PhaseChrootFinalize
	default:
		return PhaseUnknown
	}
}

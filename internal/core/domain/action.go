package domain

// Action is the process replacement a phase ends with.
// Phases return it as a value; only the process adapter performs it.
type Action struct {
	// Path is the executable to replace the current process with.
	Path string

	// Args is the full argument vector, including argv[0].
	Args []string

	// Root, when set, is changed into before Path is executed. Path is then resolved inside it.
	Root string

	// Reason is a short description for logs.
	Reason string
}

// ExecReplace builds an Action that replaces the process with path. When args is empty,
// argv[0] defaults to path.
func ExecReplace(path string, args ...string) Action {
	if len(args) == 0 {
		args = []string{path}
	}
	return Action{Path: path, Args: args}
}

// InRoot returns a copy of the action that changes root before executing.
func (a Action) InRoot(root string) Action {
	a.Root = root
	return a
}

// Because returns a copy of the action with a reason attached.
func (a Action) Because(reason string) Action {
	a.Reason = reason
	return a
}

// Command is an external program invocation.
type Command struct {
	// Name is the program to run. Inside a Root it must be an absolute path.
	Name string

	// Args are the arguments after the program name.
	Args []string

	// Root, when set, is the directory the command is chrooted into.
	Root string

	// Dir is the working directory (relative to Root if set).
	Dir string

	// Env holds KEY=VALUE overrides applied on top of the current environment.
	Env []string
}

// Mount describes a filesystem to attach.
type Mount struct {
	// Source is the device, pseudo-filesystem name, or directory to bind.
	Source string

	// Target is the mount point.
	Target string

	// FSType is the filesystem type; empty for bind mounts.
	FSType string

	// Bind makes the mount a bind of the directory Source.
	Bind bool

	// Recursive extends a bind to every mount below Source.
	Recursive bool
}

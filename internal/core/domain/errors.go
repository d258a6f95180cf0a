package domain

import "go.trai.ch/zerr"

var (
	// ErrPackageNotFound is returned when a package name matches neither a primary name nor a provides entry.
	ErrPackageNotFound = zerr.New("package not found in index")

	// ErrIndexNotFound is returned when the unpacked repository index directory does not exist.
	ErrIndexNotFound = zerr.New("repository index not found")

	// ErrIndexReadFailed is returned when an index description file cannot be read.
	ErrIndexReadFailed = zerr.New("failed to read index entry")

	// ErrInvalidRecord is returned when an index entry lacks a name, filename or checksum.
	ErrInvalidRecord = zerr.New("invalid package record")

	// ErrFetchFailed is returned when downloading an artifact fails.
	ErrFetchFailed = zerr.New("failed to fetch artifact")

	// ErrChecksumMismatch is returned when an artifact still fails verification after it was fetched.
	ErrChecksumMismatch = zerr.New("artifact checksum mismatch")

	// ErrHashFailed is returned when an artifact cannot be read for hashing.
	ErrHashFailed = zerr.New("failed to hash artifact")

	// ErrCacheCreateFailed is returned when the artifact cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create artifact cache directory")

	// ErrExtractFailed is returned when unpacking an archive into a directory fails.
	ErrExtractFailed = zerr.New("failed to extract archive")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrInstallFailed is returned when the package manager fails inside the staging root.
	ErrInstallFailed = zerr.New("package manager transaction failed")

	// ErrMountFailed is returned when a mount or remount fails.
	ErrMountFailed = zerr.New("mount failed")

	// ErrUnmountFailed is returned when an unmount fails.
	ErrUnmountFailed = zerr.New("unmount failed")

	// ErrExecFailed is returned when replacing the process image fails.
	ErrExecFailed = zerr.New("failed to replace process image")

	// ErrNotRoot is returned when the migration is started without root privileges.
	ErrNotRoot = zerr.New("must be run as root")

	// ErrUnsupportedOS is returned when the running distribution is not a supported source system.
	ErrUnsupportedOS = zerr.New("unsupported operating system")

	// ErrUnsupportedArchitecture is returned when the machine architecture does not match the repository.
	ErrUnsupportedArchitecture = zerr.New("unsupported architecture")

	// ErrSelfPathUnresolved is returned when the canonical path of the running binary cannot be determined.
	ErrSelfPathUnresolved = zerr.New("failed to resolve path of running binary")

	// ErrInitInstallFailed is returned when the binary cannot be installed as or restored from init.
	ErrInitInstallFailed = zerr.New("failed to install init")

	// ErrStagingConfigFailed is returned when configuration files cannot be written into the staging root.
	ErrStagingConfigFailed = zerr.New("failed to configure staging root")

	// ErrRelocateFailed is returned when moving the old root's entries into the holding directory fails.
	ErrRelocateFailed = zerr.New("failed to relocate old root")

	// ErrHoldingExists is returned when the holding directory is already present.
	ErrHoldingExists = zerr.New("holding directory already exists")

	// ErrLinkFailed is returned when hard-linking the staged tree into the old root fails.
	ErrLinkFailed = zerr.New("failed to link staged root")

	// ErrUnknownPhase is returned when a phase handler is asked to run an unrecognised phase.
	ErrUnknownPhase = zerr.New("unknown migration phase")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value fails validation.
	ErrInvalidConfig = zerr.New("invalid configuration")
)

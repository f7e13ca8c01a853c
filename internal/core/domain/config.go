package domain

// Config holds the run configuration for the patcher.
type Config struct {
	// InputDir is the root of the tree to scan.
	InputDir string
	// OutputDir is the root the mutated tree is written to.
	OutputDir string
	// AutoClean removes and recreates OutputDir before a run.
	AutoClean bool
	// Ignores are directory or file name patterns excluded from enumeration.
	Ignores []string
	// Patches are the patch source files, in registration order. When empty,
	// *.lily files under InputDir are discovered instead.
	Patches []string
}

// DefaultConfig returns the configuration used when no config file is found.
func DefaultConfig() Config {
	return Config{
		InputDir:  ".",
		OutputDir: "out",
		AutoClean: true,
	}
}

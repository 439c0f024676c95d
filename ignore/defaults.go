package ignore

// DefaultExcludePatterns contains patterns that are always excluded from a
// scan: compiled-artifact caches, virtual environments, dependency and
// build output directories, and packaging metadata. They cannot be turned
// off; user patterns and .gitignore rules only add to them.
var DefaultExcludePatterns = []string{
	// Compiled artifacts
	"*.pyc",
	"__pycache__",
	"__pycache__/*",

	// Version control
	".git",
	".git/*",

	// Virtual environments
	".venv",
	".venv/*",
	"venv",
	"venv/*",

	// Dependencies
	"node_modules",
	"node_modules/*",

	// Build output
	"dist",
	"dist/*",
	"build",
	"build/*",

	// Packaging metadata
	"*.egg-info",
}

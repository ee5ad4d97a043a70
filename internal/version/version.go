// ABOUTME: Version and product constants
// ABOUTME: Single source of truth for identification strings
package version

const (
	// Version is the audiocore release version
	Version = "0.1.0"

	// Product is the product name reported by the CLI
	Product = "AudioCore"

	// Manufacturer identifies the project
	Manufacturer = "MusicCreate"
)

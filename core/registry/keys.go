package registry

// Core keys for GlobalRegistry.
const (
	// Extension registries (cmd, schema), stored in GlobalRegistry
	KeyRegistryCmd    = "registry:cmd"
	KeyRegistrySchema = "registry:schema"
)

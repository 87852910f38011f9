package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"storefront.GO/core/registry"
)

func registered() []*cobra.Command {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCmd); ok && v != nil {
		return v.([]*cobra.Command)
	}
	return nil
}

// Register queues an extension command for Apply. Call from init().
// Panics once the registry is locked, or when the name is already taken
// by a built-in or another extension.
func Register(c *cobra.Command) {
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCmd) {
		panic("cmd/registry: locked (register only during init before Apply)")
	}
	name := c.Name()
	for _, b := range rootCmd.Commands() {
		if b.Name() == name {
			panic(fmt.Sprintf("cmd/registry: %q shadows a built-in command", name))
		}
	}
	list := registered()
	for _, e := range list {
		if e.Name() == name {
			panic(fmt.Sprintf("cmd/registry: duplicate command %q", name))
		}
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCmd, append(list, c))
}

// Apply attaches queued commands to root and locks the registry.
// Commands already attached are skipped.
func Apply() {
	for _, c := range registered() {
		if c.Parent() != rootCmd {
			rootCmd.AddCommand(c)
		}
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryCmd)
}

// Package ports defines the interfaces between the CLI adapter and the
// platform layer. Commands depend on these ports so tests can substitute
// mocks for the configuration manager and health registry.
package ports

// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - PromptStore: user-editable generation templates with hot reload
//   - LoadTaxonomy: TOML taxonomy overrides for the analysis pipeline
package file

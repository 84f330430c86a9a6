// Package config loads and validates silk's TOML configuration.
//
// The file lives at ~/.config/silk/config.toml by default and layers over
// the built-in defaults; a missing file simply means defaults. The loaded
// configuration is published through SetGlobal/Global for ambient access.
package config

// Package config loads and validates Concord's TOML configuration.
//
// Configuration resolves from an explicit --config path, then
// ~/.config/concord/config.toml, then a concord.toml in the working
// directory. A missing file is not an error; defaults apply.
package config

// Package config loads schanno settings.
//
// Sources are layered, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/schanno/config.toml
//  3. the project file, .schanno.toml in the working directory
//  4. SCHANNO_* environment variables (SCHANNO_FIX_STRATEGY=next_available)
//  5. explicit overrides, usually from command-line flags
package config

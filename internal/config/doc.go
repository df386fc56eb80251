// Package config loads application configuration and resolves file paths.
//
// Configuration comes from two sources, merged with environment taking
// precedence:
//
//  1. Environment variables with the DA_ prefix (DA_LOGGING_LEVEL,
//     DA_PATHS_BASE_DIR, DA_ANALYZE_IQR_MULTIPLIER, ...)
//  2. An optional config.yaml next to the executable (or at DA_CONFIG_FILE)
//
// The Paths type is the single source of truth for file locations: dataset
// input directory, cleaned-dataset output, chart output, and logs. All
// relative paths resolve against the executable directory so the tool behaves
// the same regardless of the working directory it is launched from.
package config

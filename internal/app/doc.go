// Package app wires the interactive analyzer session: dataset loading,
// preprocessing, optional operations, statistics reporting and chart
// rendering, driven by console prompts. The Session type takes its input and
// output streams as parameters so full runs can be scripted in tests.
package app

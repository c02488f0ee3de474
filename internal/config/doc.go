// Package config provides configuration loading, merging, and validation
// for the form demo.
//
// Configuration is assembled from multiple sources. Each field takes its value
// from the first source that sets it, in this priority order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetFormDemoConfig].
package config

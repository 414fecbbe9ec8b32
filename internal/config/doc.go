// Package config provides configuration loading, merging, and validation
// facilities for the admin console and the admin gateway.
//
// Configuration is assembled from multiple sources. A field keeps the value
// of the first source that sets it to a non-zero value:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetServerConfig] for the gateway and
// [GetClientConfig] for the interactive console.
package config

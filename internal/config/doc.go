// Package config defines the format-agnostic model of loaded steps, along
// with the Loader interface for reading them from a concrete file format.
//
// The HCL implementation lives in the hcl_adapter package.
package config

// Package stepobject holds the host-side view of a single workflow step:
// its files, parameters, resources, log and config, as handed to a script.
package stepobject

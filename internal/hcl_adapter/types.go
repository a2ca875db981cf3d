package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes a step file. Step blocks are the only top-level content
// allowed; anything else is reported by the decoder.
type fileRoot struct {
	Steps []*Step `hcl:"step,block"`
}

// Step is the HCL schema of a step block. Every attribute is optional and
// kept as an expression so it can be read without losing key order.
type Step struct {
	Rule           string         `hcl:"rule,label"`
	Input          hcl.Expression `hcl:"input,optional"`
	Output         hcl.Expression `hcl:"output,optional"`
	Params         hcl.Expression `hcl:"params,optional"`
	Wildcards      hcl.Expression `hcl:"wildcards,optional"`
	Threads        hcl.Expression `hcl:"threads,optional"`
	Resources      hcl.Expression `hcl:"resources,optional"`
	Log            hcl.Expression `hcl:"log,optional"`
	Config         hcl.Expression `hcl:"config,optional"`
	ConfigFile     hcl.Expression `hcl:"configfile,optional"`
	BenchIteration hcl.Expression `hcl:"bench_iteration,optional"`
	ScriptDir      hcl.Expression `hcl:"scriptdir,optional"`
}

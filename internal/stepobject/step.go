package stepobject

import (
	"iter"

	"github.com/specialistvlad/stepliteral/internal/value"
)

// Attribute names, in the order Attributes yields them.
const (
	AttrInput          = "input"
	AttrOutput         = "output"
	AttrParams         = "params"
	AttrWildcards      = "wildcards"
	AttrThreads        = "threads"
	AttrResources      = "resources"
	AttrLog            = "log"
	AttrConfig         = "config"
	AttrRule           = "rule"
	AttrBenchIteration = "bench_iteration"
	AttrScriptDir      = "scriptdir"
)

// NamedListAttrs are the attributes holding named lists.
var NamedListAttrs = []string{AttrInput, AttrOutput, AttrParams, AttrWildcards, AttrResources, AttrLog}

// DictAttrs are the attributes holding plain mappings.
var DictAttrs = []string{AttrConfig}

// Parts carries the raw pieces of a step before construction.
type Parts struct {
	Input          *value.NamedList
	Output         *value.NamedList
	Params         *value.NamedList
	Wildcards      *value.NamedList
	Threads        int
	Resources      *value.NamedList
	Log            *value.NamedList
	Config         *value.Mapping
	Rule           string
	BenchIteration *int
	ScriptDir      string
}

// Step is the host object a script sees. It is read-only after New.
type Step struct {
	input          *value.NamedList
	output         *value.NamedList
	params         *value.NamedList
	wildcards      *value.NamedList
	threads        int
	resources      *value.NamedList
	log            *value.NamedList
	config         *value.Mapping
	rule           string
	benchIteration *int
	scriptDir      string
}

// New builds a Step. Input, output and log are flattened to plain strings
// so that path-like entries never reach an encoder.
func New(p Parts) *Step {
	return &Step{
		input:          plain(p.Input),
		output:         plain(p.Output),
		params:         orEmpty(p.Params),
		wildcards:      orEmpty(p.Wildcards),
		threads:        p.Threads,
		resources:      orEmpty(p.Resources),
		log:            plain(p.Log),
		config:         orEmptyMapping(p.Config),
		rule:           p.Rule,
		benchIteration: p.BenchIteration,
		scriptDir:      p.ScriptDir,
	}
}

func plain(nl *value.NamedList) *value.NamedList {
	return orEmpty(nl).PlainStrings()
}

func orEmpty(nl *value.NamedList) *value.NamedList {
	if nl == nil {
		return value.NewNamedList()
	}
	return nl
}

func orEmptyMapping(m *value.Mapping) *value.Mapping {
	if m == nil {
		return value.NewMapping()
	}
	return m
}

func (s *Step) Input() *value.NamedList     { return s.input }
func (s *Step) Output() *value.NamedList    { return s.output }
func (s *Step) Params() *value.NamedList    { return s.params }
func (s *Step) Wildcards() *value.NamedList { return s.wildcards }
func (s *Step) Threads() int                { return s.threads }
func (s *Step) Resources() *value.NamedList { return s.resources }
func (s *Step) Log() *value.NamedList       { return s.log }
func (s *Step) Config() *value.Mapping      { return s.config }
func (s *Step) Rule() string                { return s.rule }

// Attributes yields every attribute in declaration order. A missing bench
// iteration or script directory is null.
func (s *Step) Attributes() iter.Seq2[string, value.Value] {
	return func(yield func(string, value.Value) bool) {
		bench := value.Null()
		if s.benchIteration != nil {
			bench = value.Int(int64(*s.benchIteration))
		}
		scriptDir := value.Null()
		if s.scriptDir != "" {
			scriptDir = value.Path(s.scriptDir)
		}
		attrs := []value.Entry{
			{Key: AttrInput, Value: value.List(s.input)},
			{Key: AttrOutput, Value: value.List(s.output)},
			{Key: AttrParams, Value: value.List(s.params)},
			{Key: AttrWildcards, Value: value.List(s.wildcards)},
			{Key: AttrThreads, Value: value.Int(int64(s.threads))},
			{Key: AttrResources, Value: value.List(s.resources)},
			{Key: AttrLog, Value: value.List(s.log)},
			{Key: AttrConfig, Value: value.Map(s.config)},
			{Key: AttrRule, Value: value.String(s.rule)},
			{Key: AttrBenchIteration, Value: bench},
			{Key: AttrScriptDir, Value: scriptDir},
		}
		for _, a := range attrs {
			if !yield(a.Key, a.Value) {
				return
			}
		}
	}
}

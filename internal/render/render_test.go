package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/stepliteral/internal/stepobject"
	"github.com/specialistvlad/stepliteral/internal/value"
	"github.com/stretchr/testify/require"
)

func exampleStep(t *testing.T) *stepobject.Step {
	t.Helper()
	input := value.NewNamedList(value.Path("a.txt"))
	require.NoError(t, input.AppendNamed("reads", value.Path("b.txt")))
	cfg := value.NewMapping()
	cfg.Set("samples", value.Strings("A", "B"))

	return stepobject.New(stepobject.Parts{
		Input:   input,
		Output:  value.NewNamedList(value.String("out.txt")),
		Threads: 2,
		Log:     value.NewNamedList(value.String("test.log")),
		Config:  cfg,
		Rule:    "map",
	})
}

func TestRender_Bash(t *testing.T) {
	got, err := Render(Bash, exampleStep(t), Options{})
	require.NoError(t, err)

	want := `declare -A snakemake_input=( [0]="a.txt" [1]="b.txt" [reads]="b.txt" )
declare -A snakemake_output=( [0]="out.txt" )
declare -A snakemake_params=( )
declare -A snakemake_wildcards=( )
declare -A snakemake_resources=( )
declare -A snakemake_log=( [0]="test.log" )
declare -A snakemake_config=( [samples]="['A', 'B']" )
declare -A snakemake=( [threads]="2" [rule]="map" [bench_iteration]="None" [scriptdir]="None" )`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bash output mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_R(t *testing.T) {
	got, err := Render(R, exampleStep(t), Options{Prefix: "smk"})
	require.NoError(t, err)

	want := `smk_input <- list("a.txt", "b.txt", "reads" = "b.txt")
smk_output <- list("out.txt")
smk_params <- list()
smk_wildcards <- list()
smk_threads <- 2
smk_resources <- list()
smk_log <- list("test.log")
smk_config <- list("samples" = c("A", "B"))
smk_rule <- "map"
smk_bench_iteration <- NULL
smk_scriptdir <- NULL`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("R output mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Julia(t *testing.T) {
	got, err := Render(Julia, exampleStep(t), Options{})
	require.NoError(t, err)

	want := `snakemake_input = Dict(1 => "a.txt", 2 => "b.txt", "reads" => "b.txt")
snakemake_output = Dict(1 => "out.txt")
snakemake_params = Dict()
snakemake_wildcards = Dict()
snakemake_threads = 2
snakemake_resources = Dict()
snakemake_log = Dict(1 => "test.log")
snakemake_config = Dict("samples" => ["A", "B"])
snakemake_rule = "map"
snakemake_bench_iteration = nothing
snakemake_scriptdir = nothing`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Julia output mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_UnsupportedValueFails(t *testing.T) {
	params := value.NewNamedList(value.Foreign(struct{}{}))
	step := stepobject.New(stepobject.Parts{Params: params, Rule: "bad"})

	_, err := Render(R, step, Options{})
	require.ErrorIs(t, err, value.ErrUnsupportedValue)
	require.ErrorContains(t, err, `attribute "params"`)

	_, err = Render(Julia, step, Options{Coercer: value.CoerceNative})
	require.ErrorIs(t, err, value.ErrUnsupportedValue)

	got, err := Render(Bash, step, Options{Coercer: value.Chain(value.CoerceNative, value.CoerceGo)})
	require.ErrorIs(t, err, value.ErrUnsupportedValue)
	require.ErrorContains(t, err, `attribute "params"`)
	require.Empty(t, got)
}

func TestParseTarget(t *testing.T) {
	for _, name := range []string{"bash", "R", "Julia"} {
		_, err := ParseTarget(name)
		require.NoError(t, err, name)
	}
	_, err := ParseTarget("python")
	require.ErrorContains(t, err, `unknown target "python"`)
}

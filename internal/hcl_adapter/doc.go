// Package hcl_adapter loads step definitions written in HCL.
//
// A step file holds one or more step blocks, labelled with the rule name:
//
//	step "bwa_map" {
//	  input   = ["data/genome.fa", { reads = "data/samples/A.fastq" }]
//	  output  = { bam = "mapped/A.bam" }
//	  params  = { rg = "@RG\tID:A" }
//	  threads = 8
//	  log     = ["logs/bwa_map/A.log"]
//	  configfile = "config.yaml"
//	}
//
// Tuple and object constructors are read syntactically so that keys keep
// their source order; other expressions are evaluated and converted from
// cty, whose objects iterate in key order.
package hcl_adapter

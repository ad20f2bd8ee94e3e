// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for parsing dialect files, decoding their
// blocks and converting cty values into the Go types of the config model.
//
// A dialect file looks like:
//
//	dialect "tlc" {
//	  header_lines    = 4
//	  marker          = "//<processed>"
//	  edge_predicate  = "fixed-offset"
//	  label_separator = " \n"
//	  edge_defaults   = { color = "black", fontcolor = "black" }
//	}
package hcl

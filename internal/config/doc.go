// Package config defines the format-agnostic description of an input
// dialect, along with the Loader interface for reading it from a file.
//
// A Dialect captures everything that varies between producers of graph
// text: the length of the preamble, the idempotency marker line, how edge
// lines are recognised and what unlabeled edges default to. Concrete
// loaders, such as the HCL one, live in separate packages.
package config

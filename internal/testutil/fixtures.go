package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SampleGraph is a small checker output: three states and two transitions,
// with the four-line preamble the checker always writes.
const SampleGraph = `strict digraph DiskGraph {
nodesep=0.35;
subgraph cluster_graph {
color="white";
1 [label="/\\ action = \"START\"\n/\\ count = 0",style = filled]
2 [label="/\\ action = \"DONE\"\n/\\ count = 0"]
3 [label="/\\ action = \"DONE\"\n/\\ count = 1"]
1 -> 2 [label="",color="black",fontcolor="black"];
2 -> 3 [label="",color="black",fontcolor="black"];
}
}
`

// SampleGraphLabeled is SampleGraph after every edge has been labeled.
const SampleGraphLabeled = `strict digraph DiskGraph {
nodesep=0.35;
subgraph cluster_graph {
color="white";
1 [label="/\\ action = \"START\"\n/\\ count = 0",style = filled]
2 [label="/\\ action = \"DONE\"\n/\\ count = 0"]
3 [label="/\\ action = \"DONE\"\n/\\ count = 1"]
1 -> 2 [label="action",color="black",fontcolor="black"];
2 -> 3 [label="count",color="black",fontcolor="black"];
}
}
`

// QuoteLabelA and QuoteLabelB are two states of a quote-execution model
// that differ only in executedQuotes and incomingExecReqs.
const (
	QuoteLabelA = `/\\ incomingWitnesses = {[id |-> 0, qid |-> 1]}\n/\\ quotes = <<[id |-> 1]>>\n/\\ expiredQuotes = {}\n/\\ depositedWitnesses = {}\n/\\ action = \"START\"\n/\\ witnesses = <<>>\n/\\ refundedWitnesses = {}\n/\\ autoswapEnabledForQuote = <<{FALSE, TRUE}>>\n/\\ executedQuotes = {}\n/\\ incomingQuotes = {}\n/\\ incomingExecReqs = {[id |-> 0, qid |-> 1]}`
	QuoteLabelB = `/\\ incomingWitnesses = {[id |-> 0, qid |-> 1]}\n/\\ quotes = <<[id |-> 1]>>\n/\\ expiredQuotes = {}\n/\\ depositedWitnesses = {}\n/\\ action = \"START\"\n/\\ witnesses = <<>>\n/\\ refundedWitnesses = {}\n/\\ autoswapEnabledForQuote = <<{FALSE, TRUE}>>\n/\\ executedQuotes = {[qid |-> 1]}\n/\\ incomingQuotes = {}\n/\\ incomingExecReqs = {}`
)

// WriteFile writes content below dir and returns the full path. Parent
// directories are created as needed.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ReadFile returns the content of path as a string.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

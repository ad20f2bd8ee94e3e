/*
Package dot reads the state-graph text emitted by model checkers in the
Graphviz dot dialect and turns it into an in-memory Graph.

The input is line oriented. After a fixed preamble every line is one of:

	{ or }                                          structural, skipped
	<id> -> <id> [label="",color="black",...];      edge
	<id> [label="/\\ x = 1\n/\\ y = 2",...];        node

This is deliberately not a dot grammar. Attribute values are pulled out with
Property, which understands a single level of backslash-quote escaping, and
edge lines are recognised by an EdgePredicate. The default predicate
(FixedOffsetArrow) only matches the exact "<id> -> <id>" spacing emitted by
the checker, so hand-edited files may need the AnyOffsetArrow predicate.

Node labels are split into ordered Assignments by Decompose. The values are
kept as raw text, including quotes and escapes, since comparisons between
states are purely textual.
*/
package dot

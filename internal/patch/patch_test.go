package patch

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/dotlabel/internal/dot"
	"github.com/vk/dotlabel/internal/testutil"
)

func TestApply_SampleGraph(t *testing.T) {
	links := []dot.Link{
		{From: "1", To: "2", Label: "action"},
		{From: "2", To: "3", Label: "count"},
	}

	r := Apply(context.Background(), testutil.SampleGraph, links)

	assert.Equal(t, 2, r.Patched)
	assert.True(t, r.Changed())
	assert.Equal(t, testutil.SampleGraphLabeled, r.Text())
}

func TestApply_PreservesUntouchedLines(t *testing.T) {
	text := "head\n  odd   spacing\t\n1 -> 2 [label=\"\",color=\"red\"];\r\ntrailing"
	r := Apply(context.Background(), text, []dot.Link{{From: "1", To: "2", Label: "x"}})

	got := strings.Split(r.Text(), "\n")
	want := strings.Split(text, "\n")
	require.Len(t, got, len(want))

	assert.Equal(t, want[0], got[0])
	assert.Equal(t, want[1], got[1])
	assert.Equal(t, "1 -> 2 [label=\"x\",color=\"red\"];\r", got[2])
	assert.Equal(t, want[3], got[3])
}

func TestApply_ExistingLabelIsNotOverwritten(t *testing.T) {
	text := `1 -> 2 [label="kept",color="black"];`
	r := Apply(context.Background(), text, []dot.Link{{From: "1", To: "2", Label: "new"}})

	assert.Equal(t, 0, r.Patched)
	assert.False(t, r.Changed())
	assert.Equal(t, text, r.Text())
}

func TestApply_SecondRunIsNoOp(t *testing.T) {
	links := []dot.Link{{From: "1", To: "2", Label: "action"}}

	first := Apply(context.Background(), testutil.SampleGraph, links).Text()
	second := Apply(context.Background(), first, links)

	assert.Equal(t, first, second.Text())
	assert.False(t, second.Changed())
}

func TestApply_OnlyFirstMatchingLine(t *testing.T) {
	text := "1 -> 2 [label=\"\"];\n1 -> 2 [label=\"\"];"
	r := Apply(context.Background(), text, []dot.Link{{From: "1", To: "2", Label: "a"}})

	assert.Equal(t, "1 -> 2 [label=\"a\"];\n1 -> 2 [label=\"\"];", r.Text())
}

func TestApply_OnlyFirstEmptyLabelOnTheLine(t *testing.T) {
	text := `1 -> 2 [label="",xlabel=""];`
	r := Apply(context.Background(), text, []dot.Link{{From: "1", To: "2", Label: "a"}})

	assert.Equal(t, `1 -> 2 [label="a",xlabel=""];`, r.Text())
}

func TestApply_IdPrefixCollision(t *testing.T) {
	// "1 -> 2" is a substring of "11 -> 22": the first such line wins.
	text := "11 -> 22 [label=\"\"];\n1 -> 2 [label=\"\"];"
	r := Apply(context.Background(), text, []dot.Link{{From: "1", To: "2", Label: "a"}})

	assert.Equal(t, "11 -> 22 [label=\"a\"];\n1 -> 2 [label=\"\"];", r.Text())
}

func TestApply_MultiLineLabel(t *testing.T) {
	text := "1 -> 2 [label=\"\"];\n2 -> 3 [label=\"\"];"
	r := Apply(context.Background(), text, []dot.Link{
		{From: "1", To: "2", Label: "x \n y"},
		{From: "2", To: "3", Label: "z"},
	})

	assert.Equal(t, 2, r.Patched)
	assert.Equal(t, "1 -> 2 [label=\"x \n y\"];\n2 -> 3 [label=\"z\"];", r.Text())
}

func TestApply_NoMatchingLine(t *testing.T) {
	r := Apply(context.Background(), testutil.SampleGraph, []dot.Link{{From: "9", To: "8", Label: "a"}})

	assert.Equal(t, 0, r.Patched)
	assert.Equal(t, testutil.SampleGraph, r.Text())
}

func TestUnifiedDiff(t *testing.T) {
	links := []dot.Link{
		{From: "1", To: "2", Label: "x \n y"},
		{From: "2", To: "3", Label: "count"},
	}
	r := Apply(context.Background(), testutil.SampleGraph, links)

	fd := r.FileDiff("graphs/model.dot")
	require.Len(t, fd.Hunks, 2)
	assert.Equal(t, "a/graphs/model.dot", fd.OrigName)
	assert.Equal(t, "b/graphs/model.dot", fd.NewName)

	assert.EqualValues(t, 8, fd.Hunks[0].OrigStartLine)
	assert.EqualValues(t, 8, fd.Hunks[0].NewStartLine)
	assert.EqualValues(t, 2, fd.Hunks[0].NewLines)
	assert.EqualValues(t, 9, fd.Hunks[1].OrigStartLine)
	assert.EqualValues(t, 10, fd.Hunks[1].NewStartLine)

	out, err := r.UnifiedDiff("graphs/model.dot")
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "--- a/graphs/model.dot")
	assert.Contains(t, text, "+++ b/graphs/model.dot")
	assert.Contains(t, text, "-1 -> 2 [label=\"\",color=\"black\",fontcolor=\"black\"];\n")
	assert.Contains(t, text, "+2 -> 3 [label=\"count\",color=\"black\",fontcolor=\"black\"];\n")
}

func TestUnifiedDiff_NoChanges(t *testing.T) {
	r := Apply(context.Background(), testutil.SampleGraphLabeled, []dot.Link{{From: "1", To: "2", Label: "action"}})

	out, err := r.UnifiedDiff("x.dot")
	require.NoError(t, err)
	assert.Nil(t, out)
}

package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateLinesSortsAndMerges(t *testing.T) {
	lines := []StockLine{
		{ProductID: "c", Qty: 2},
		{ProductID: "a", Qty: 1},
		{ProductID: "c", Qty: 3},
		{ProductID: "b", Qty: 0}, // floor at 1
	}

	want, ids := aggregateLines(lines)

	assert.Equal(t, []string{"a", "b", "c"}, ids)
	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 5}, want)
}

func TestAggregateLinesLeavesInputAlone(t *testing.T) {
	lines := []StockLine{
		{ProductID: "z", Qty: 1},
		{ProductID: "a", Qty: 2},
	}

	aggregateLines(lines)

	assert.Equal(t, "z", lines[0].ProductID)
	assert.Equal(t, "a", lines[1].ProductID)
}

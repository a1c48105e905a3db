package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemAccumulates(t *testing.T) {
	c := New()
	c.AddItem(1, "Bracelet", 10, "")
	c.AddItem(2, "Scarf", 5, "")
	c.AddItem(1, "Bracelet", 10, "")

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, int64(1), lines[0].ProductID)
	assert.Equal(t, 25.0, c.Total())
	assert.Equal(t, 3, c.Count())
}

func TestTotalMatchesSumOfSurvivingLines(t *testing.T) {
	c := New()
	c.AddItem(1, "A", 10, "")
	c.AddItem(1, "A", 10, "")
	c.AddItem(2, "B", 5, "")
	assert.Equal(t, 25.0, c.Total())

	c.ChangeQuantity(1, -2)
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].ProductID)
	assert.Equal(t, 5.0, c.Total())
}

func TestChangeQuantityRemovesAtZero(t *testing.T) {
	c := New()
	c.AddItem(1, "A", 10, "")
	c.ChangeQuantity(1, -1)
	assert.True(t, c.Empty())
	assert.Zero(t, c.Total())

	c.AddItem(1, "A", 10, "")
	c.ChangeQuantity(1, -5)
	assert.True(t, c.Empty())
}

func TestChangeQuantityZeroDeltaIsNoop(t *testing.T) {
	c := New()
	c.AddItem(1, "A", 10, "")
	c.ChangeQuantity(1, 0)
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 10.0, c.Total())
}

func TestChangeQuantityUnknownProductIsNoop(t *testing.T) {
	c := New()
	c.AddItem(1, "A", 10, "")
	c.ChangeQuantity(42, 3)
	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 10.0, c.Total())
}

// Two distinct products sharing a title stay separate lines: the cart is
// keyed by product id, the title is display only.
func TestSameTitleDistinctProductsStaySeparate(t *testing.T) {
	c := New()
	c.AddItem(7, "Bracelet", 10, "")
	c.AddItem(9, "Bracelet", 15, "")

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 10.0, lines[0].UnitPrice)
	assert.Equal(t, 15.0, lines[1].UnitPrice)
	assert.Equal(t, 25.0, c.Total())
}

func TestPriceCapturedAtAddTime(t *testing.T) {
	c := New()
	c.AddItem(1, "A", 10, "")
	// a repeat add with a changed catalog price keeps the captured price
	c.AddItem(1, "A", 99, "")
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 10.0, lines[0].UnitPrice)
	assert.Equal(t, 20.0, c.Total())
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(1, "A", 10, "")
	c.AddItem(2, "B", 5, "")
	c.Clear()
	assert.True(t, c.Empty())
	assert.Empty(t, c.Lines())
	assert.Zero(t, c.Count())
}

func TestLinesInsertionOrder(t *testing.T) {
	c := New()
	c.AddItem(3, "C", 1, "")
	c.AddItem(1, "A", 1, "")
	c.AddItem(2, "B", 1, "")
	c.AddItem(1, "A", 1, "")

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, int64(3), lines[0].ProductID)
	assert.Equal(t, int64(1), lines[1].ProductID)
	assert.Equal(t, int64(2), lines[2].ProductID)
}

package cart

import "sync"

// Line is one row of accumulated quantity for a single product. The unit
// price is captured when the item is first added; later catalog price edits
// only affect carts that add the product afterwards.
type Line struct {
	ProductID int64   `json:"product_id"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	ImageURL  string  `json:"image_url"`
}

// Cart accumulates lines keyed by product id. Two distinct products that
// happen to share a title stay distinct lines; the title is display only.
type Cart struct {
	mu    sync.Mutex
	lines map[int64]*Line
	order []int64
}

func New() *Cart {
	return &Cart{lines: make(map[int64]*Line)}
}

// AddItem inserts a line with quantity 1, or increments the existing line.
func (c *Cart) AddItem(productID int64, title string, unitPrice float64, imageURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if l, ok := c.lines[productID]; ok {
		l.Quantity++
		return
	}
	c.lines[productID] = &Line{
		ProductID: productID,
		Title:     title,
		UnitPrice: unitPrice,
		Quantity:  1,
		ImageURL:  imageURL,
	}
	c.order = append(c.order, productID)
}

// ChangeQuantity adds delta to the line's quantity; a resulting quantity of
// zero or less removes the line. An unknown product id is a no-op.
func (c *Cart) ChangeQuantity(productID int64, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.lines[productID]
	if !ok {
		return
	}
	l.Quantity += delta
	if l.Quantity <= 0 {
		delete(c.lines, productID)
		for i, id := range c.order {
			if id == productID {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
	}
}

// Lines returns copies of the surviving lines in insertion order.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

// Total is the sum of unit price times quantity over all lines.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, l := range c.lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

// Count is the total number of items across all lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = make(map[int64]*Line)
	c.order = nil
}

// Package cart implements the shopping cart line collection: stock-aware
// quantity reconciliation and the derivation of subtotal, tax, shipping and
// grand total from the current lines.
//
// A Cart is plain in-memory state owned by a single caller. Persisting it is a
// separate step performed by the caller after a successful mutation, using the
// records returned by Cart.Records.
package cart

// Line is one distinct product held in the cart.
//
// Name, UnitPrice, ImageRef and CategoryRef are captured when the product is
// first added. StockCeiling is refreshed from the catalog on every mutation
// that touches the line.
type Line struct {
	ProductID    string  `json:"productId" bson:"product_id"`
	Name         string  `json:"name" bson:"name"`
	UnitPrice    float64 `json:"unitPrice" bson:"unit_price"`
	ImageRef     string  `json:"imageRef,omitempty" bson:"image_ref,omitempty"`
	CategoryRef  string  `json:"categoryRef,omitempty" bson:"category_ref,omitempty"`
	Quantity     int     `json:"quantity" bson:"quantity"`
	StockCeiling int     `json:"stockCeiling" bson:"stock_ceiling"`
}

// Snapshot is the display and pricing data captured when a line is created.
type Snapshot struct {
	Name        string
	UnitPrice   float64
	ImageRef    string
	CategoryRef string
}

// Cart is an ordered collection of lines keyed by product ID.
// The zero value is not usable; create carts with New or FromLines.
type Cart struct {
	lines []Line
	index map[string]int
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{index: make(map[string]int)}
}

// Add puts one unit of productID into the cart.
//
// When the product is already present its quantity is incremented only while
// it stays below stockCeiling. A new line is created with quantity 1 when
// stockCeiling allows at least one unit. Rejections leave the cart unchanged
// and return an *OutOfStockError.
func (c *Cart) Add(productID string, snap Snapshot, stockCeiling int) (Notice, error) {
	if productID == "" {
		return Notice{}, ErrEmptyProductID
	}
	if stockCeiling < 0 {
		return Notice{}, ErrNegativeStockCeiling
	}

	if i, ok := c.index[productID]; ok {
		line := &c.lines[i]
		if line.Quantity >= stockCeiling {
			return outOfStock(*line, line.Quantity+1, stockCeiling)
		}
		line.Quantity++
		line.StockCeiling = stockCeiling
		return Notice{Kind: NoticeIncremented, ProductID: productID, Name: line.Name, Quantity: line.Quantity, Available: stockCeiling}, nil
	}

	if stockCeiling < 1 {
		line := Line{ProductID: productID, Name: snap.Name}
		return outOfStock(line, 1, stockCeiling)
	}

	c.index[productID] = len(c.lines)
	c.lines = append(c.lines, Line{
		ProductID:    productID,
		Name:         snap.Name,
		UnitPrice:    snap.UnitPrice,
		ImageRef:     snap.ImageRef,
		CategoryRef:  snap.CategoryRef,
		Quantity:     1,
		StockCeiling: stockCeiling,
	})
	return Notice{Kind: NoticeAdded, ProductID: productID, Name: snap.Name, Quantity: 1, Available: stockCeiling}, nil
}

// UpdateQuantity sets the quantity of an existing line.
//
// A quantity below 1 removes the line. A quantity above stockCeiling is
// refused with an *OutOfStockError and the current quantity is kept.
// Updating a product that is not in the cart is a no-op.
func (c *Cart) UpdateQuantity(productID string, quantity, stockCeiling int) (Notice, error) {
	i, ok := c.index[productID]
	if !ok {
		return Notice{Kind: NoticeUnchanged, ProductID: productID}, nil
	}
	if quantity < 1 {
		return c.Remove(productID), nil
	}
	if stockCeiling < 0 {
		return Notice{}, ErrNegativeStockCeiling
	}

	line := &c.lines[i]
	if quantity > stockCeiling {
		return outOfStock(*line, quantity, stockCeiling)
	}
	line.Quantity = quantity
	line.StockCeiling = stockCeiling
	return Notice{Kind: NoticeUpdated, ProductID: productID, Name: line.Name, Quantity: quantity, Available: stockCeiling}, nil
}

// Remove deletes the line for productID. Removing an absent product is a no-op.
func (c *Cart) Remove(productID string) Notice {
	i, ok := c.index[productID]
	if !ok {
		return Notice{Kind: NoticeUnchanged, ProductID: productID}
	}
	name := c.lines[i].Name

	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	delete(c.index, productID)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].ProductID] = j
	}
	return Notice{Kind: NoticeRemoved, ProductID: productID, Name: name}
}

// Clear empties the cart.
func (c *Cart) Clear() Notice {
	c.lines = nil
	c.index = make(map[string]int)
	return Notice{Kind: NoticeCleared}
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line returns the line for productID, if present.
func (c *Cart) Line(productID string) (Line, bool) {
	i, ok := c.index[productID]
	if !ok {
		return Line{}, false
	}
	return c.lines[i], true
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Totals derives the cart totals under the given pricing.
func (c *Cart) Totals(p Pricing) Totals {
	return Derive(c.lines, p)
}

func outOfStock(line Line, requested, ceiling int) (Notice, error) {
	available := ceiling
	if available < 0 {
		available = 0
	}
	n := Notice{
		Kind:      NoticeOutOfStock,
		ProductID: line.ProductID,
		Name:      line.Name,
		Quantity:  line.Quantity,
		Available: available,
	}
	return n, &OutOfStockError{ProductID: line.ProductID, Requested: requested, Available: available}
}

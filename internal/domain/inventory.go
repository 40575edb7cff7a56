package domain

// Defaults applied when the caller omits the optional item fields
const (
	DefaultItemLocation = "Warehouse"
	DefaultItemCategory = "General"
)

// InventoryItem represents a stock-keeping unit keyed by a caller-supplied
// identifier. Quantity is always non-negative; validation happens before
// any state mutation.
type InventoryItem struct {
	ItemID      string `json:"item_id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	LastUpdated string `json:"last_updated"`
}

// NewInventoryItem creates a new inventory item
func NewInventoryItem(itemID, name string, quantity int, location, category string) *InventoryItem {
	return &InventoryItem{
		ItemID:      itemID,
		Name:        name,
		Quantity:    quantity,
		Location:    location,
		Category:    category,
		LastUpdated: Now(),
	}
}

// SetQuantity overwrites the stock quantity and refreshes the update
// timestamp. Callers must have validated quantity >= 0 already.
func (i *InventoryItem) SetQuantity(quantity int) {
	i.Quantity = quantity
	i.LastUpdated = Now()
}

package cart

// CartItem is one product/variant line in the shopping cart. A cart holds at
// most one line per (ProductID, VariantID) pair; Quantity is always positive.
type CartItem struct {
	ProductID   string  `json:"productId"`
	VariantID   string  `json:"variantId"`
	Quantity    int     `json:"quantity"`
	Title       string  `json:"title"`
	VariantName string  `json:"variantName"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// CartState is the full cart snapshot. ItemCount and Subtotal are derived
// from Items and recomputed from scratch after every transition, never
// adjusted incrementally.
type CartState struct {
	Items     []CartItem `json:"items"`
	IsOpen    bool       `json:"isOpen"`
	ItemCount int        `json:"itemCount"`
	Subtotal  float64    `json:"subtotal"`
}

// Action is a cart transition. Reduce switches exhaustively over the
// implementations below.
type Action interface {
	actionName() string
}

type AddItem struct{ Item CartItem }

type RemoveItem struct {
	ProductID string
	VariantID string
}

type UpdateQuantity struct {
	ProductID string
	VariantID string
	Quantity  int
}

type ClearCart struct{}

type ToggleCart struct{}

type OpenCart struct{}

type CloseCart struct{}

// LoadCart replaces the items wholesale. Used once per session bootstrap to
// rehydrate from a persisted snapshot.
type LoadCart struct{ Items []CartItem }

func (AddItem) actionName() string        { return "ADD_ITEM" }
func (RemoveItem) actionName() string     { return "REMOVE_ITEM" }
func (UpdateQuantity) actionName() string { return "UPDATE_QUANTITY" }
func (ClearCart) actionName() string      { return "CLEAR_CART" }
func (ToggleCart) actionName() string     { return "TOGGLE_CART" }
func (OpenCart) actionName() string       { return "OPEN_CART" }
func (CloseCart) actionName() string      { return "CLOSE_CART" }
func (LoadCart) actionName() string       { return "LOAD_CART" }

// Reduce applies one action to a state and returns the next state. It is a
// pure function: the input state and the action are never mutated, and all
// side effects (persistence, logging) live outside in the Store.
func Reduce(state CartState, action Action) CartState {
	switch a := action.(type) {
	case AddItem:
		next := state
		next.Items = cloneItems(state.Items)
		idx := findLine(next.Items, a.Item.ProductID, a.Item.VariantID)
		if idx >= 0 {
			next.Items[idx].Quantity++
		} else {
			line := a.Item
			line.Quantity = 1
			next.Items = append(next.Items, line)
		}
		next.IsOpen = true
		return recompute(next)

	case RemoveItem:
		next := state
		kept := make([]CartItem, 0, len(state.Items))
		for _, line := range state.Items {
			if line.ProductID == a.ProductID && line.VariantID == a.VariantID {
				continue
			}
			kept = append(kept, line)
		}
		next.Items = kept
		return recompute(next)

	case UpdateQuantity:
		if a.Quantity <= 0 {
			return Reduce(state, RemoveItem{ProductID: a.ProductID, VariantID: a.VariantID})
		}
		next := state
		next.Items = cloneItems(state.Items)
		if idx := findLine(next.Items, a.ProductID, a.VariantID); idx >= 0 {
			next.Items[idx].Quantity = a.Quantity
		}
		return recompute(next)

	case ClearCart:
		next := state
		next.Items = []CartItem{}
		return recompute(next)

	case ToggleCart:
		next := state
		next.IsOpen = !state.IsOpen
		return next

	case OpenCart:
		next := state
		next.IsOpen = true
		return next

	case CloseCart:
		next := state
		next.IsOpen = false
		return next

	case LoadCart:
		next := state
		next.Items = make([]CartItem, 0, len(a.Items))
		for _, line := range a.Items {
			// A snapshot is untrusted input; lines that would violate the
			// positive-quantity invariant are not loaded.
			if line.Quantity <= 0 {
				continue
			}
			next.Items = append(next.Items, line)
		}
		return recompute(next)
	}

	return state
}

func findLine(items []CartItem, productID, variantID string) int {
	for i, line := range items {
		if line.ProductID == productID && line.VariantID == variantID {
			return i
		}
	}
	return -1
}

func cloneItems(items []CartItem) []CartItem {
	cloned := make([]CartItem, len(items))
	copy(cloned, items)
	return cloned
}

func recompute(state CartState) CartState {
	count := 0
	subtotal := 0.0
	for _, line := range state.Items {
		count += line.Quantity
		subtotal += line.Price * float64(line.Quantity)
	}
	state.ItemCount = count
	state.Subtotal = subtotal
	return state
}

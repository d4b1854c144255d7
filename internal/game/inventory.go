package game

import (
	"fmt"
	"slices"
)

// Item is an immutable thing that can be carried. Its name is the lookup key.
type Item struct {
	Name          string
	Description   string
	InitialRoomId int
}

func (i Item) String() string {
	return fmt.Sprintf("%s: %s", i.Name, i.Description)
}

// Inventory holds the items owned by a single room or player in insertion
// order. Names need not be unique; lookups find the earliest match.
type Inventory struct {
	items []Item
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add stores the item after any already held.
func (inv *Inventory) Add(item Item) {
	inv.items = append(inv.items, item)
}

func (inv *Inventory) find(name string) int {
	return slices.IndexFunc(inv.items, func(item Item) bool {
		return item.Name == name
	})
}

// Remove deletes the first item with the given name and returns it.
func (inv *Inventory) Remove(name string) (Item, error) {
	i := inv.find(name)
	if i < 0 {
		return Item{}, fmt.Errorf("%q: %w", name, ErrItemNotFound)
	}

	item := inv.items[i]
	inv.items = slices.Delete(inv.items, i, i+1)
	return item, nil
}

// Get returns the first item with the given name.
func (inv *Inventory) Get(name string) (Item, bool) {
	i := inv.find(name)
	if i < 0 {
		return Item{}, false
	}
	return inv.items[i], true
}

// Contains checks if the named item is in the inventory.
func (inv *Inventory) Contains(name string) bool {
	return inv.find(name) >= 0
}

// List returns the items in insertion order.
func (inv *Inventory) List() []Item {
	return slices.Clone(inv.items)
}

// Len returns the number of items held.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Clone returns an independent copy of the inventory.
func (inv *Inventory) Clone() *Inventory {
	return &Inventory{items: slices.Clone(inv.items)}
}

// Transfer moves the named item from one inventory to another. Nothing
// changes if the item is not in from.
func Transfer(from, to *Inventory, name string) (Item, error) {
	item, err := from.Remove(name)
	if err != nil {
		return Item{}, err
	}
	to.Add(item)
	return item, nil
}

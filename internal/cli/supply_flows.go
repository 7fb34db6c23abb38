package cli

import (
	"context"

	"go.uber.org/zap"

	"storefront/internal/geo"
	"storefront/internal/modules/user"
)

// placeSupplyRequest is the manager restock workflow: pick the lowest-stock
// product by ordinal, pick the nearest warehouse by id, then atomically
// increment stock and record the request. Warehouse stock is unlimited.
func (c *CLI) placeSupplyRequest(ctx context.Context) {
	if !c.requireRole(ctx, user.RoleManager) {
		return
	}
	u, ok := c.currentUser(ctx)
	if !ok {
		return
	}
	st, ok := c.resolveManagedStore(ctx, u)
	if !ok {
		return
	}

	products, err := c.products.ListByStock(ctx, st.ID)
	if err != nil {
		c.log.Error("list products by stock", zap.Int64("store_id", st.ID), zap.Error(err))
		c.p.Println("Something went wrong. Please try again.")
		return
	}
	if len(products) == 0 {
		c.p.Println("This store has no products to restock.")
		return
	}

	c.p.Println("Please select a product to order:")
	for i, pr := range products {
		c.p.Printf("%2d. %s: %d units on hand.\n", i+1, pr.Name, pr.NumberOfUnits)
	}
	sel, err := c.p.Choice("Please make your choice: ")
	if err != nil {
		return
	}
	for sel < 1 || sel > len(products) {
		c.p.Println("Invalid selection. Please enter a number in range.")
		if sel, err = c.p.Choice("Please make your choice: "); err != nil {
			return
		}
	}
	productName := products[sel-1].Name

	warehouses, err := c.supplies.Warehouses(ctx)
	if err != nil {
		c.log.Error("list warehouses", zap.Error(err))
		c.p.Println("Something went wrong. Please try again.")
		return
	}
	if len(warehouses) == 0 {
		c.p.Println("There are no warehouses to order from.")
		return
	}

	cands := make([]geo.Candidate, 0, len(warehouses))
	for _, w := range warehouses {
		cands = append(cands, geo.Candidate{ID: w.ID, Pos: w.Location()})
	}
	c.p.Println("Choose a warehouse by ID (distance estimate is from your store)")
	warehouseID, err := c.p.SelectByDistance("Warehouse ID", cands, st.Location(), -1)
	if err != nil {
		return
	}

	units, err := c.p.Choice("How many units would you like? ")
	if err != nil {
		return
	}
	if units <= 0 {
		c.p.Println("Number of units must be positive.")
		return
	}

	req, err := c.supplies.Request(ctx, u.ID, warehouseID, st.ID, productName, units)
	if err != nil {
		c.log.Error("place supply request",
			zap.Int64("store_id", st.ID), zap.Int64("warehouse_id", warehouseID), zap.Error(err))
		c.p.Printf("Could not place supply request: %v\n", err)
		return
	}
	c.p.Printf("Warehouse %d delivered %d units of %s to store %d!\n",
		req.WarehouseID, req.UnitsRequested, req.ProductName, req.StoreID)
}

package cli

import (
	"context"

	"go.uber.org/zap"

	"storefront/internal/modules/user"
)

// updateProduct is the manager edit workflow: resolve a managed store, pick
// an existing product, then set its units and price. The audit row commits
// in the same transaction as the mutation.
func (c *CLI) updateProduct(ctx context.Context) {
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

	products, err := c.products.ListByStore(ctx, st.ID)
	if err != nil {
		c.log.Error("list products", zap.Int64("store_id", st.ID), zap.Error(err))
		c.p.Println("Something went wrong. Please try again.")
		return
	}
	c.printProducts(products)
	if len(products) == 0 {
		return
	}

	name, ok := c.promptExistingProduct(ctx, st.ID, "\tEnter the name of a product to modify: ")
	if !ok {
		return
	}
	units, err := c.p.Choice("\tEnter updated number of units: ")
	if err != nil {
		return
	}
	price, err := c.p.FloatChoice("\tEnter updated price per unit: ")
	if err != nil {
		return
	}

	if err := c.products.Update(ctx, u.ID, st.ID, name, units, price); err != nil {
		c.log.Error("update product", zap.Int64("store_id", st.ID), zap.String("product", name), zap.Error(err))
		c.p.Printf("Could not update product: %v\n", err)
		return
	}
	c.p.Printf("%s at store %d now has %d units priced at %.2f each\n", name, st.ID, units, price)
}

// viewRecentUpdates shows a manager their latest audit rows at one managed store.
func (c *CLI) viewRecentUpdates(ctx context.Context) {
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

	updates, err := c.products.RecentUpdates(ctx, u.ID, st.ID, recentLimit)
	if err != nil {
		c.log.Error("recent updates", zap.Int64("store_id", st.ID), zap.Error(err))
		c.p.Println("Something went wrong. Please try again.")
		return
	}
	if len(updates) == 0 {
		c.p.Println("No product updates to display.")
		return
	}
	c.p.Println("Last 5 updates at this store:")
	c.p.Printf("%-10s%-10s%-25s%-20s\n", "Update", "Store", "Product", "Updated On")
	for _, up := range updates {
		c.p.Printf("%-10d%-10d%-25s%-20s\n",
			up.UpdateNumber, up.StoreID, up.ProductName, up.UpdatedOn.Format("2006-01-02 15:04:05"))
	}
}

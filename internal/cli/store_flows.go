package cli

import (
	"context"

	"go.uber.org/zap"
)

// storeViewRadius bounds the nearby-stores listing, in the same planar units
// as the stored coordinates.
const storeViewRadius = 30

// viewNearbyStores lists stores within the view radius of the user's
// registered location, nearest first.
func (c *CLI) viewNearbyStores(ctx context.Context) {
	u, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	nearby, err := c.stores.Nearby(ctx, u.Location(), storeViewRadius)
	if err != nil {
		c.log.Error("list nearby stores", zap.Error(err))
		c.p.Println("Something went wrong. Please try again.")
		return
	}
	if len(nearby) == 0 {
		c.p.Printf("No stores within %d miles of your location.\n", storeViewRadius)
		return
	}

	c.p.Printf("%-10s%-10s%-15s%-18s\n", "Store ID", "Distance", "Manager ID", "Date Established")
	for _, st := range nearby {
		c.p.Printf("%-10d%-10.2f%-15d%-18s\n",
			st.ID, st.Distance, st.ManagerID, st.DateEstablished.Format("2006-01-02"))
	}
}

// viewProducts resolves a store the same way order placement does, then
// lists its products by name.
func (c *CLI) viewProducts(ctx context.Context) {
	u, ok := c.currentUser(ctx)
	if !ok {
		return
	}
	storeID, ok := c.selectAnyStore(ctx, u)
	if !ok {
		return
	}

	products, err := c.products.ListByStore(ctx, storeID)
	if err != nil {
		c.log.Error("list products", zap.Int64("store_id", storeID), zap.Error(err))
		c.p.Println("Something went wrong. Please try again.")
		return
	}
	c.printProducts(products)
}

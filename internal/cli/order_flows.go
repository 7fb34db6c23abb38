package cli

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"storefront/internal/modules/order"
	"storefront/internal/modules/user"
)

// placeOrder is the customer purchase workflow: resolve a store by distance,
// pick an existing product, then atomically record the order and decrement
// stock. Any authenticated user may order.
func (c *CLI) placeOrder(ctx context.Context) {
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
	if len(products) == 0 {
		return
	}

	name, ok := c.promptExistingProduct(ctx, storeID, "\tEnter a product name: ")
	if !ok {
		return
	}
	units, err := c.p.Choice("\tEnter number of units: ")
	if err != nil {
		return
	}
	if units <= 0 {
		c.p.Println("Number of units must be positive.")
		return
	}

	o, err := c.orders.Place(ctx, u.ID, storeID, name, units)
	switch {
	case err == nil:
		c.p.Printf("Congratulations, you purchased %d units of '%s' from store %d\n",
			o.UnitsOrdered, o.ProductName, o.StoreID)
	case errors.Is(err, order.ErrInsufficientStock):
		c.p.Println("Not enough units available.")
	case errors.Is(err, order.ErrProductNotFound):
		c.p.Println("This store does not have this product.")
	default:
		c.log.Error("place order", zap.Int64("store_id", storeID), zap.String("product", name), zap.Error(err))
		c.p.Println("Something went wrong. Your order was not placed.")
	}
}

// promptExistingProduct re-prompts until the entered name exists at the store.
func (c *CLI) promptExistingProduct(ctx context.Context, storeID int64, label string) (string, bool) {
	for {
		name, err := c.p.Line(label)
		if err != nil {
			return "", false
		}
		exists, err := c.products.Exists(ctx, storeID, name)
		if err != nil {
			c.log.Error("check product", zap.Int64("store_id", storeID), zap.Error(err))
			c.p.Println("Something went wrong. Please try again.")
			return "", false
		}
		if exists {
			return name, true
		}
		label = "This store does not have this product. Please enter a valid product name: "
	}
}

// viewRecentOrders shows a customer their own last orders; a manager chooses
// between their own orders and a managed store's orders.
func (c *CLI) viewRecentOrders(ctx context.Context) {
	u, ok := c.currentUser(ctx)
	if !ok {
		return
	}

	if c.auth.Require(ctx, user.RoleManager) != nil {
		c.printOwnOrders(ctx, u.ID)
		return
	}

	c.p.Println("Would you like to see your personal orders, or order information for your store(s)?")
	c.p.Println("1. See my orders")
	c.p.Println("2. See my store(s) orders")
	sel, err := c.p.Choice("Please make your choice: ")
	if err != nil {
		return
	}
	switch sel {
	case 1:
		c.printOwnOrders(ctx, u.ID)
	case 2:
		st, ok := c.resolveManagedStore(ctx, u)
		if !ok {
			return
		}
		orders, err := c.orders.RecentByStore(ctx, st.ID, recentLimit)
		if err != nil {
			c.log.Error("recent store orders", zap.Int64("store_id", st.ID), zap.Error(err))
			c.p.Println("Something went wrong. Please try again.")
			return
		}
		if len(orders) == 0 {
			c.p.Println("No orders to display.")
			return
		}
		c.p.Printf("%-10s%-20s%-25s%-10s%-20s\n", "Order", "Customer", "Product", "Units", "Time")
		for _, o := range orders {
			c.p.Printf("%-10d%-20s%-25s%-10d%-20s\n",
				o.OrderNumber, o.CustomerName, o.ProductName, o.UnitsOrdered,
				o.OrderTime.Format("2006-01-02 15:04:05"))
		}
	default:
		c.p.Println("Unrecognized choice!")
	}
}

func (c *CLI) printOwnOrders(ctx context.Context, customerID int64) {
	orders, err := c.orders.RecentByCustomer(ctx, customerID, recentLimit)
	if err != nil {
		c.log.Error("recent orders", zap.Int64("customer_id", customerID), zap.Error(err))
		c.p.Println("Something went wrong. Please try again.")
		return
	}
	if len(orders) == 0 {
		c.p.Println("No orders to display.")
		return
	}
	c.p.Printf("%-10s%-25s%-10s%-20s\n", "Store", "Product", "Units", "Time")
	for _, o := range orders {
		c.p.Printf("%-10d%-25s%-10d%-20s\n",
			o.StoreID, o.ProductName, o.UnitsOrdered, o.OrderTime.Format("2006-01-02 15:04:05"))
	}
}

// viewPopularProducts shows a manager the top sellers at one managed store.
func (c *CLI) viewPopularProducts(ctx context.Context) {
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

	sales, err := c.orders.PopularProducts(ctx, st.ID, recentLimit)
	if err != nil {
		c.log.Error("popular products", zap.Int64("store_id", st.ID), zap.Error(err))
		c.p.Println("Something went wrong. Please try again.")
		return
	}
	if len(sales) == 0 {
		c.p.Println("No orders to display.")
		return
	}
	c.p.Printf("%-25s%-10s\n", "Product", "Sold")
	for _, s := range sales {
		c.p.Printf("%-25s%-10d\n", s.ProductName, s.UnitsSold)
	}
}

// viewPopularCustomers shows a manager the top buyers at one managed store.
func (c *CLI) viewPopularCustomers(ctx context.Context) {
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

	sales, err := c.orders.PopularCustomers(ctx, st.ID, recentLimit)
	if err != nil {
		c.log.Error("popular customers", zap.Int64("store_id", st.ID), zap.Error(err))
		c.p.Println("Something went wrong. Please try again.")
		return
	}
	if len(sales) == 0 {
		c.p.Println("No orders to display.")
		return
	}
	c.p.Printf("%-20s%-10s\n", "Customer", "Purchased")
	for _, s := range sales {
		c.p.Printf("%-20s%-10d\n", s.CustomerName, s.UnitsPurchased)
	}
}

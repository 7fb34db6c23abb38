package cli

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"storefront/internal/modules/product"
	"storefront/internal/modules/user"
)

// adminPanel lets an admin view and override arbitrary user and product rows.
func (c *CLI) adminPanel(ctx context.Context) {
	if !c.requireRole(ctx, user.RoleAdmin) {
		return
	}

	c.p.Println("1. View and update user information")
	c.p.Println("2. View and update product information")
	choice, err := c.p.Choice("Enter your choice: ")
	if err != nil {
		return
	}
	switch choice {
	case 1:
		c.adminUsers(ctx)
	case 2:
		c.adminProducts(ctx)
	default:
		c.p.Println("Invalid choice.")
	}
}

func (c *CLI) adminUsers(ctx context.Context) {
	choice, err := c.p.Choice("\tEnter 1 to view users or 2 to update users: ")
	if err != nil {
		return
	}
	switch choice {
	case 1:
		id, err := c.p.Choice("\tEnter user id to view: ")
		if err != nil {
			return
		}
		u, err := c.users.Get(ctx, int64(id))
		if err != nil {
			c.p.Println("No such user.")
			return
		}
		c.p.Printf("%-10s%-20s%-12s%-12s%-10s\n", "User ID", "Name", "Latitude", "Longitude", "Type")
		c.p.Printf("%-10d%-20s%-12.2f%-12.2f%-10s\n", u.ID, u.Name, u.Latitude, u.Longitude, u.Type)
	case 2:
		id, err := c.p.Choice("\tEnter user id to update: ")
		if err != nil {
			return
		}
		name, err := c.p.Line("\tEnter updated name of user: ")
		if err != nil {
			return
		}
		password, err := c.p.Line("\tEnter updated password of user: ")
		if err != nil {
			return
		}
		lat, err := c.p.FloatChoice("\tEnter updated latitude of user: ")
		if err != nil {
			return
		}
		lng, err := c.p.FloatChoice("\tEnter updated longitude of user: ")
		if err != nil {
			return
		}
		role, err := c.p.Line("\tEnter updated type of user: ")
		if err != nil {
			return
		}

		u := &user.User{
			ID:        int64(id),
			Name:      name,
			Password:  password,
			Latitude:  lat,
			Longitude: lng,
			Type:      user.Role(strings.ToLower(role)),
		}
		if err := c.users.AdminUpdate(ctx, u); err != nil {
			c.log.Error("admin update user", zap.Int64("user_id", u.ID), zap.Error(err))
			c.p.Printf("Could not update user: %v\n", err)
			return
		}
		c.p.Printf("User %d updated.\n", u.ID)
	default:
		c.p.Println("Invalid choice.")
	}
}

func (c *CLI) adminProducts(ctx context.Context) {
	choice, err := c.p.Choice("\tEnter 1 to view products or 2 to update products: ")
	if err != nil {
		return
	}
	switch choice {
	case 1:
		name, err := c.p.Line("\tEnter product name to view: ")
		if err != nil {
			return
		}
		products, err := c.products.FindByName(ctx, name)
		if err != nil {
			c.log.Error("find products", zap.String("product", name), zap.Error(err))
			c.p.Println("Something went wrong. Please try again.")
			return
		}
		if len(products) == 0 {
			c.p.Println("No products found.")
			return
		}
		c.p.Printf("%-10s%-25s%-15s%-15s\n", "Store", "Product", "Units", "Price")
		for _, pr := range products {
			c.p.Printf("%-10d%-25s%-15d%-15.2f\n", pr.StoreID, pr.Name, pr.NumberOfUnits, pr.PricePerUnit)
		}
	case 2:
		storeID, err := c.p.Choice("\tEnter store id of product to update: ")
		if err != nil {
			return
		}
		name, err := c.p.Line("\tEnter product name of product to update: ")
		if err != nil {
			return
		}
		newStoreID, err := c.p.Choice("\tEnter updated store id: ")
		if err != nil {
			return
		}
		newName, err := c.p.Line("\tEnter updated product name: ")
		if err != nil {
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

		req := product.AdminUpdateRequest{
			StoreID:        int64(storeID),
			ProductName:    name,
			NewStoreID:     int64(newStoreID),
			NewProductName: newName,
			NumberOfUnits:  units,
			PricePerUnit:   price,
		}
		err = c.products.AdminUpdate(ctx, req)
		switch {
		case err == nil:
			c.p.Printf("Product '%s' at store %d updated.\n", req.NewProductName, req.NewStoreID)
		case errors.Is(err, product.ErrNotFound):
			c.p.Println("No such product.")
		default:
			c.log.Error("admin update product", zap.Error(err))
			c.p.Printf("Could not update product: %v\n", err)
		}
	default:
		c.p.Println("Invalid choice.")
	}
}

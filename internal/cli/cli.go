package cli

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"storefront/internal/geo"
	"storefront/internal/modules/auth"
	"storefront/internal/modules/order"
	"storefront/internal/modules/product"
	"storefront/internal/modules/store"
	"storefront/internal/modules/supply"
	"storefront/internal/modules/user"
)

// recentLimit caps every recent/popular report at five rows.
const recentLimit = 5

// CLI drives the interactive session: menu dispatch, role gating, and the
// workflows built over the module services.
type CLI struct {
	p        *Prompter
	log      *zap.Logger
	auth     auth.Service
	users    user.Service
	stores   store.Service
	products product.Service
	orders   order.Service
	supplies supply.Service
}

// New wires the console over the module services.
func New(p *Prompter, log *zap.Logger, a auth.Service, u user.Service, st store.Service,
	pr product.Service, o order.Service, su supply.Service) *CLI {
	return &CLI{
		p:        p,
		log:      log,
		auth:     a,
		users:    u,
		stores:   st,
		products: pr,
		orders:   o,
		supplies: su,
	}
}

// Run executes the top-level menu loop until the user exits or input ends.
func (c *CLI) Run(ctx context.Context) error {
	c.p.Println()
	c.p.Println("*******************************************************")
	c.p.Println("              User Interface")
	c.p.Println("*******************************************************")

	for {
		c.p.Println("MAIN MENU")
		c.p.Println("---------")
		c.p.Println("1. Create user")
		c.p.Println("2. Log in")
		c.p.Println("9. < EXIT")

		choice, err := c.p.Choice("Please make your choice: ")
		if err != nil {
			return nil
		}
		switch choice {
		case 1:
			c.createUser(ctx)
		case 2:
			if c.login(ctx) {
				c.userMenu(ctx)
			}
		case 9:
			return nil
		default:
			c.p.Println("Unrecognized choice!")
		}
	}
}

func (c *CLI) userMenu(ctx context.Context) {
	for {
		c.p.Println("MAIN MENU")
		c.p.Println("---------")
		c.p.Println("1. View nearby stores")
		c.p.Println("2. View product list")
		c.p.Println("3. Place an order")
		c.p.Println("4. View 5 recent orders")
		c.p.Println("5. Update product")
		c.p.Println("6. View 5 recent product updates")
		c.p.Println("7. View 5 popular products")
		c.p.Println("8. View 5 popular customers")
		c.p.Println("9. Place product supply request to warehouse")
		c.p.Println("10. Admin options")
		c.p.Println(".........................")
		c.p.Println("20. Log out")

		choice, err := c.p.Choice("Please make your choice: ")
		if err != nil {
			c.auth.Logout()
			return
		}
		switch choice {
		case 1:
			c.viewNearbyStores(ctx)
		case 2:
			c.viewProducts(ctx)
		case 3:
			c.placeOrder(ctx)
		case 4:
			c.viewRecentOrders(ctx)
		case 5:
			c.updateProduct(ctx)
		case 6:
			c.viewRecentUpdates(ctx)
		case 7:
			c.viewPopularProducts(ctx)
		case 8:
			c.viewPopularCustomers(ctx)
		case 9:
			c.placeSupplyRequest(ctx)
		case 10:
			c.adminPanel(ctx)
		case 20:
			c.auth.Logout()
			return
		default:
			c.p.Println("Unrecognized choice!")
		}
	}
}

// requireRole runs the role gate and translates a denial into the console
// notice. It must pass before any privileged read or mutation.
func (c *CLI) requireRole(ctx context.Context, role user.Role) bool {
	err := c.auth.Require(ctx, role)
	switch {
	case err == nil:
		return true
	case errors.Is(err, auth.ErrNotAuthenticated), errors.Is(err, auth.ErrAccessDenied):
		c.p.Printf("Access denied: %s access only.\n", role)
		return false
	default:
		c.log.Error("role check failed", zap.String("role", string(role)), zap.Error(err))
		c.p.Println("Something went wrong. Please try again.")
		return false
	}
}

// currentUser loads the full user row for the active session.
func (c *CLI) currentUser(ctx context.Context) (*user.User, bool) {
	sess, ok := c.auth.Current()
	if !ok {
		c.p.Println("You must be logged in.")
		return nil, false
	}
	u, err := c.users.Get(ctx, sess.UserID)
	if err != nil {
		c.log.Error("load current user", zap.Int64("user_id", sess.UserID), zap.Error(err))
		c.p.Println("Something went wrong. Please try again.")
		return nil, false
	}
	return u, true
}

// resolveManagedStore resolves which of the manager's stores a workflow
// targets: none aborts with a notice, one is used directly, several go
// through nearest-neighbor selection from the manager's location.
func (c *CLI) resolveManagedStore(ctx context.Context, manager *user.User) (store.Store, bool) {
	managed, err := c.stores.Managed(ctx, manager.ID)
	if err != nil {
		c.log.Error("list managed stores", zap.Int64("manager_id", manager.ID), zap.Error(err))
		c.p.Println("Something went wrong. Please try again.")
		return store.Store{}, false
	}
	if managed.None() {
		c.p.Println("You do not manage any stores!")
		return store.Store{}, false
	}
	if st, ok := managed.Single(); ok {
		return st, true
	}

	c.p.Println("Please select a store among those you manage:")
	id, err := c.p.SelectByDistance("Store ID", managed.Candidates(), manager.Location(), -1)
	if err != nil {
		return store.Store{}, false
	}
	st, _ := managed.ByID(id)
	return st, true
}

// selectAnyStore lists every store ranked by distance from the user, shows
// the nearest ten, and accepts any valid store id.
func (c *CLI) selectAnyStore(ctx context.Context, u *user.User) (int64, bool) {
	stores, err := c.stores.All(ctx)
	if err != nil {
		c.log.Error("list stores", zap.Error(err))
		c.p.Println("Something went wrong. Please try again.")
		return 0, false
	}
	if len(stores) == 0 {
		c.p.Println("There are no stores yet.")
		return 0, false
	}

	cands := make([]geo.Candidate, 0, len(stores))
	for _, st := range stores {
		cands = append(cands, geo.Candidate{ID: st.ID, Pos: st.Location()})
	}

	c.p.Println("Please select a store (any valid ID may be entered, but these are the nearest 10 stores)")
	id, err := c.p.SelectByDistance("Store ID", cands, u.Location(), 10)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (c *CLI) printProducts(products []product.Product) {
	if len(products) == 0 {
		c.p.Println("No products found.")
		return
	}
	c.p.Printf("%-25s%-15s%-15s\n", "Product", "Units", "Price")
	for _, pr := range products {
		c.p.Printf("%-25s%-15d%-15.2f\n", pr.Name, pr.NumberOfUnits, pr.PricePerUnit)
	}
}

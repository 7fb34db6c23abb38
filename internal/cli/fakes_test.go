package cli

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"storefront/internal/geo"
	"storefront/internal/modules/auth"
	"storefront/internal/modules/order"
	"storefront/internal/modules/product"
	"storefront/internal/modules/store"
	"storefront/internal/modules/supply"
	"storefront/internal/modules/user"
)

// The fakes below implement the module Service interfaces over in-memory
// state so workflows can be driven end to end with scripted input.

type fakeAuth struct {
	sess *auth.Session
	role user.Role
}

func loggedInAs(id int64, name string, role user.Role) *fakeAuth {
	return &fakeAuth{
		sess: &auth.Session{ID: uuid.New(), UserID: id, Name: name},
		role: role,
	}
}

func (f *fakeAuth) Login(ctx context.Context, name, password string) (*auth.Session, error) {
	if f.sess == nil {
		return nil, auth.ErrInvalidCredentials
	}
	return f.sess, nil
}

func (f *fakeAuth) Logout() { f.sess = nil }

func (f *fakeAuth) Current() (*auth.Session, bool) {
	if f.sess == nil {
		return nil, false
	}
	return f.sess, true
}

func (f *fakeAuth) Require(ctx context.Context, role user.Role) error {
	if f.sess == nil {
		return auth.ErrNotAuthenticated
	}
	if f.role != role {
		return auth.ErrAccessDenied
	}
	return nil
}

type fakeUsers struct {
	users map[int64]*user.User
}

func (f *fakeUsers) Register(ctx context.Context, name, password string, lat, lng float64) (*user.User, error) {
	id := int64(len(f.users) + 1)
	u := &user.User{ID: id, Name: name, Password: password, Latitude: lat, Longitude: lng, Type: user.RoleCustomer}
	f.users[id] = u
	return u, nil
}

func (f *fakeUsers) Get(ctx context.Context, id int64) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func (f *fakeUsers) AdminUpdate(ctx context.Context, u *user.User) error {
	f.users[u.ID] = u
	return nil
}

type fakeStores struct {
	stores []store.Store
}

func (f *fakeStores) All(ctx context.Context) ([]store.Store, error) { return f.stores, nil }

func (f *fakeStores) Nearby(ctx context.Context, from geo.Point, within float64) ([]store.NearbyStore, error) {
	var nearby []store.NearbyStore
	for _, st := range f.stores {
		d := geo.Distance(from, st.Location())
		if d <= within {
			nearby = append(nearby, store.NearbyStore{Store: st, Distance: d})
		}
	}
	sort.SliceStable(nearby, func(i, j int) bool { return nearby[i].Distance < nearby[j].Distance })
	return nearby, nil
}

func (f *fakeStores) Managed(ctx context.Context, managerID int64) (store.ManagedStores, error) {
	var out []store.Store
	for _, st := range f.stores {
		if st.ManagerID == managerID {
			out = append(out, st)
		}
	}
	return store.ManagedStores{Stores: out}, nil
}

func (f *fakeStores) Get(ctx context.Context, id int64) (*store.Store, error) {
	for _, st := range f.stores {
		if st.ID == id {
			cp := st
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

type fakeProducts struct {
	products map[string]*product.Product
	updates  []product.Update
}

func productKey(storeID int64, name string) string {
	return fmt.Sprintf("%d/%s", storeID, name)
}

func newFakeProducts(products ...product.Product) *fakeProducts {
	f := &fakeProducts{products: map[string]*product.Product{}}
	for i := range products {
		p := products[i]
		f.products[productKey(p.StoreID, p.Name)] = &p
	}
	return f
}

func (f *fakeProducts) byStore(storeID int64) []product.Product {
	var out []product.Product
	for _, p := range f.products {
		if p.StoreID == storeID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (f *fakeProducts) ListByStore(ctx context.Context, storeID int64) ([]product.Product, error) {
	return f.byStore(storeID), nil
}

func (f *fakeProducts) ListByStock(ctx context.Context, storeID int64) ([]product.Product, error) {
	out := f.byStore(storeID)
	sort.SliceStable(out, func(i, j int) bool { return out[i].NumberOfUnits < out[j].NumberOfUnits })
	return out, nil
}

func (f *fakeProducts) Get(ctx context.Context, storeID int64, name string) (*product.Product, error) {
	p, ok := f.products[productKey(storeID, name)]
	if !ok {
		return nil, product.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProducts) Exists(ctx context.Context, storeID int64, name string) (bool, error) {
	_, ok := f.products[productKey(storeID, name)]
	return ok, nil
}

func (f *fakeProducts) FindByName(ctx context.Context, name string) ([]product.Product, error) {
	var out []product.Product
	for _, p := range f.products {
		if p.Name == name {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProducts) Update(ctx context.Context, managerID, storeID int64, name string, units int, price float64) error {
	p, ok := f.products[productKey(storeID, name)]
	if !ok {
		return product.ErrNotFound
	}
	p.NumberOfUnits = units
	p.PricePerUnit = price
	f.updates = append(f.updates, product.Update{
		ManagerID: managerID, StoreID: storeID, ProductName: name, UpdatedOn: time.Now(),
	})
	return nil
}

func (f *fakeProducts) AdminUpdate(ctx context.Context, req product.AdminUpdateRequest) error {
	p, ok := f.products[productKey(req.StoreID, req.ProductName)]
	if !ok {
		return product.ErrNotFound
	}
	delete(f.products, productKey(req.StoreID, req.ProductName))
	p.StoreID = req.NewStoreID
	p.Name = req.NewProductName
	p.NumberOfUnits = req.NumberOfUnits
	p.PricePerUnit = req.PricePerUnit
	f.products[productKey(p.StoreID, p.Name)] = p
	f.updates = append(f.updates, product.Update{
		StoreID: req.NewStoreID, ProductName: req.NewProductName, UpdatedOn: time.Now(),
	})
	return nil
}

func (f *fakeProducts) RecentUpdates(ctx context.Context, managerID, storeID int64, limit int) ([]product.Update, error) {
	var out []product.Update
	for i := len(f.updates) - 1; i >= 0 && len(out) < limit; i-- {
		u := f.updates[i]
		if u.ManagerID == managerID && u.StoreID == storeID {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeOrders struct {
	products *fakeProducts
	placed   []order.Order
	nextID   int64
}

func (f *fakeOrders) Place(ctx context.Context, customerID, storeID int64, productName string, units int) (*order.Order, error) {
	if units <= 0 {
		return nil, fmt.Errorf("units ordered must be positive")
	}
	p, ok := f.products.products[productKey(storeID, productName)]
	if !ok {
		return nil, order.ErrProductNotFound
	}
	if p.NumberOfUnits < units {
		return nil, order.ErrInsufficientStock
	}
	p.NumberOfUnits -= units
	f.nextID++
	o := order.Order{
		OrderNumber:  f.nextID,
		CustomerID:   customerID,
		StoreID:      storeID,
		ProductName:  productName,
		UnitsOrdered: units,
		OrderTime:    time.Now(),
	}
	f.placed = append(f.placed, o)
	return &o, nil
}

func (f *fakeOrders) RecentByCustomer(ctx context.Context, customerID int64, limit int) ([]order.Order, error) {
	var out []order.Order
	for i := len(f.placed) - 1; i >= 0 && len(out) < limit; i-- {
		if f.placed[i].CustomerID == customerID {
			out = append(out, f.placed[i])
		}
	}
	return out, nil
}

func (f *fakeOrders) RecentByStore(ctx context.Context, storeID int64, limit int) ([]order.StoreOrder, error) {
	var out []order.StoreOrder
	for i := len(f.placed) - 1; i >= 0 && len(out) < limit; i-- {
		o := f.placed[i]
		if o.StoreID == storeID {
			out = append(out, order.StoreOrder{
				OrderNumber:  o.OrderNumber,
				CustomerName: fmt.Sprintf("customer-%d", o.CustomerID),
				ProductName:  o.ProductName,
				UnitsOrdered: o.UnitsOrdered,
				OrderTime:    o.OrderTime,
			})
		}
	}
	return out, nil
}

func (f *fakeOrders) PopularProducts(ctx context.Context, storeID int64, limit int) ([]order.ProductSales, error) {
	return nil, nil
}

func (f *fakeOrders) PopularCustomers(ctx context.Context, storeID int64, limit int) ([]order.CustomerSales, error) {
	return nil, nil
}

type fakeSupplies struct {
	warehouses []supply.Warehouse
	products   *fakeProducts
	placed     []supply.Request
}

func (f *fakeSupplies) Warehouses(ctx context.Context) ([]supply.Warehouse, error) {
	return f.warehouses, nil
}

func (f *fakeSupplies) Request(ctx context.Context, managerID, warehouseID, storeID int64, productName string, units int) (*supply.Request, error) {
	p, ok := f.products.products[productKey(storeID, productName)]
	if !ok {
		return nil, supply.ErrProductNotFound
	}
	p.NumberOfUnits += units
	req := supply.Request{
		RequestNumber:  int64(len(f.placed) + 1),
		ManagerID:      managerID,
		WarehouseID:    warehouseID,
		StoreID:        storeID,
		ProductName:    productName,
		UnitsRequested: units,
	}
	f.placed = append(f.placed, req)
	return &req, nil
}

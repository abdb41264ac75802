package service

import (
	"context"
	"time"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// fakeUserRepo is an in-memory repository.UserRepository. Create mirrors
// the real repository's contract: the first user stored gets admin.
type fakeUserRepo struct {
	users  []*model.User
	nextID int
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.Name == user.Name {
			return repository.ErrDuplicateName
		}
	}
	if len(f.users) == 0 {
		user.Role = model.RoleAdmin
	} else {
		user.Role = model.RoleUser
	}
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *fakeUserRepo) FindByName(_ context.Context, name string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Name == name {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

// fakeProductRepo is an in-memory repository.ProductRepository.
type fakeProductRepo struct {
	products []*model.Product
	nextID   int64
	err      error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{nextID: 1}
}

func (f *fakeProductRepo) FindAll(_ context.Context) ([]model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]model.Product, 0, len(f.products))
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id int64) (*model.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.products {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Create(_ context.Context, product *model.Product) error {
	if f.err != nil {
		return f.err
	}
	product.ID = f.nextID
	f.nextID++
	stored := *product
	f.products = append(f.products, &stored)
	return nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *model.Product) error {
	if f.err != nil {
		return f.err
	}
	for i, p := range f.products {
		if p.ID == product.ID {
			stored := *product
			f.products[i] = &stored
			return nil
		}
	}
	return repository.ErrProductNotFound
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return nil // idempotent
}

// fakeOrderRepo is an in-memory repository.OrderRepository that applies
// the same all-or-nothing semantics as the real transaction.
type fakeOrderRepo struct {
	orders   []*model.Order
	products *fakeProductRepo
	nextID   int64
	err      error
}

func newFakeOrderRepo(products *fakeProductRepo) *fakeOrderRepo {
	return &fakeOrderRepo{products: products, nextID: 1}
}

func (f *fakeOrderRepo) CreateWithStockDecrement(_ context.Context, order *model.Order, items []model.CartItem) error {
	if f.err != nil {
		return f.err
	}
	// Validate every decrement before applying any, mirroring rollback.
	for _, item := range items {
		found := false
		for _, p := range f.products.products {
			if p.ID == item.ProductID {
				found = true
				if p.Stock < item.Quantity {
					return repository.ErrInsufficientStock
				}
			}
		}
		if !found {
			return repository.ErrInsufficientStock
		}
	}
	for _, item := range items {
		for _, p := range f.products.products {
			if p.ID == item.ProductID {
				p.Stock -= item.Quantity
			}
		}
	}
	order.ID = f.nextID
	f.nextID++
	order.CreatedAt = time.Now()
	stored := *order
	f.orders = append(f.orders, &stored)
	return nil
}

func (f *fakeOrderRepo) FindByUserName(_ context.Context, name string) ([]model.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []model.Order
	for _, o := range f.orders {
		if o.UserName == name {
			out = append(out, *o)
		}
	}
	return out, nil
}

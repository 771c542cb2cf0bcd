package impl

import (
	"sync"
	"time"

	"maison/internal/domain/entity"
	"maison/internal/usecase"
)

// dashboardState is the single application-state container behind the admin
// console. Mutations happen only through confirmed-success patches or full
// refreshes; a refresh replaces a slice wholesale, so backend truth always
// wins over any optimistic patch eventually.
type dashboardState struct {
	mu sync.RWMutex

	orders        []*entity.Order
	products      []*entity.Product
	categories    []*entity.Category
	users         []*entity.User
	orderStats    *entity.OrderStats
	deliveryStats *entity.DeliveryStats
	refreshedAt   time.Time
}

// orderPatch describes the fields a delivery action is expected to change.
// Nil fields are left untouched when the patch is applied.
type orderPatch struct {
	orderStatus    *entity.OrderStatus
	deliveryStatus *entity.DeliveryStatus
	assignedTo     *string
	notes          *string
	deliveredAt    *time.Time
}

func newDashboardState() *dashboardState {
	return &dashboardState{}
}

func (s *dashboardState) snapshot() *usecase.DashboardSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &usecase.DashboardSnapshot{
		Orders:        make([]*entity.Order, len(s.orders)),
		Products:      make([]*entity.Product, len(s.products)),
		Categories:    make([]*entity.Category, len(s.categories)),
		Users:         make([]*entity.User, len(s.users)),
		OrderStats:    s.orderStats,
		DeliveryStats: s.deliveryStats,
		RefreshedAt:   s.refreshedAt,
	}
	copy(snap.Orders, s.orders)
	copy(snap.Products, s.products)
	copy(snap.Categories, s.categories)
	copy(snap.Users, s.users)

	return snap
}

func (s *dashboardState) setOrders(orders []*entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
	s.refreshedAt = time.Now()
}

func (s *dashboardState) setProducts(products []*entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
}

func (s *dashboardState) setCategories(categories []*entity.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = categories
}

func (s *dashboardState) setUsers(users []*entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
}

func (s *dashboardState) setOrderStats(stats *entity.OrderStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderStats = stats
}

func (s *dashboardState) setDeliveryStats(stats *entity.DeliveryStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deliveryStats = stats
}

// applyOrderPatch clones the matching order, applies the patch to the clone
// and swaps it in, so readers never observe a half-applied patch. Returns
// the patched copy, or false when the order is not in the snapshot.
func (s *dashboardState) applyOrderPatch(orderID string, patch orderPatch) (*entity.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, order := range s.orders {
		if order.ID != orderID {
			continue
		}

		patched := *order
		if patch.orderStatus != nil {
			patched.OrderStatus = *patch.orderStatus
		}
		if patch.deliveryStatus != nil {
			patched.DeliveryStatus = *patch.deliveryStatus
		}
		if patch.assignedTo != nil {
			patched.DeliveryAssignedTo = *patch.assignedTo
		}
		if patch.notes != nil {
			patched.DeliveryNotes = *patch.notes
		}
		if patch.deliveredAt != nil {
			patched.DeliveredAt = patch.deliveredAt
		}
		patched.UpdatedAt = time.Now()

		s.orders[i] = &patched

		return &patched, true
	}

	return nil, false
}

func (s *dashboardState) removeOrder(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, order := range s.orders {
		if order.ID == orderID {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)

			return true
		}
	}

	return false
}

func (s *dashboardState) removeProduct(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, product := range s.products {
		if product.ID == productID {
			s.products = append(s.products[:i], s.products[i+1:]...)

			return true
		}
	}

	return false
}

func (s *dashboardState) removeCategory(categoryID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, category := range s.categories {
		if category.ID == categoryID {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)

			return true
		}
	}

	return false
}

func (s *dashboardState) removeUser(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, user := range s.users {
		if user.Email == email {
			s.users = append(s.users[:i], s.users[i+1:]...)

			return true
		}
	}

	return false
}

func (s *dashboardState) upsertProduct(product *entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.products {
		if existing.ID == product.ID {
			s.products[i] = product

			return
		}
	}
	s.products = append(s.products, product)
}

func (s *dashboardState) upsertCategory(category *entity.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.categories {
		if existing.ID == category.ID {
			s.categories[i] = category

			return
		}
	}
	s.categories = append(s.categories, category)
}

func (s *dashboardState) upsertUser(user *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.users {
		if existing.Email == user.Email {
			s.users[i] = user

			return
		}
	}
	s.users = append(s.users, user)
}

func (s *dashboardState) pendingDeliveries() []*entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var pending []*entity.Order
	for _, order := range s.orders {
		if order.IsPendingDelivery() {
			pending = append(pending, order)
		}
	}

	return pending
}

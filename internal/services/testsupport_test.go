package services

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"sync"
	"testing"
	"time"

	"restaurant_backend/internal/models"
	"restaurant_backend/internal/repositories"
)

// --- In-memory *sql.DB for transactional code paths ---
//
// Services open transactions on the shared handle while the fake
// repositories below ignore the executor entirely, so the tests only need a
// driver whose Begin/Commit/Rollback succeed.

type noopDriver struct{}

func (noopDriver) Open(name string) (driver.Conn, error) { return noopConn{}, nil }

type noopConn struct{}

func (noopConn) Prepare(query string) (driver.Stmt, error) {
	return nil, errors.New("prepare is not supported by the noop driver")
}
func (noopConn) Close() error              { return nil }
func (noopConn) Begin() (driver.Tx, error) { return noopTx{}, nil }

type noopTx struct{}

func (noopTx) Commit() error   { return nil }
func (noopTx) Rollback() error { return nil }

var registerNoopDriver sync.Once

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	registerNoopDriver.Do(func() {
		sql.Register("noop", noopDriver{})
	})
	db, err := sql.Open("noop", "")
	if err != nil {
		t.Fatalf("opening noop database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// --- Fake repositories ---
//
// Each fake delegates to optional function fields. A method whose field is
// left nil reports not-found or returns empty data, so tests only wire the
// calls they care about.

type fakeCategoryRepo struct {
	createFn  func(category *models.Category) (int64, error)
	getByIDFn func(id int64) (*models.Category, error)
	listFn    func(page, limit int) ([]models.Category, int, error)
	updateFn  func(category *models.Category) error
	deleteFn  func(id int64) error
	countFn   func() (int, error)
}

func (f *fakeCategoryRepo) CreateCategory(_ repositories.SQLExecutor, category *models.Category) (int64, error) {
	if f.createFn == nil {
		return 0, errors.New("unexpected CreateCategory call")
	}
	return f.createFn(category)
}

func (f *fakeCategoryRepo) GetCategoryByID(id int64) (*models.Category, error) {
	if f.getByIDFn == nil {
		return nil, repositories.ErrNotFound
	}
	return f.getByIDFn(id)
}

func (f *fakeCategoryRepo) GetCategories(page, limit int) ([]models.Category, int, error) {
	if f.listFn == nil {
		return nil, 0, nil
	}
	return f.listFn(page, limit)
}

func (f *fakeCategoryRepo) UpdateCategory(_ repositories.SQLExecutor, category *models.Category) error {
	if f.updateFn == nil {
		return errors.New("unexpected UpdateCategory call")
	}
	return f.updateFn(category)
}

func (f *fakeCategoryRepo) DeleteCategory(_ repositories.SQLExecutor, id int64) error {
	if f.deleteFn == nil {
		return repositories.ErrNotFound
	}
	return f.deleteFn(id)
}

func (f *fakeCategoryRepo) CountCategories() (int, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn()
}

type fakeMenuRepo struct {
	createFn      func(item *models.MenuItem) (int64, error)
	getByIDFn     func(id int64) (*models.MenuItem, error)
	listFn        func(filters models.MenuItemFilters) ([]models.MenuItem, int, error)
	getByIDsFn    func(ids []int64) ([]models.MenuItem, error)
	availByCatFn  func(categoryID int64) ([]models.MenuItem, error)
	updateFn      func(item *models.MenuItem) error
	replaceTagsFn func(itemID int64, tags []models.MenuItemTag) error
	deleteFn      func(id int64) error
	countFn       func() (int, error)
}

func (f *fakeMenuRepo) CreateMenuItem(_ repositories.SQLExecutor, item *models.MenuItem) (int64, error) {
	if f.createFn == nil {
		return 0, errors.New("unexpected CreateMenuItem call")
	}
	return f.createFn(item)
}

func (f *fakeMenuRepo) GetMenuItemByID(id int64) (*models.MenuItem, error) {
	if f.getByIDFn == nil {
		return nil, repositories.ErrNotFound
	}
	return f.getByIDFn(id)
}

func (f *fakeMenuRepo) GetMenuItems(filters models.MenuItemFilters) ([]models.MenuItem, int, error) {
	if f.listFn == nil {
		return nil, 0, nil
	}
	return f.listFn(filters)
}

func (f *fakeMenuRepo) GetMenuItemsByIDs(ids []int64) ([]models.MenuItem, error) {
	if f.getByIDsFn == nil {
		return nil, nil
	}
	return f.getByIDsFn(ids)
}

func (f *fakeMenuRepo) GetAvailableByCategory(categoryID int64) ([]models.MenuItem, error) {
	if f.availByCatFn == nil {
		return nil, nil
	}
	return f.availByCatFn(categoryID)
}

func (f *fakeMenuRepo) UpdateMenuItem(_ repositories.SQLExecutor, item *models.MenuItem) error {
	if f.updateFn == nil {
		return errors.New("unexpected UpdateMenuItem call")
	}
	return f.updateFn(item)
}

func (f *fakeMenuRepo) ReplaceTags(_ repositories.SQLExecutor, itemID int64, tags []models.MenuItemTag) error {
	if f.replaceTagsFn == nil {
		return nil
	}
	return f.replaceTagsFn(itemID, tags)
}

func (f *fakeMenuRepo) DeleteMenuItem(_ repositories.SQLExecutor, id int64) error {
	if f.deleteFn == nil {
		return repositories.ErrNotFound
	}
	return f.deleteFn(id)
}

func (f *fakeMenuRepo) CountMenuItems() (int, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn()
}

type fakeOrderRepo struct {
	createOrderFn   func(order *models.Order) (int64, error)
	createItemFn    func(item *models.OrderItem) (int64, error)
	getByIDFn       func(orderID int64) (*models.Order, error)
	listFn          func(filters models.OrderFilters) ([]models.Order, int, error)
	itemsByOrderFn  func(orderID int64) ([]models.OrderItem, error)
	updateStatusFn  func(orderID int64, newStatus string) error
	updatePaymentFn func(orderID int64, paymentStatus string) error
	deleteFn        func(orderID int64) (int64, error)
	countFn         func() (int, error)
}

func (f *fakeOrderRepo) CreateOrder(_ repositories.SQLExecutor, order *models.Order) (int64, error) {
	if f.createOrderFn == nil {
		return 0, errors.New("unexpected CreateOrder call")
	}
	return f.createOrderFn(order)
}

func (f *fakeOrderRepo) CreateOrderItem(_ repositories.SQLExecutor, item *models.OrderItem) (int64, error) {
	if f.createItemFn == nil {
		return 0, errors.New("unexpected CreateOrderItem call")
	}
	return f.createItemFn(item)
}

func (f *fakeOrderRepo) GetOrderByID(orderID int64) (*models.Order, error) {
	if f.getByIDFn == nil {
		return nil, repositories.ErrNotFound
	}
	return f.getByIDFn(orderID)
}

func (f *fakeOrderRepo) GetOrders(filters models.OrderFilters) ([]models.Order, int, error) {
	if f.listFn == nil {
		return nil, 0, nil
	}
	return f.listFn(filters)
}

func (f *fakeOrderRepo) GetOrderItemsByOrderID(orderID int64) ([]models.OrderItem, error) {
	if f.itemsByOrderFn == nil {
		return nil, nil
	}
	return f.itemsByOrderFn(orderID)
}

func (f *fakeOrderRepo) UpdateOrderStatus(_ repositories.SQLExecutor, orderID int64, newStatus string, _ time.Time) error {
	if f.updateStatusFn == nil {
		return repositories.ErrNotFound
	}
	return f.updateStatusFn(orderID, newStatus)
}

func (f *fakeOrderRepo) UpdatePaymentStatus(_ repositories.SQLExecutor, orderID int64, paymentStatus string, _ time.Time) error {
	if f.updatePaymentFn == nil {
		return repositories.ErrNotFound
	}
	return f.updatePaymentFn(orderID, paymentStatus)
}

func (f *fakeOrderRepo) DeleteOrder(_ repositories.SQLExecutor, orderID int64) (int64, error) {
	if f.deleteFn == nil {
		return 0, repositories.ErrNotFound
	}
	return f.deleteFn(orderID)
}

func (f *fakeOrderRepo) CountOrders() (int, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn()
}

type fakeReservationRepo struct {
	createFn       func(reservation *models.Reservation) (int64, error)
	getByIDFn      func(id int64) (*models.Reservation, error)
	listFn         func(filters models.ReservationFilters) ([]models.Reservation, int, error)
	updateFn       func(reservation *models.Reservation) error
	updateStatusFn func(id int64, newStatus string) error
	deleteFn       func(id int64) error
	countFn        func() (int, error)
}

func (f *fakeReservationRepo) CreateReservation(_ repositories.SQLExecutor, reservation *models.Reservation) (int64, error) {
	if f.createFn == nil {
		return 0, errors.New("unexpected CreateReservation call")
	}
	return f.createFn(reservation)
}

func (f *fakeReservationRepo) GetReservationByID(id int64) (*models.Reservation, error) {
	if f.getByIDFn == nil {
		return nil, repositories.ErrNotFound
	}
	return f.getByIDFn(id)
}

func (f *fakeReservationRepo) GetReservations(filters models.ReservationFilters) ([]models.Reservation, int, error) {
	if f.listFn == nil {
		return nil, 0, nil
	}
	return f.listFn(filters)
}

func (f *fakeReservationRepo) UpdateReservation(_ repositories.SQLExecutor, reservation *models.Reservation) error {
	if f.updateFn == nil {
		return errors.New("unexpected UpdateReservation call")
	}
	return f.updateFn(reservation)
}

func (f *fakeReservationRepo) UpdateReservationStatus(_ repositories.SQLExecutor, id int64, newStatus string, _ time.Time) error {
	if f.updateStatusFn == nil {
		return repositories.ErrNotFound
	}
	return f.updateStatusFn(id, newStatus)
}

func (f *fakeReservationRepo) DeleteReservation(_ repositories.SQLExecutor, id int64) error {
	if f.deleteFn == nil {
		return repositories.ErrNotFound
	}
	return f.deleteFn(id)
}

func (f *fakeReservationRepo) CountReservations() (int, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn()
}

type fakeMessageRepo struct {
	createFn   func(message *models.Message) (int64, error)
	getByIDFn  func(id int64) (*models.Message, error)
	listFn     func(filters models.MessageFilters) ([]models.Message, int, error)
	updateFn   func(message *models.Message) error
	markReadFn func(id int64) error
	deleteFn   func(id int64) error
	countFn    func() (int, error)
}

func (f *fakeMessageRepo) CreateMessage(_ repositories.SQLExecutor, message *models.Message) (int64, error) {
	if f.createFn == nil {
		return 0, errors.New("unexpected CreateMessage call")
	}
	return f.createFn(message)
}

func (f *fakeMessageRepo) GetMessageByID(id int64) (*models.Message, error) {
	if f.getByIDFn == nil {
		return nil, repositories.ErrNotFound
	}
	return f.getByIDFn(id)
}

func (f *fakeMessageRepo) GetMessages(filters models.MessageFilters) ([]models.Message, int, error) {
	if f.listFn == nil {
		return nil, 0, nil
	}
	return f.listFn(filters)
}

func (f *fakeMessageRepo) UpdateMessage(_ repositories.SQLExecutor, message *models.Message) error {
	if f.updateFn == nil {
		return errors.New("unexpected UpdateMessage call")
	}
	return f.updateFn(message)
}

func (f *fakeMessageRepo) MarkRead(_ repositories.SQLExecutor, id int64, _ time.Time) error {
	if f.markReadFn == nil {
		return repositories.ErrNotFound
	}
	return f.markReadFn(id)
}

func (f *fakeMessageRepo) DeleteMessage(_ repositories.SQLExecutor, id int64) error {
	if f.deleteFn == nil {
		return repositories.ErrNotFound
	}
	return f.deleteFn(id)
}

func (f *fakeMessageRepo) CountMessages() (int, error) {
	if f.countFn == nil {
		return 0, nil
	}
	return f.countFn()
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }

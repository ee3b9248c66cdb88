package repository

import (
	"github.com/Sandip-364710/daily-tiffin-service/entity"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, it *entity.OrderItem) error {
	return tx.Create(it).Error
}

func (r *OrderRepository) GetByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetForCustomer(customerID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND customer_id = ?", orderID, customerID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetForProvider(providerID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND provider_id = ?", orderID, providerID).First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetForCourier returns the order only if it is assigned to the courier
// and currently in one of the given statuses.
func (r *OrderRepository) GetForCourier(courierID, orderID uint, statuses ...string) (*entity.Order, error) {
	q := r.DB.Where("id = ? AND delivery_person_id = ?", orderID, courierID)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	var o entity.Order
	if err := q.First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListForCustomer(customerID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("customer_id = ?", customerID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListForProvider(providerID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Where("provider_id = ?", providerID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListForCourier(courierID uint, statuses ...string) ([]entity.Order, error) {
	q := r.DB.Where("delivery_person_id = ?", courierID)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	var out []entity.Order
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) CountForProvider(providerID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Order{}).Where("provider_id = ?", providerID).Count(&count).Error
	return count, err
}

func (r *OrderRepository) GetItems(orderID uint) ([]entity.OrderItem, error) {
	var out []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&out).Error
	return out, err
}

func (r *OrderRepository) UpdateFields(tx *gorm.DB, orderID uint, updates map[string]any) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Updates(updates).Error
}

func (r *OrderRepository) AssignCourier(tx *gorm.DB, orderID, courierID uint) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("delivery_person_id", courierID).Error
}

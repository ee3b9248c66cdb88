package repository

import (
	"database/sql"
	"time"

	"github.com/Sandip-364710/daily-tiffin-service/entity"

	"gorm.io/gorm"
)

type AnalyticsRepository struct{ DB *gorm.DB }

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository { return &AnalyticsRepository{DB: db} }

// PopularTiffin pairs a catalog row with its popularity signals.
type PopularTiffin struct {
	Tiffin     entity.Tiffin
	OrderCount int64
	AvgRating  sql.NullFloat64
}

// PopularTiffins ranks by order-line count, tie-broken by mean item
// rating descending. Items with no orders are excluded.
func (r *AnalyticsRepository) PopularTiffins(limit int) ([]PopularTiffin, error) {
	type row struct {
		TiffinID   uint
		OrderCount int64
		AvgRating  sql.NullFloat64
	}
	var rows []row
	err := r.DB.Raw(`
		SELECT t.id AS tiffin_id,
		       COUNT(oi.id) AS order_count,
		       (SELECT AVG(rv.rating) FROM reviews rv
		         WHERE rv.tiffin_id = t.id AND rv.deleted_at IS NULL) AS avg_rating
		  FROM tiffins t
		  JOIN order_items oi ON oi.tiffin_id = t.id AND oi.deleted_at IS NULL
		 WHERE t.is_available = ? AND t.is_approved = ? AND t.deleted_at IS NULL
		 GROUP BY t.id
		HAVING COUNT(oi.id) > 0
		 ORDER BY order_count DESC, avg_rating DESC
		 LIMIT ?`, true, true, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]PopularTiffin, 0, len(rows))
	for _, rw := range rows {
		var t entity.Tiffin
		if err := r.DB.First(&t, rw.TiffinID).Error; err != nil {
			return nil, err
		}
		out = append(out, PopularTiffin{Tiffin: t, OrderCount: rw.OrderCount, AvgRating: rw.AvgRating})
	}
	return out, nil
}

func (r *AnalyticsRepository) VisibleTiffinsExcept(excludeID uint) ([]entity.Tiffin, error) {
	var out []entity.Tiffin
	err := r.DB.Where("is_available = ? AND is_approved = ? AND id <> ?", true, true, excludeID).
		Find(&out).Error
	return out, err
}

// DailyCount is one day's order-line count for an item.
type DailyCount struct {
	Day   string
	Count int64
}

func (r *AnalyticsRepository) DailyOrderCounts(tiffinID uint, since time.Time) ([]DailyCount, error) {
	var out []DailyCount
	err := r.DB.Raw(`
		SELECT DATE(o.created_at) AS day, COUNT(oi.id) AS count
		  FROM order_items oi
		  JOIN orders o ON o.id = oi.order_id AND o.deleted_at IS NULL
		 WHERE oi.tiffin_id = ? AND oi.deleted_at IS NULL AND o.created_at >= ?
		 GROUP BY DATE(o.created_at)
		 ORDER BY day`, tiffinID, since).Scan(&out).Error
	return out, err
}

// CustomerStat aggregates one customer's lifetime orders with a provider's
// catalog in scope.
type CustomerStat struct {
	CustomerID uint
	OrderCount int64
	TotalSpent sql.NullFloat64
}

func (r *AnalyticsRepository) CustomerStatsForProvider(providerID uint) ([]CustomerStat, error) {
	var out []CustomerStat
	err := r.DB.Raw(`
		SELECT o.customer_id AS customer_id,
		       COUNT(DISTINCT o.id) AS order_count,
		       SUM(o.total_amount) AS total_spent
		  FROM orders o
		 WHERE o.provider_id = ? AND o.deleted_at IS NULL
		 GROUP BY o.customer_id`, providerID).Scan(&out).Error
	return out, err
}

// CountCustomers counts customer-role accounts; segmentation derives the
// inactive bucket from those that never ordered.
func (r *AnalyticsRepository) CountCustomers() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("role = ?", entity.RoleCustomer).Count(&count).Error
	return count, err
}

// OrderedTiffinIDs lists distinct items a customer has ever ordered.
func (r *AnalyticsRepository) OrderedTiffinIDs(customerID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.customer_id = ?", customerID).
		Distinct("order_items.tiffin_id").Pluck("order_items.tiffin_id", &ids).Error
	return ids, err
}

// SimilarCustomers finds other customers who ordered from the same set of
// items, most overlap first.
func (r *AnalyticsRepository) SimilarCustomers(customerID uint, tiffinIDs []uint, limit int) ([]uint, error) {
	if len(tiffinIDs) == 0 {
		return nil, nil
	}
	var ids []uint
	err := r.DB.Raw(`
		SELECT o.customer_id
		  FROM orders o
		  JOIN order_items oi ON oi.order_id = o.id AND oi.deleted_at IS NULL
		 WHERE oi.tiffin_id IN ? AND o.customer_id <> ? AND o.deleted_at IS NULL
		 GROUP BY o.customer_id
		 ORDER BY COUNT(DISTINCT oi.tiffin_id) DESC
		 LIMIT ?`, tiffinIDs, customerID, limit).Scan(&ids).Error
	return ids, err
}

// TiffinsOrderedBy returns visible items ordered by the given customers,
// excluding a set of already-known item ids, by popularity.
func (r *AnalyticsRepository) TiffinsOrderedBy(customerIDs, excludeTiffinIDs []uint, limit int) ([]entity.Tiffin, error) {
	if len(customerIDs) == 0 {
		return nil, nil
	}
	q := r.DB.Model(&entity.Tiffin{}).
		Joins("JOIN order_items oi ON oi.tiffin_id = tiffins.id").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("o.customer_id IN ?", customerIDs).
		Where("tiffins.is_available = ? AND tiffins.is_approved = ?", true, true)
	if len(excludeTiffinIDs) > 0 {
		q = q.Where("tiffins.id NOT IN ?", excludeTiffinIDs)
	}
	var out []entity.Tiffin
	err := q.Group("tiffins.id").Order("COUNT(oi.id) DESC").Limit(limit).Find(&out).Error
	return out, err
}

// MarketAvgPrice is the mean price of visible items in the same category
// and provider city, excluding the item itself.
func (r *AnalyticsRepository) MarketAvgPrice(categoryID *uint, city string, excludeID uint) (sql.NullFloat64, error) {
	q := r.DB.Model(&entity.Tiffin{}).
		Joins("JOIN provider_profiles pp ON pp.id = tiffins.provider_id").
		Joins("JOIN users pu ON pu.id = pp.user_id").
		Where("tiffins.is_available = ? AND tiffins.is_approved = ? AND tiffins.id <> ?", true, true, excludeID).
		Where("pu.city = ?", city)
	if categoryID != nil {
		q = q.Where("tiffins.category_id = ?", *categoryID)
	}
	var avg sql.NullFloat64
	err := q.Select("AVG(tiffins.price)").Scan(&avg).Error
	return avg, err
}

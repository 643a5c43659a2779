package gormstore

import (
	"context"
	"errors"

	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/core/domain/model/order"
	"foodrun/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository over the orders table.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates an order repository on the given connection
// or transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := orderFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := orderFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return orderToDomain(dto)
}

// NextID allocates one past the highest stored ID, recomputed per call so
// externally deleted rows free their IDs.
func (r *GormOrderRepository) NextID(ctx context.Context) (kernel.OrderID, error) {
	var last int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&last).Error
	if err != nil {
		return kernel.OrderID{}, err
	}

	return kernel.NewOrderID(last + 1)
}

// GetByCustomer retrieves the customer's orders, newest first.
func (r *GormOrderRepository) GetByCustomer(ctx context.Context, customer string) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("customer = ?", customer).
		Order("id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllPending retrieves unclaimed orders in ascending ID order.
func (r *GormOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", order.Pending.String()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAllClaimedBy retrieves the driver's undelivered claims in ascending ID
// order.
func (r *GormOrderRepository) GetAllClaimedBy(ctx context.Context, driver string) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND driver = ?", order.Claimed.String(), driver).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	aggregates := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := orderToDomain(dto)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, aggregate)
	}
	return aggregates, nil
}

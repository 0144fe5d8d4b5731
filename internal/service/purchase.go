package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fothel/collectorvault/internal/models"
)

var (
	ErrNotFound   = errors.New("not found")    // 404
	ErrOutOfStock = errors.New("out of stock") // 400
)

type PurchaseService struct {
	DB *gorm.DB
}

// Buy decrements stock for one product and appends the order record in a
// single transaction. The stock check and decrement are one conditional
// UPDATE, so two buyers racing on the last unit cannot both succeed: the
// second UPDATE matches zero rows and the transaction rolls back.
func (s *PurchaseService) Buy(ctx context.Context, username string, productID int) (*models.Order, error) {
	var order *models.Order

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: product %d", ErrNotFound, productID)
			}
			return err
		}

		res := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= 1", productID).
			UpdateColumn("stock", gorm.Expr("stock - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", ErrOutOfStock, product.Name)
		}

		order = &models.Order{
			Username:    username,
			ProductName: product.Name,
			Price:       product.Price,
			Status:      models.OrderStatusCompleted,
		}
		return tx.Create(order).Error
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (s *PurchaseService) ListOrders(ctx context.Context, username string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.DB.WithContext(ctx).
		Where("username = ?", username).
		Order("created_at DESC, id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

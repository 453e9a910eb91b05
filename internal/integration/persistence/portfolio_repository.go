// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/owner-portal/backend/internal/application/adapter"
	"github.com/owner-portal/backend/internal/domain/entity"
	"github.com/owner-portal/backend/internal/integration/persistence/model"
)

// portfolioRepository implements the adapter.PortfolioRepository interface.
type portfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository creates a new portfolio repository instance.
func NewPortfolioRepository(db *gorm.DB) adapter.PortfolioRepository {
	return &portfolioRepository{
		db: db,
	}
}

// FindPropertyByID retrieves a property by its ID. It returns nil without an
// error when the property does not exist.
func (r *portfolioRepository) FindPropertyByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var propertyModel model.PropertyModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&propertyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return propertyModel.ToEntity(), nil
}

// ListPropertiesByOwner retrieves all properties of an owner, ordered by name.
func (r *portfolioRepository) ListPropertiesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Property, error) {
	var propertyModels []model.PropertyModel
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name ASC").
		Find(&propertyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	properties := make([]*entity.Property, len(propertyModels))
	for i := range propertyModels {
		properties[i] = propertyModels[i].ToEntity()
	}
	return properties, nil
}

// ListPropertyIDs retrieves the IDs of every property.
func (r *portfolioRepository) ListPropertyIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	result := r.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Order("created_at ASC").
		Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

// LoadSnapshot reads the bookings, leases and statements of a property.
// Records are returned as stored; filtering is left to the forecasting engine.
func (r *portfolioRepository) LoadSnapshot(ctx context.Context, propertyID uuid.UUID) (*entity.PropertySnapshot, error) {
	db := r.db.WithContext(ctx)

	var bookingModels []model.ShortTermBookingModel
	if err := db.Where("property_id = ?", propertyID).
		Order("check_in ASC").
		Order("id ASC").
		Find(&bookingModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load short-term bookings: %w", err)
	}

	var leaseModels []model.MidTermLeaseModel
	if err := db.Where("property_id = ?", propertyID).
		Order("start_date ASC").
		Order("id ASC").
		Find(&leaseModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load mid-term leases: %w", err)
	}

	var statementModels []model.ReconciledStatementModel
	if err := db.Where("property_id = ?", propertyID).
		Order("period DESC").
		Find(&statementModels).Error; err != nil {
		return nil, fmt.Errorf("failed to load reconciled statements: %w", err)
	}

	snapshot := &entity.PropertySnapshot{
		PropertyID: propertyID,
		ShortTerm:  make([]entity.ShortTermBooking, len(bookingModels)),
		MidTerm:    make([]entity.MidTermLease, len(leaseModels)),
		Statements: make([]entity.ReconciledStatement, len(statementModels)),
		FetchedAt:  time.Now().UTC(),
	}
	for i := range bookingModels {
		snapshot.ShortTerm[i] = bookingModels[i].ToEntity()
	}
	for i := range leaseModels {
		snapshot.MidTerm[i] = leaseModels[i].ToEntity()
	}
	for i := range statementModels {
		snapshot.Statements[i] = statementModels[i].ToEntity()
	}

	return snapshot, nil
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"propwrite/internal/model"
)

// ProposalRepository defines proposal persistence operations. Proposals are
// append-only: there is no update or delete.
type ProposalRepository interface {
	Create(ctx context.Context, proposal *model.Proposal) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Proposal, error)
	ListByUserID(ctx context.Context, userID uint) ([]model.Proposal, error)
}

type proposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository creates a new proposal repository.
func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &proposalRepository{db: db}
}

// Create inserts a new proposal record.
func (r *proposalRepository) Create(ctx context.Context, proposal *model.Proposal) error {
	return r.db.WithContext(ctx).Create(proposal).Error
}

// FindByID finds a proposal by ID.
func (r *proposalRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Proposal, error) {
	var proposal model.Proposal
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&proposal).Error; err != nil {
		return nil, err
	}
	return &proposal, nil
}

// ListByUserID returns a user's proposals, newest first.
func (r *proposalRepository) ListByUserID(ctx context.Context, userID uint) ([]model.Proposal, error) {
	var proposals []model.Proposal
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&proposals).Error; err != nil {
		return nil, err
	}
	return proposals, nil
}

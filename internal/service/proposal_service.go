package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "propwrite/internal/errors"
	"propwrite/internal/llm"
	"propwrite/internal/model"
	"propwrite/internal/repository"
)

// generationTemperature is the fixed sampling temperature for all generations.
const generationTemperature = 0.7

// ProposalService handles proposal generation and retrieval.
type ProposalService interface {
	Generate(ctx context.Context, userID uint, description, tone string) (string, error)
	GetProposal(ctx context.Context, userID uint, id uuid.UUID) (*model.Proposal, error)
	ListProposals(ctx context.Context, userID uint) ([]model.Proposal, error)
}

type proposalService struct {
	userRepo     repository.UserRepository
	proposalRepo repository.ProposalRepository
	quota        *QuotaTracker
	generator    llm.Generator
}

// NewProposalService creates a new proposal service.
func NewProposalService(
	userRepo repository.UserRepository,
	proposalRepo repository.ProposalRepository,
	quota *QuotaTracker,
	generator llm.Generator,
) ProposalService {
	return &proposalService{
		userRepo:     userRepo,
		proposalRepo: proposalRepo,
		quota:        quota,
		generator:    generator,
	}
}

// Generate runs the full pipeline: resolve user, admit quota, build prompt,
// invoke the generator, persist the proposal, commit the quota increment.
// Strictly linear with early exit at each stage; no retries.
func (s *proposalService) Generate(ctx context.Context, userID uint, description, tone string) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		log.Printf("generate: resolve user %d: %v", userID, err)
		return "", apperrors.ErrUnauthenticated
	}

	current, today, err := s.quota.Admit(ctx, user.ID)
	if err != nil {
		return "", err
	}

	prompt, maxTokens := BuildPrompt(description, tone)

	content, err := s.generator.Complete(ctx, prompt, generationTemperature, maxTokens)
	if err != nil {
		return "", err
	}
	if content == "" {
		return "", apperrors.ErrGenerationEmpty
	}

	proposal := &model.Proposal{
		UserID:  user.ID,
		Title:   description, // full text, never truncated
		Content: content,
		Tone:    tone, // raw requested value, even when the neutral clause applied
	}
	if err := s.proposalRepo.Create(ctx, proposal); err != nil {
		log.Printf("generate: save proposal for user %d: %v", user.ID, err)
		return "", &apperrors.SaveFailedError{Content: content, Err: err}
	}

	// Best effort: a failed counter write never takes back the saved proposal.
	s.quota.Commit(ctx, user.ID, current, today)

	return content, nil
}

// GetProposal returns one of the user's proposals. Proposals owned by another
// user are reported as not found.
func (s *proposalService) GetProposal(ctx context.Context, userID uint, id uuid.UUID) (*model.Proposal, error) {
	proposal, err := s.proposalRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProposalNotFound
		}
		return nil, err
	}
	if proposal.UserID != userID {
		return nil, apperrors.ErrProposalNotFound
	}
	return proposal, nil
}

// ListProposals returns the user's proposals, newest first.
func (s *proposalService) ListProposals(ctx context.Context, userID uint) ([]model.Proposal, error) {
	return s.proposalRepo.ListByUserID(ctx, userID)
}

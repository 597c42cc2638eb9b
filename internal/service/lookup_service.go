package service

import (
	"context"

	"github.com/campushq/placement-api/internal/dto"
	"github.com/campushq/placement-api/internal/repository"
)

// LookupService serves the reference data backing registration and profile forms.
type LookupService interface {
	ListBranches(ctx context.Context) ([]dto.BranchResponse, error)
	ListSkills(ctx context.Context) ([]dto.SkillResponse, error)
}

type lookupService struct {
	lookups repository.LookupRepository
}

// NewLookupService builds the lookup service.
func NewLookupService(lookups repository.LookupRepository) LookupService {
	return &lookupService{lookups: lookups}
}

func (s *lookupService) ListBranches(ctx context.Context) ([]dto.BranchResponse, error) {
	branches, err := s.lookups.ListBranches(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.BranchResponse, 0, len(branches))
	for _, branch := range branches {
		responses = append(responses, dto.BranchResponse{BranchCode: branch.Code, BranchName: branch.Name})
	}

	return responses, nil
}

func (s *lookupService) ListSkills(ctx context.Context) ([]dto.SkillResponse, error) {
	skills, err := s.lookups.ListSkills(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewSkillResponseSlice(skills), nil
}

package services

import (
	"context"

	"github.com/Tomas-vilte/MatePick/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockGitService struct {
	mock.Mock
}

func (m *MockGitService) RevParse(ctx context.Context, reference string) (models.GitResult, error) {
	args := m.Called(ctx, reference)
	return args.Get(0).(models.GitResult), args.Error(1)
}

func (m *MockGitService) CatFile(ctx context.Context, sha string) (models.GitResult, error) {
	args := m.Called(ctx, sha)
	return args.Get(0).(models.GitResult), args.Error(1)
}

func (m *MockGitService) CherryPick(ctx context.Context, sha string) (models.GitResult, error) {
	args := m.Called(ctx, sha)
	return args.Get(0).(models.GitResult), args.Error(1)
}

func (m *MockGitService) AmendCommit(ctx context.Context, message string) (models.GitResult, error) {
	args := m.Called(ctx, message)
	return args.Get(0).(models.GitResult), args.Error(1)
}

func (m *MockGitService) RequireMinVersion(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

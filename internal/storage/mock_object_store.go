package storage

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Upload(ctx context.Context, localPath string) (UploadResult, error) {
	args := m.Called(ctx, localPath)
	return args.Get(0).(UploadResult), args.Error(1)
}

func (m *MockObjectStore) DeleteByURL(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

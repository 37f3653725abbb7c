package blogservice

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetBlogs(ctx context.Context) ([]Blog, error) {
	args := m.Called(ctx)
	blogs, _ := args.Get(0).([]Blog)
	return blogs, args.Error(1)
}

func (m *MockStore) InsertBlog(ctx context.Context, blog *Blog) error {
	args := m.Called(ctx, blog)
	return args.Error(0)
}

func (m *MockStore) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) UpdateBlog(ctx context.Context, id primitive.ObjectID, blog *Blog) (*Blog, error) {
	args := m.Called(ctx, id, blog)
	updated, _ := args.Get(0).(*Blog)
	return updated, args.Error(1)
}

package blogservice

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Blog is a single blog-list entry. ID is the hex form of the ObjectID assigned on insert.
type Blog struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// BlogInput carries the client supplied fields for create and update.
type BlogInput struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// Store is the persistence adapter behind BlogService. Implementations return
// ErrRecordNotFound when DeleteBlog or UpdateBlog match nothing.
type Store interface {
	GetBlogs(ctx context.Context) ([]Blog, error)
	InsertBlog(ctx context.Context, blog *Blog) error
	DeleteBlog(ctx context.Context, id primitive.ObjectID) error
	UpdateBlog(ctx context.Context, id primitive.ObjectID, blog *Blog) (*Blog, error)
}

type BlogService struct {
	s Store
}

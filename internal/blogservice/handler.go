package blogservice

import (
	"context"
	"errors"

	"github.com/sushihentaime/bloglist/internal/common"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrMalformedID    = errors.New("malformed id")
)

func NewBlogService(s Store) *BlogService {
	return &BlogService{s: s}
}

// GetBlogs returns every stored blog. The result is never nil.
func (s *BlogService) GetBlogs(ctx context.Context) ([]Blog, error) {
	blogs, err := s.s.GetBlogs(ctx)
	if err != nil {
		return nil, err
	}

	if blogs == nil {
		blogs = []Blog{}
	}

	return blogs, nil
}

// CreateBlog validates the input and stores a new blog. Likes default to zero.
func (s *BlogService) CreateBlog(ctx context.Context, in *BlogInput) (*Blog, error) {
	v := common.NewValidator()
	validateBlog(v, in)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog := &Blog{
		Title:  in.Title,
		Author: in.Author,
		URL:    in.URL,
		Likes:  in.Likes,
	}

	err := s.s.InsertBlog(ctx, blog)
	if err != nil {
		return nil, err
	}

	return blog, nil
}

// DeleteBlog removes a blog. It returns ErrMalformedID when id is not an ObjectID
// and ErrRecordNotFound when no blog has that id.
func (s *BlogService) DeleteBlog(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	return s.s.DeleteBlog(ctx, oid)
}

// UpdateBlog replaces all fields of a blog. The id is checked first, then the
// input, then whether the blog exists.
func (s *BlogService) UpdateBlog(ctx context.Context, id string, in *BlogInput) (*Blog, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	v := common.NewValidator()
	validateBlog(v, in)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	blog := &Blog{
		Title:  in.Title,
		Author: in.Author,
		URL:    in.URL,
		Likes:  in.Likes,
	}

	return s.s.UpdateBlog(ctx, oid, blog)
}

package blogservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/sushihentaime/bloglist/internal/common"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testID = "5a422a851b54a676234d17f7"

func TestGetBlogs(t *testing.T) {
	testCases := []struct {
		name    string
		stored  []Blog
		err     error
		want    []Blog
		wantErr error
	}{
		{
			name:   "some blogs",
			stored: []Blog{{ID: testID, Title: "React patterns", URL: "https://reactpatterns.com/", Likes: 7}},
			want:   []Blog{{ID: testID, Title: "React patterns", URL: "https://reactpatterns.com/", Likes: 7}},
		},
		{
			name:   "empty collection",
			stored: nil,
			want:   []Blog{},
		},
		{
			name:    "store failure",
			err:     errors.New("connection refused"),
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := new(MockStore)
			store.On("GetBlogs", mock.Anything).Return(tc.stored, tc.err)

			blogs, err := NewBlogService(store).GetBlogs(context.Background())
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.want, blogs)

			store.AssertExpectations(t)
		})
	}
}

func TestCreateBlog(t *testing.T) {
	testCases := []struct {
		name        string
		in          *BlogInput
		expectStore bool
		want        *Blog
		expectedErr error
	}{
		{
			name:        "valid blog",
			in:          &BlogInput{Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", Likes: 5},
			expectStore: true,
			want:        &Blog{ID: testID, Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", Likes: 5},
		},
		{
			name:        "likes default to zero",
			in:          &BlogInput{Title: "some blog", URL: "http://someblog.com"},
			expectStore: true,
			want:        &Blog{ID: testID, Title: "some blog", URL: "http://someblog.com", Likes: 0},
		},
		{
			name:        "missing title",
			in:          &BlogInput{Author: "Some Author", URL: "http://someblog.com", Likes: 3},
			expectedErr: common.ValidationError{Errors: map[string]string{"title": "must be provided"}},
		},
		{
			name:        "missing url",
			in:          &BlogInput{Title: "some blog", Author: "Some Author", Likes: 3},
			expectedErr: common.ValidationError{Errors: map[string]string{"url": "must be provided"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := new(MockStore)
			if tc.expectStore {
				store.On("InsertBlog", mock.Anything, mock.AnythingOfType("*blogservice.Blog")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*Blog).ID = testID
					}).
					Return(nil)
			}

			blog, err := NewBlogService(store).CreateBlog(context.Background(), tc.in)
			assert.Equal(t, tc.expectedErr, err)
			assert.Equal(t, tc.want, blog)

			store.AssertExpectations(t)
		})
	}
}

func TestDeleteBlog(t *testing.T) {
	oid, _ := primitive.ObjectIDFromHex(testID)

	testCases := []struct {
		name        string
		id          string
		storeErr    error
		expectStore bool
		expectedErr error
	}{
		{
			name:        "existing blog",
			id:          testID,
			expectStore: true,
		},
		{
			name:        "missing blog",
			id:          testID,
			storeErr:    ErrRecordNotFound,
			expectStore: true,
			expectedErr: ErrRecordNotFound,
		},
		{
			name:        "malformed id",
			id:          "123456",
			expectedErr: ErrMalformedID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := new(MockStore)
			if tc.expectStore {
				store.On("DeleteBlog", mock.Anything, oid).Return(tc.storeErr)
			}

			err := NewBlogService(store).DeleteBlog(context.Background(), tc.id)
			assert.Equal(t, tc.expectedErr, err)

			store.AssertExpectations(t)
		})
	}
}

func TestUpdateBlog(t *testing.T) {
	oid, _ := primitive.ObjectIDFromHex(testID)
	valid := &BlogInput{Title: "updated", Author: "updated", URL: "updated", Likes: 222}
	updated := &Blog{ID: testID, Title: "updated", Author: "updated", URL: "updated", Likes: 222}

	testCases := []struct {
		name        string
		id          string
		in          *BlogInput
		expectStore bool
		stored      *Blog
		storeErr    error
		want        *Blog
		expectedErr error
	}{
		{
			name:        "existing blog",
			id:          testID,
			in:          valid,
			expectStore: true,
			stored:      updated,
			want:        updated,
		},
		{
			name:        "missing blog",
			id:          testID,
			in:          valid,
			expectStore: true,
			storeErr:    ErrRecordNotFound,
			expectedErr: ErrRecordNotFound,
		},
		{
			name:        "malformed id wins over invalid input",
			id:          "123456",
			in:          &BlogInput{},
			expectedErr: ErrMalformedID,
		},
		{
			name:        "invalid input",
			id:          testID,
			in:          &BlogInput{Title: "updated"},
			expectedErr: common.ValidationError{Errors: map[string]string{"url": "must be provided"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := new(MockStore)
			if tc.expectStore {
				store.On("UpdateBlog", mock.Anything, oid, &Blog{Title: tc.in.Title, Author: tc.in.Author, URL: tc.in.URL, Likes: tc.in.Likes}).
					Return(tc.stored, tc.storeErr)
			}

			blog, err := NewBlogService(store).UpdateBlog(context.Background(), tc.id, tc.in)
			assert.Equal(t, tc.expectedErr, err)
			assert.Equal(t, tc.want, blog)

			store.AssertExpectations(t)
		})
	}
}

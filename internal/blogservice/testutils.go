package blogservice

import (
	"context"
	"testing"

	"github.com/sushihentaime/bloglist/internal/common"
	"go.mongodb.org/mongo-driver/bson"
)

// TestStore is a Store running in a throwaway container that tests can empty and seed.
type TestStore struct {
	Store
	reset func() error
}

// Reset removes every blog.
func (s TestStore) Reset(t *testing.T) {
	t.Helper()

	if err := s.reset(); err != nil {
		t.Fatalf("could not reset store: %v", err)
	}
}

// Seed empties the store and inserts blogs in order, returning them with their ids.
func (s TestStore) Seed(t *testing.T, blogs []Blog) []Blog {
	t.Helper()

	s.Reset(t)

	seeded := make([]Blog, 0, len(blogs))
	for _, b := range blogs {
		if err := s.InsertBlog(context.Background(), &b); err != nil {
			t.Fatalf("could not seed blog %q: %v", b.Title, err)
		}
		seeded = append(seeded, b)
	}

	return seeded
}

// TestStores starts one container per backend and returns a TestStore for each,
// keyed by driver name. migrations locates the SQL files relative to the caller,
// e.g. "file://../../migrations".
func TestStores(migrations string, t *testing.T) map[string]TestStore {
	t.Helper()

	client := common.TestMongo(t)
	mongoModel := NewMongoModel(client.Database("bloglist_test"))
	if err := mongoModel.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("could not create blogs collection: %v", err)
	}

	db := common.TestDB(migrations, t)

	return map[string]TestStore{
		"mongo": {
			Store: mongoModel,
			reset: func() error {
				_, err := mongoModel.coll.DeleteMany(context.Background(), bson.D{})
				return err
			},
		},
		"postgres": {
			Store: NewPostgresModel(db),
			reset: func() error {
				_, err := db.Exec("DELETE FROM blogs")
				return err
			},
		},
	}
}

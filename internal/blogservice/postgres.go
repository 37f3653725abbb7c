package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/sushihentaime/bloglist/internal/common"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var _ Store = (*PostgresModel)(nil)

type PostgresModel struct {
	db *sql.DB
}

// NewPostgresModel returns a Store backed by the blogs table created by the migrations.
// Ids are ObjectIDs generated by the application and kept in their hex form.
func NewPostgresModel(db *sql.DB) *PostgresModel {
	return &PostgresModel{db: db}
}

// checkViolation turns a CHECK constraint failure on the blogs table into a
// ValidationError keyed by the offending column. likes is the only integer
// column, so an out of range value is reported against it.
func checkViolation(err error) (common.ValidationError, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return common.ValidationError{}, false
	}

	switch pqErr.Code {
	case "23514":
		field := strings.TrimSuffix(strings.TrimPrefix(pqErr.Constraint, "blogs_"), "_check")
		return common.ValidationError{Errors: map[string]string{field: "rejected by the database"}}, true
	case "22003":
		return common.ValidationError{Errors: map[string]string{"likes": "out of range"}}, true
	default:
		return common.ValidationError{}, false
	}
}

func (m *PostgresModel) GetBlogs(ctx context.Context) ([]Blog, error) {
	query := `
		SELECT id, title, author, url, likes
		FROM blogs
		ORDER BY id COLLATE "C"`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []Blog{}
	for rows.Next() {
		var blog Blog
		err := rows.Scan(&blog.ID, &blog.Title, &blog.Author, &blog.URL, &blog.Likes)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

func (m *PostgresModel) InsertBlog(ctx context.Context, blog *Blog) error {
	query := `
		INSERT INTO blogs (id, title, author, url, likes)
		VALUES ($1, $2, $3, $4, $5)`

	id := primitive.NewObjectID().Hex()

	_, err := m.db.ExecContext(ctx, query, id, blog.Title, blog.Author, blog.URL, blog.Likes)
	if err != nil {
		if verr, ok := checkViolation(err); ok {
			return verr
		}
		return fmt.Errorf("insert blog: %w", err)
	}

	blog.ID = id

	return nil
}

func (m *PostgresModel) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	query := `
		DELETE FROM blogs
		WHERE id = $1`

	res, err := m.db.ExecContext(ctx, query, id.Hex())
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}

func (m *PostgresModel) UpdateBlog(ctx context.Context, id primitive.ObjectID, blog *Blog) (*Blog, error) {
	query := `
		UPDATE blogs
		SET title = $1, author = $2, url = $3, likes = $4
		WHERE id = $5
		RETURNING id, title, author, url, likes`

	var updated Blog
	err := m.db.QueryRowContext(ctx, query, blog.Title, blog.Author, blog.URL, blog.Likes, id.Hex()).
		Scan(&updated.ID, &updated.Title, &updated.Author, &updated.URL, &updated.Likes)
	if err != nil {
		if verr, ok := checkViolation(err); ok {
			return nil, verr
		}
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &updated, nil
}

package blogservice

import (
	"math"

	"github.com/sushihentaime/bloglist/internal/common"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	maxTitleBytes  = 300
	maxAuthorBytes = 200
	maxURLBytes    = 2048
)

func validateBlog(v *common.Validator, in *BlogInput) {
	validateTitle(v, in.Title)
	validateAuthor(v, in.Author)
	validateURL(v, in.URL)
	validateLikes(v, in.Likes)
}

func validateTitle(v *common.Validator, title string) {
	v.Check(v.NotBlank(title), "title", "must be provided")
	v.Check(v.MaxBytes(title, maxTitleBytes), "title", "must not be more than 300 bytes long")
}

func validateAuthor(v *common.Validator, author string) {
	v.Check(v.MaxBytes(author, maxAuthorBytes), "author", "must not be more than 200 bytes long")
}

// The url is not parsed; any non-blank text is accepted.
func validateURL(v *common.Validator, url string) {
	v.Check(v.NotBlank(url), "url", "must be provided")
	v.Check(v.MaxBytes(url, maxURLBytes), "url", "must not be more than 2048 bytes long")
}

func validateLikes(v *common.Validator, likes int) {
	v.Check(likes >= 0, "likes", "must not be negative")
	v.Check(likes <= math.MaxInt32, "likes", "must not be more than 2147483647")
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrMalformedID
	}

	return oid, nil
}

package repositories

import (
	"strings"

	"github.com/anonto42/blogsphere/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// BuildPostFilter combines the optional category and free-text predicates with a
// logical AND. Empty inputs are treated as absent, so no input yields a match-all filter.
func BuildPostFilter(category, searchText string) bson.M {
	filter := bson.M{}
	if category != "" {
		filter[models.PostFieldCategory] = category
	}
	if search := strings.TrimSpace(searchText); search != "" {
		filter["$text"] = bson.M{"$search": search}
	}
	return filter
}

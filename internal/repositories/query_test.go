package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildPostFilter(t *testing.T) {
	tests := []struct {
		name       string
		category   string
		searchText string
		want       bson.M
	}{
		{name: "no filters", want: bson.M{}},
		{name: "category only", category: "tech", want: bson.M{"category": "tech"}},
		{
			name:       "search only",
			searchText: "golang",
			want:       bson.M{"$text": bson.M{"$search": "golang"}},
		},
		{
			name:       "both",
			category:   "tech",
			searchText: " golang ",
			want:       bson.M{"category": "tech", "$text": bson.M{"$search": "golang"}},
		},
		{name: "blank search is absent", searchText: "   ", want: bson.M{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildPostFilter(tt.category, tt.searchText))
		})
	}
}

package models

import (
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Slug      string             `bson:"slug" json:"slug"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a category name.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugCleaner.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

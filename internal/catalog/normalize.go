package catalog

import "github.com/angelmondragon/storegate/pkg/normalize"

// NormalizeProduct converts one raw product record into the canonical shape,
// tolerating every field-naming convention the backend has shipped.
func NormalizeProduct(o normalize.Object) Product {
	return Product{
		ID:          o.String("id", "_id"),
		Name:        o.String("name"),
		Description: o.String("description"),
		Price:       o.Float("price"),
		Stock:       o.Int("stock"),
		ImageURL:    o.StringPtr("imageUrl", "image_url"),
		CategoryID:  o.String("categoryId", "category_id"),
		Category:    normalizeCategorySummary(o),
		Reviews:     normalizeReviews(o),
		CreatedAt:   o.String("createdAt", "created_at"),
		UpdatedAt:   o.String("updatedAt", "updated_at"),
	}
}

func normalizeCategorySummary(o normalize.Object) *CategorySummary {
	nested, ok := o.Object("category")
	if !ok {
		return nil
	}
	return &CategorySummary{
		ID:       nested.String("id", "_id"),
		Name:     nested.String("name"),
		ImageURL: nested.StringPtr("imageUrl", "image_url"),
	}
}

func normalizeReviews(o normalize.Object) []Review {
	raw := o.Objects("reviews")
	reviews := make([]Review, 0, len(raw))
	for _, record := range raw {
		reviews = append(reviews, NormalizeReview(record))
	}
	return reviews
}

// NormalizeReview converts one raw review record.
func NormalizeReview(o normalize.Object) Review {
	return Review{
		ID:        o.String("id", "_id"),
		UserID:    o.String("userId", "user_id"),
		UserName:  o.String("userName", "user_name"),
		Rating:    o.Int("rating"),
		Comment:   o.String("comment"),
		CreatedAt: o.String("createdAt", "created_at"),
	}
}

// NormalizeCategory converts one raw category record.
func NormalizeCategory(o normalize.Object) Category {
	return Category{
		ID:          o.String("id", "_id"),
		Name:        o.String("name"),
		Description: o.String("description"),
		ImageURL:    o.StringPtr("imageUrl", "image_url"),
		CreatedAt:   o.String("createdAt", "created_at"),
		UpdatedAt:   o.String("updatedAt", "updated_at"),
	}
}

package catalog

// CategorySummary is the embedded category carried on a product. A nil
// summary means the payload shipped no category object at all, which renders
// differently from a present-but-empty one.
type CategorySummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// Category is the canonical category record.
type Category struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// Review is the canonical product review. Rating is passed through as the
// backend sent it; the 1-5 bound is an input constraint, not a read-side one.
type Review struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"createdAt"`
}

// Product is the canonical product record.
type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Stock       int              `json:"stock"`
	ImageURL    *string          `json:"imageUrl,omitempty"`
	CategoryID  string           `json:"categoryId"`
	Category    *CategorySummary `json:"category,omitempty"`
	Reviews     []Review         `json:"reviews"`
	CreatedAt   string           `json:"createdAt"`
	UpdatedAt   string           `json:"updatedAt"`
}

// CreateProductInput is the admin write payload for a new product.
type CreateProductInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	CategoryID  string  `json:"categoryId" validate:"required"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// UpdateProductInput carries partial product updates; nil fields are omitted
// from the upstream payload.
type UpdateProductInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	CategoryID  *string  `json:"categoryId,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
}

// AddReviewInput is the review payload; the 1-5 rating bound is enforced
// here, on the write path.
type AddReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

// CreateCategoryInput is the admin write payload for a new category.
type CreateCategoryInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

// UpdateCategoryInput carries partial category updates.
type UpdateCategoryInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
}

package repositories

import (
	"context"

	"github.com/zatekoja/hivclinic/internal/domain/entities"
)

// BlogRepository defines the blog operations of the clinic backend.
// A zero staff ID means "the signed-in staff member".
type BlogRepository interface {
	List(ctx context.Context) ([]entities.Blog, error)
	GetByID(ctx context.Context, id int64) (*entities.Blog, error)
	Create(ctx context.Context, req entities.BlogRequest) (*entities.Blog, error)
	Update(ctx context.Context, id int64, req entities.BlogRequest) (*entities.Blog, error)
	Delete(ctx context.Context, id int64) error
	SearchByTitle(ctx context.Context, keyword string) ([]entities.Blog, error)
	ListByStaff(ctx context.Context, staffID int64) ([]entities.Blog, error)
}

// EducationContentRepository defines the education content operations.
// A zero staff ID means "the signed-in staff member".
type EducationContentRepository interface {
	List(ctx context.Context) ([]entities.EducationContent, error)
	GetByID(ctx context.Context, id int64) (*entities.EducationContent, error)
	Create(ctx context.Context, req entities.EducationContentRequest) (*entities.EducationContent, error)
	Update(ctx context.Context, id int64, req entities.EducationContentRequest) (*entities.EducationContent, error)
	Delete(ctx context.Context, id int64) error
	SearchByTitle(ctx context.Context, keyword string) ([]entities.EducationContent, error)
	ListByStaff(ctx context.Context, staffID int64) ([]entities.EducationContent, error)
}

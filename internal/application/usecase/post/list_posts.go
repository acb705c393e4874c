package post

import (
	"context"

	"github.com/quangdng/devlink/internal/domain/post"
)

type ListPostsUseCase struct {
	postRepo post.Repository
}

func NewListPostsUseCase(pRepo post.Repository) *ListPostsUseCase {
	return &ListPostsUseCase{postRepo: pRepo}
}

type ListPostsInput struct {
	Page  int
	Limit int
}

type ListPostsOutput struct {
	Posts []*post.Post
}

// Execute returns posts newest-first.
func (uc *ListPostsUseCase) Execute(ctx context.Context, input ListPostsInput) (*ListPostsOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 || input.Limit > 100 {
		input.Limit = 20
	}

	posts, err := uc.postRepo.List(ctx, input.Limit, (input.Page-1)*input.Limit)
	if err != nil {
		return nil, err
	}
	return &ListPostsOutput{Posts: posts}, nil
}

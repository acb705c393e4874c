package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrAlreadyLiked    = errors.New("post already liked")
	ErrNotLiked        = errors.New("post has not yet been liked")
	ErrEmptyText       = errors.New("text is required")
)

type Comment struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"user"`
	Text       string    `json:"text"`
	AuthorName string    `json:"name"`
	AvatarURL  string    `json:"avatar"`
	CreatedAt  time.Time `json:"date"`
}

// Post is the aggregate root for a feed post. Likes is a set of user ids
// (each user at most once); Comments is ordered newest-first. The author
// name and avatar are snapshotted at creation time, as in the original feed.
type Post struct {
	ID         uuid.UUID   `json:"id"`
	AuthorID   uuid.UUID   `json:"user"`
	Text       string      `json:"text"`
	AuthorName string      `json:"name"`
	AvatarURL  string      `json:"avatar"`
	Likes      []uuid.UUID `json:"likes"`
	Comments   []Comment   `json:"comments"`
	CreatedAt  time.Time   `json:"date"`
}

func (p *Post) LikedBy(userID uuid.UUID) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

// AddLike keeps the set invariant: a second like by the same user is a
// rejection, not a no-op append.
func (p *Post) AddLike(userID uuid.UUID) error {
	if p.LikedBy(userID) {
		return ErrAlreadyLiked
	}
	p.Likes = append(p.Likes, userID)
	return nil
}

func (p *Post) RemoveLike(userID uuid.UUID) error {
	for i, id := range p.Likes {
		if id == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return nil
		}
	}
	return ErrNotLiked
}

// AddComment prepends so the newest comment is always index 0.
func (p *Post) AddComment(c Comment) {
	p.Comments = append([]Comment{c}, p.Comments...)
}

func (p *Post) FindComment(id uuid.UUID) (*Comment, bool) {
	for i := range p.Comments {
		if p.Comments[i].ID == id {
			return &p.Comments[i], true
		}
	}
	return nil, false
}

func (p *Post) RemoveComment(id uuid.UUID) error {
	for i, c := range p.Comments {
		if c.ID == id {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return nil
		}
	}
	return ErrCommentNotFound
}

type Repository interface {
	Save(ctx context.Context, p *Post) error
	Update(ctx context.Context, p *Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*Post, error)
	List(ctx context.Context, limit, offset int) ([]*Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

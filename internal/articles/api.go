package articles

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

type articleOutput struct {
	Body Article
}

type articleListOutput struct {
	Body []Article
}

type articleIDInput struct {
	ArticleID int64 `path:"articleId"`
}

type createArticleInput struct {
	Body struct {
		ID          int64  `json:"articleId,omitempty" doc:"Ignored, ids are assigned by the server"`
		Title       string `json:"title" minLength:"1" maxLength:"256"`
		Description string `json:"description,omitempty"`
		ImageURL    string `json:"imageUrl,omitempty"`
		Content     []byte `json:"article,omitempty" doc:"Base64 encoded PDF"`
	}
}

type createArticleOutput struct {
	Location string `header:"Location"`
}

type updateArticleInput struct {
	ArticleID int64 `path:"articleId"`
	Body      Patch
}

// Register mounts the articles API under /articles.
func Register(api huma.API, store *Store) {
	huma.Get(api, "/articles", func(_ context.Context, _ *struct{}) (*articleListOutput, error) {
		return &articleListOutput{Body: store.FindAll()}, nil
	})

	huma.Get(api, "/articles/{articleId}", func(_ context.Context, in *articleIDInput) (*articleOutput, error) {
		a, err := store.FindByID(in.ArticleID)
		if err != nil {
			return nil, httpError(err, in.ArticleID)
		}
		return &articleOutput{Body: a}, nil
	})

	huma.Post(api, "/articles", func(_ context.Context, in *createArticleInput) (*createArticleOutput, error) {
		a, err := store.Save(Article{
			Title:       in.Body.Title,
			Description: in.Body.Description,
			ImageURL:    in.Body.ImageURL,
			Content:     in.Body.Content,
		})
		if err != nil {
			return nil, httpError(err, 0)
		}
		return &createArticleOutput{Location: fmt.Sprintf("/articles/%d", a.ID)}, nil
	}, func(op *huma.Operation) {
		op.DefaultStatus = http.StatusCreated
	})

	huma.Patch(api, "/articles/{articleId}", func(_ context.Context, in *updateArticleInput) (*articleOutput, error) {
		a, err := store.Update(in.ArticleID, in.Body)
		if err != nil {
			return nil, httpError(err, in.ArticleID)
		}
		return &articleOutput{Body: a}, nil
	})
}

func httpError(err error, id int64) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return huma.Error404NotFound(fmt.Sprintf("Article id %d not found!", id))
	case errors.Is(err, ErrDuplicate):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, ErrEmptyTitle):
		return huma.Error400BadRequest(err.Error())
	}
	return huma.Error500InternalServerError("article operation failed", err)
}

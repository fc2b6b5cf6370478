package routes

import (
	"github.com/go-chi/chi/v5"

	"socialposts/internal/api/handlers/post"
	"socialposts/internal/core/posts"
)

// RegisterPostRoutes registers the post endpoints on the router
func RegisterPostRoutes(r chi.Router, service posts.Service) {
	createHandler := post.NewCreateHandler(service)
	listHandler := post.NewListHandler(service)
	likeHandler := post.NewLikeHandler(service)
	commentHandler := post.NewCommentHandler(service)

	r.Get("/api/posts", listHandler.HandleList)
	r.Get("/api/posts/{postID}", listHandler.HandleGet)
	r.Post("/api/posts", createHandler.HandleCreate)
	r.Post("/api/posts/like/{postID}", likeHandler.HandleLike)
	r.Post("/api/posts/comment/{postID}", commentHandler.HandleComment)
}

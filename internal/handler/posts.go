package handler

import (
	"errors"
	"net/http"

	"github.com/kalyondo/guardianre-website/internal/service"
)

type PostsHandler struct {
	postService *service.PostService
}

func NewPostsHandler(postService *service.PostService) *PostsHandler {
	return &PostsHandler{
		postService: postService,
	}
}

func (h *PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.Posts()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load posts")
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

func (h *PostsHandler) Show(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		respondError(w, http.StatusNotFound, "post not found")
		return
	}

	post, err := h.postService.Post(slug)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(w, http.StatusNotFound, "post not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load post")
		return
	}
	respondJSON(w, http.StatusOK, post)
}

func (h *PostsHandler) ListByTag(w http.ResponseWriter, r *http.Request) {
	tag := r.PathValue("tag")
	if tag == "" {
		respondError(w, http.StatusNotFound, "tag not found")
		return
	}

	posts, err := h.postService.PostsByTag(tag)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load posts")
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

func (h *PostsHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if category == "" {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}

	posts, err := h.postService.PostsByCategory(category)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load posts")
		return
	}
	respondJSON(w, http.StatusOK, posts)
}

package handler

import (
	"github.com/devlink/backend/internal/application/social"
	"github.com/devlink/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// PostHandler handles feed HTTP requests
type PostHandler struct {
	BaseHandler
	postService *social.PostService
	authGuard   gin.HandlerFunc
}

// NewPostHandler creates a new post handler
func NewPostHandler(postService *social.PostService, authGuard gin.HandlerFunc) *PostHandler {
	return &PostHandler{
		postService: postService,
		authGuard:   authGuard,
	}
}

// List godoc
// @Summary      List all posts, newest first
// @Tags         posts
// @Produce      json
// @Success      200 {object} dto.Response{data=[]social.PostResult}
// @Router       /posts [get]
func (h *PostHandler) List(c *gin.Context) {
	results, err := h.postService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, results)
}

// Get godoc
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200 {object} dto.Response{data=social.PostResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	postID, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.postService.Get(c.Request.Context(), postID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Create godoc
// @Summary      Publish a new post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        request body PostRequest true "Post text"
// @Success      201 {object} dto.Response{data=social.PostResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	caller, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	req := middleware.BoundBody[PostRequest](c)

	result, err := h.postService.Create(c.Request.Context(), caller, req.Text)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// Edit godoc
// @Summary      Edit a post's text
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        request body PostRequest true "Post text"
// @Success      200 {object} dto.Response{data=social.PostResult}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /posts/{id} [put]
func (h *PostHandler) Edit(c *gin.Context) {
	caller, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	postID, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	req := middleware.BoundBody[PostRequest](c)

	result, err := h.postService.Edit(c.Request.Context(), caller, postID, req.Text)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Delete godoc
// @Summary      Delete a post
// @Tags         posts
// @Param        id path string true "Post ID"
// @Success      204
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	caller, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	postID, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.postService.Delete(c.Request.Context(), caller, postID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Like godoc
// @Summary      Like a post
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200 {object} dto.Response{data=social.PostResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /posts/{id}/like [post]
func (h *PostHandler) Like(c *gin.Context) {
	caller, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	postID, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.postService.Like(c.Request.Context(), caller, postID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Unlike godoc
// @Summary      Withdraw a like
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200 {object} dto.Response{data=social.PostResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /posts/{id}/unlike [post]
func (h *PostHandler) Unlike(c *gin.Context) {
	caller, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	postID, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.postService.Unlike(c.Request.Context(), caller, postID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// AddComment godoc
// @Summary      Comment on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        request body CommentRequest true "Comment text"
// @Success      201 {object} dto.Response{data=social.PostResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /posts/{id}/comments [post]
func (h *PostHandler) AddComment(c *gin.Context) {
	caller, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	postID, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	req := middleware.BoundBody[CommentRequest](c)

	result, err := h.postService.AddComment(c.Request.Context(), caller, postID, req.Text)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// UpdateComment godoc
// @Summary      Edit a comment
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        comment_id path string true "Comment ID"
// @Param        request body CommentRequest true "Comment text"
// @Success      200 {object} dto.Response{data=social.PostResult}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /posts/{id}/comments/{comment_id} [put]
func (h *PostHandler) UpdateComment(c *gin.Context) {
	caller, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	postID, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	commentID, ok := h.pathUUID(c, "comment_id")
	if !ok {
		return
	}
	req := middleware.BoundBody[CommentRequest](c)

	result, err := h.postService.UpdateComment(c.Request.Context(), caller, postID, commentID, req.Text)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RemoveComment godoc
// @Summary      Remove a comment
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        comment_id path string true "Comment ID"
// @Success      200 {object} dto.Response{data=social.PostResult}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /posts/{id}/comments/{comment_id} [delete]
func (h *PostHandler) RemoveComment(c *gin.Context) {
	caller, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	postID, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	commentID, ok := h.pathUUID(c, "comment_id")
	if !ok {
		return
	}

	result, err := h.postService.RemoveComment(c.Request.Context(), caller, postID, commentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RegisterRoutes registers all post routes. Body validation runs before the
// auth guard so malformed requests never reach authorization.
func (h *PostHandler) RegisterRoutes(rg *gin.RouterGroup) {
	posts := rg.Group("/posts")
	{
		posts.GET("", h.List)
		posts.GET("/:id", h.Get)

		posts.POST("", middleware.BindJSON[PostRequest](), h.authGuard, h.Create)
		posts.PUT("/:id", middleware.BindJSON[PostRequest](), h.authGuard, h.Edit)
		posts.DELETE("/:id", h.authGuard, h.Delete)

		posts.POST("/:id/like", h.authGuard, h.Like)
		posts.POST("/:id/unlike", h.authGuard, h.Unlike)

		posts.POST("/:id/comments", middleware.BindJSON[CommentRequest](), h.authGuard, h.AddComment)
		posts.PUT("/:id/comments/:comment_id", middleware.BindJSON[CommentRequest](), h.authGuard, h.UpdateComment)
		posts.DELETE("/:id/comments/:comment_id", h.authGuard, h.RemoveComment)
	}
}

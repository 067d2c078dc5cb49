package handler

import (
	"github.com/devlink/backend/internal/application/profile"
	"github.com/devlink/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ProfileHandler handles profile HTTP requests
type ProfileHandler struct {
	BaseHandler
	profileService *profile.ProfileService
	authGuard      gin.HandlerFunc
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *profile.ProfileService, authGuard gin.HandlerFunc) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		authGuard:      authGuard,
	}
}

// List godoc
// @Summary      List all profiles
// @Tags         profiles
// @Produce      json
// @Success      200 {object} dto.Response{data=[]profile.ProfileResult}
// @Router       /profiles [get]
func (h *ProfileHandler) List(c *gin.Context) {
	results, err := h.profileService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, results)
}

// My godoc
// @Summary      Get the caller's profile
// @Tags         profiles
// @Produce      json
// @Success      200 {object} dto.Response{data=profile.ProfileResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profiles/me [get]
func (h *ProfileHandler) My(c *gin.Context) {
	caller, ok := h.callerIdentity(c)
	if !ok {
		return
	}

	result, err := h.profileService.MyProfile(c.Request.Context(), caller)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// GetByUser godoc
// @Summary      Get a profile by its owning user
// @Tags         profiles
// @Produce      json
// @Param        user_id path string true "User ID"
// @Success      200 {object} dto.Response{data=profile.ProfileResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /profiles/user/{user_id} [get]
func (h *ProfileHandler) GetByUser(c *gin.Context) {
	userID, ok := h.pathUUID(c, "user_id")
	if !ok {
		return
	}

	result, err := h.profileService.GetByUser(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Upsert godoc
// @Summary      Create or replace the caller's profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        request body UpsertProfileRequest true "Profile details"
// @Success      200 {object} dto.Response{data=profile.ProfileResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profiles [post]
func (h *ProfileHandler) Upsert(c *gin.Context) {
	caller, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	req := middleware.BoundBody[UpsertProfileRequest](c)

	result, err := h.profileService.Upsert(c.Request.Context(), caller, profile.UpsertProfileInput{
		Status:         req.Status,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DeleteOwn godoc
// @Summary      Delete the caller's profile
// @Tags         profiles
// @Success      204
// @Security     BearerAuth
// @Router       /profiles [delete]
func (h *ProfileHandler) DeleteOwn(c *gin.Context) {
	caller, ok := h.callerIdentity(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteOwn(c.Request.Context(), caller); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// AddExperience godoc
// @Summary      Add an experience entry
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        request body ExperienceRequest true "Experience details"
// @Success      201 {object} dto.Response{data=profile.ProfileResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profiles/experience [post]
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	caller, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	req := middleware.BoundBody[ExperienceRequest](c)

	result, err := h.profileService.AddExperience(c.Request.Context(), caller, experienceInput(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// UpdateExperience godoc
// @Summary      Replace an experience entry in place
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id path string true "Entry ID"
// @Param        request body ExperienceRequest true "Experience details"
// @Success      200 {object} dto.Response{data=profile.ProfileResult}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profiles/experience/{id} [put]
func (h *ProfileHandler) UpdateExperience(c *gin.Context) {
	caller, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	entryID, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	req := middleware.BoundBody[ExperienceRequest](c)

	result, err := h.profileService.UpdateExperience(c.Request.Context(), caller, entryID, experienceInput(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RemoveExperience godoc
// @Summary      Remove an experience entry
// @Tags         profiles
// @Produce      json
// @Param        id path string true "Entry ID"
// @Success      200 {object} dto.Response{data=profile.ProfileResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profiles/experience/{id} [delete]
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	caller, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	entryID, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.profileService.RemoveExperience(c.Request.Context(), caller, entryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// AddEducation godoc
// @Summary      Add an education entry
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        request body EducationRequest true "Education details"
// @Success      201 {object} dto.Response{data=profile.ProfileResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profiles/education [post]
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	caller, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	req := middleware.BoundBody[EducationRequest](c)

	result, err := h.profileService.AddEducation(c.Request.Context(), caller, educationInput(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// UpdateEducation godoc
// @Summary      Replace an education entry in place
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        id path string true "Entry ID"
// @Param        request body EducationRequest true "Education details"
// @Success      200 {object} dto.Response{data=profile.ProfileResult}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profiles/education/{id} [put]
func (h *ProfileHandler) UpdateEducation(c *gin.Context) {
	caller, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	entryID, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}
	req := middleware.BoundBody[EducationRequest](c)

	result, err := h.profileService.UpdateEducation(c.Request.Context(), caller, entryID, educationInput(req))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RemoveEducation godoc
// @Summary      Remove an education entry
// @Tags         profiles
// @Produce      json
// @Param        id path string true "Entry ID"
// @Success      200 {object} dto.Response{data=profile.ProfileResult}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /profiles/education/{id} [delete]
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	caller, ok := h.callerIdentity(c)
	if !ok {
		return
	}
	entryID, ok := h.pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.profileService.RemoveEducation(c.Request.Context(), caller, entryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// RegisterRoutes registers all profile routes. Body validation runs before
// the auth guard so malformed requests never reach authorization.
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	profiles := rg.Group("/profiles")
	{
		profiles.GET("", h.List)
		profiles.GET("/user/:user_id", h.GetByUser)

		profiles.GET("/me", h.authGuard, h.My)
		profiles.POST("", middleware.BindJSON[UpsertProfileRequest](), h.authGuard, h.Upsert)
		profiles.DELETE("", h.authGuard, h.DeleteOwn)

		profiles.POST("/experience", middleware.BindJSON[ExperienceRequest](), h.authGuard, h.AddExperience)
		profiles.PUT("/experience/:id", middleware.BindJSON[ExperienceRequest](), h.authGuard, h.UpdateExperience)
		profiles.DELETE("/experience/:id", h.authGuard, h.RemoveExperience)

		profiles.POST("/education", middleware.BindJSON[EducationRequest](), h.authGuard, h.AddEducation)
		profiles.PUT("/education/:id", middleware.BindJSON[EducationRequest](), h.authGuard, h.UpdateEducation)
		profiles.DELETE("/education/:id", h.authGuard, h.RemoveEducation)
	}
}

func experienceInput(req ExperienceRequest) profile.EntryInput {
	return profile.EntryInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	}
}

func educationInput(req EducationRequest) profile.EntryInput {
	return profile.EntryInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	}
}

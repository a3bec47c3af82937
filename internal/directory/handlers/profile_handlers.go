package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ybotev/staffdesk/internal/directory/models"
)

// createProfileRequest mirrors the profile validation rules: required
// name and address, length caps, URL format on the link fields.
type createProfileRequest struct {
	CompanyName       string `form:"company_name" binding:"required,max=150"`
	WebsiteLink       string `form:"website_link" binding:"omitempty,url"`
	Established       string `form:"established" binding:"omitempty,max=30"`
	Address           string `form:"address" binding:"required"`
	ButtonName        string `form:"button_name" binding:"omitempty,max=50"`
	ButtonRedirectURL string `form:"button_redirect_url" binding:"omitempty,url"`
}

func (h *Handler) CreateProfile(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	image, err := formImage(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid profile image upload")
		return
	}

	profile := &models.CompanyProfile{
		CompanyName:       strings.TrimSpace(req.CompanyName),
		WebsiteLink:       strings.TrimSpace(req.WebsiteLink),
		Established:       strings.TrimSpace(req.Established),
		Address:           strings.TrimSpace(req.Address),
		ButtonName:        strings.TrimSpace(req.ButtonName),
		ButtonRedirectURL: strings.TrimSpace(req.ButtonRedirectURL),
	}

	created, err := h.profiles.Create(c.Request.Context(), profile, image)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":         true,
		"message":         "Company profile created successfully",
		"company_profile": created,
	})
}

func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.Get(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"company_profile": profile,
	})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	image, err := formImage(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid profile image upload")
		return
	}

	update := &models.ProfileUpdate{
		CompanyName:       formString(c, "company_name"),
		WebsiteLink:       formString(c, "website_link"),
		Established:       formString(c, "established"),
		Address:           formString(c, "address"),
		ButtonName:        formString(c, "button_name"),
		ButtonRedirectURL: formString(c, "button_redirect_url"),
	}

	updated, err := h.profiles.Update(c.Request.Context(), id, update, image)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Company profile updated successfully",
		"company_profile": updated,
	})
}

func (h *Handler) DeleteProfile(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.profiles.Delete(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Company profile deleted successfully",
	})
}

// formString distinguishes an absent form field (nil) from a supplied
// empty value.
func formString(c *gin.Context, key string) *string {
	if v, ok := c.GetPostForm(key); ok {
		return &v
	}
	return nil
}

package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ybotev/staffdesk/internal/directory/assets"
	"github.com/ybotev/staffdesk/internal/directory/auth"
	e "github.com/ybotev/staffdesk/internal/directory/errors"
	"github.com/ybotev/staffdesk/internal/directory/models"
	"github.com/ybotev/staffdesk/internal/directory/query"
	"go.uber.org/zap"
)

// imageFormField is the multipart field carrying the profile image.
const imageFormField = "profile_image"

// ProfileController is the business logic interface the profile
// endpoints invoke.
type ProfileController interface {
	Create(ctx context.Context, profile *models.CompanyProfile, image *assets.Blob) (*models.CompanyProfile, error)
	Get(ctx context.Context) (*models.CompanyProfile, error)
	Update(ctx context.Context, id uuid.UUID, update *models.ProfileUpdate, image *assets.Blob) (*models.CompanyProfile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EmployeeController is the business logic interface the employee
// endpoints invoke.
type EmployeeController interface {
	Create(ctx context.Context, employee *models.Employee, image *assets.Blob) (*models.Employee, error)
	List(ctx context.Context, opts query.Options) ([]models.Employee, query.Pagination, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.EmployeeDetail, error)
	Update(ctx context.Context, id uuid.UUID, update *models.EmployeeUpdate, image *assets.Blob) (*models.Employee, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AuthController issues tokens for admin credentials.
type AuthController interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Handler holds the controllers behind the HTTP endpoints.
type Handler struct {
	profiles  ProfileController
	employees EmployeeController
	auth      AuthController
	logger    *zap.Logger
}

func NewHandler(profiles ProfileController, employees EmployeeController, authCtl AuthController, logger *zap.Logger) *Handler {
	return &Handler{
		profiles:  profiles,
		employees: employees,
		auth:      authCtl,
		logger:    logger.Named("http_handler"),
	}
}

// Register wires all routes. Everything except login sits behind the
// bearer-token middleware.
func (h *Handler) Register(engine *gin.Engine, jwtSecret string, admins auth.AdminLookup) {
	v1 := engine.Group("/v1")
	v1.POST("/auth/login", h.Login)

	protected := v1.Group("")
	protected.Use(auth.Middleware(jwtSecret, admins))

	protected.POST("/company-profile", h.CreateProfile)
	protected.GET("/company-profile", h.GetProfile)
	protected.PATCH("/company-profile/:id", h.UpdateProfile)
	protected.DELETE("/company-profile/:id", h.DeleteProfile)

	protected.POST("/employees", h.CreateEmployee)
	protected.GET("/employees", h.ListEmployees)
	protected.GET("/employees/:id", h.GetEmployee)
	protected.PATCH("/employees/:id", h.UpdateEmployee)
	protected.DELETE("/employees/:id", h.DeleteEmployee)
}

// formImage reads the uploaded image into memory; a missing file returns
// nil without error so callers decide whether the image is required.
func formImage(c *gin.Context) (*assets.Blob, error) {
	header, err := c.FormFile(imageFormField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &assets.Blob{
		Data:        data,
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondServiceError maps the error taxonomy to status codes:
// validation and conflicts to 400, unauthorized to 401, missing records
// to 404, everything else to an opaque 500.
func (h *Handler) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, e.ErrNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, e.ErrInvalidInput),
		errors.Is(err, e.ErrProfileExists),
		errors.Is(err, e.ErrDuplicateEmail):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, e.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, err.Error())
	default:
		h.logger.Error("Internal server error", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}

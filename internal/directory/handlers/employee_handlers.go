package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ybotev/staffdesk/internal/directory/models"
	"github.com/ybotev/staffdesk/internal/directory/query"
)

type createEmployeeRequest struct {
	Name         string `form:"name" binding:"required,max=200"`
	Email        string `form:"email" binding:"required,email"`
	PhoneNumber  string `form:"phone_number" binding:"required"`
	Age          int    `form:"age" binding:"required,gt=0"`
	JoiningDate  string `form:"joining_date" binding:"required"`
	Designation  string `form:"designation" binding:"required"`
	DepartmentID string `form:"department_id" binding:"required,uuid"`
	AboutMe      string `form:"about_me"`
	Address      string `form:"address" binding:"required"`
	Facebook     string `form:"facebook" binding:"omitempty,url"`
	Twitter      string `form:"twitter" binding:"omitempty,url"`
	Instagram    string `form:"instagram" binding:"omitempty,url"`
	YouTube      string `form:"youtube" binding:"omitempty,url"`
}

func (h *Handler) CreateEmployee(c *gin.Context) {
	var req createEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	image, err := formImage(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid profile image upload")
		return
	}

	departmentID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid department id")
		return
	}

	employee := &models.Employee{
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Age:          req.Age,
		JoiningDate:  req.JoiningDate,
		Designation:  req.Designation,
		DepartmentID: departmentID,
		AboutMe:      req.AboutMe,
		Address:      req.Address,
		SocialLinks: models.SocialLinks{
			Facebook:  req.Facebook,
			Twitter:   req.Twitter,
			Instagram: req.Instagram,
			YouTube:   req.YouTube,
		},
	}

	created, err := h.employees.Create(c.Request.Context(), employee, image)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"employee": created,
	})
}

func (h *Handler) ListEmployees(c *gin.Context) {
	opts := query.Options{
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
	opts.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	opts.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

	employees, pagination, err := h.employees.List(c.Request.Context(), opts)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	resp := gin.H{
		"success":    true,
		"employees":  employees,
		"pagination": pagination,
	}
	if len(employees) == 0 {
		resp["employees"] = []models.Employee{}
		resp["message"] = "No employees found"
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	detail, err := h.employees.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"employee": detail,
	})
}

func (h *Handler) UpdateEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	image, err := formImage(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid profile image upload")
		return
	}

	update := &models.EmployeeUpdate{
		Name:        formString(c, "name"),
		Email:       formString(c, "email"),
		PhoneNumber: formString(c, "phone_number"),
		JoiningDate: formString(c, "joining_date"),
		Designation: formString(c, "designation"),
		AboutMe:     formString(c, "about_me"),
		Address:     formString(c, "address"),
		// Social links are replaced as a unit: an omitted sub-field
		// arrives as "" and clears the stored value.
		SocialLinks: models.SocialLinks{
			Facebook:  c.PostForm("facebook"),
			Twitter:   c.PostForm("twitter"),
			Instagram: c.PostForm("instagram"),
			YouTube:   c.PostForm("youtube"),
		},
	}

	if raw := formString(c, "age"); raw != nil {
		age, err := strconv.Atoi(*raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid age")
			return
		}
		update.Age = &age
	}
	if raw := formString(c, "department_id"); raw != nil {
		departmentID, err := uuid.Parse(*raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid department id")
			return
		}
		update.DepartmentID = &departmentID
	}

	updated, err := h.employees.Update(c.Request.Context(), id, update, image)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Employee updated successfully",
		"employee": updated,
	})
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.employees.Delete(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Employee deleted successfully",
	})
}

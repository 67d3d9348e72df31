package api

import (
	"sitetrack/auth"
	"sitetrack/config"
	"sitetrack/middleware"
	"sitetrack/store"

	"github.com/gin-gonic/gin"
)

// APIHandler serves the JSON surface under /api/v1.
type APIHandler struct {
	st  *store.Store
	cfg *config.Config
	jwt *middleware.JWT
}

// NewAPIHandler creates the JSON API handler.
func NewAPIHandler(st *store.Store, cfg *config.Config, jwt *middleware.JWT) *APIHandler {
	return &APIHandler{st: st, cfg: cfg, jwt: jwt}
}

// TokenLoginRequest is the JSON login body.
type TokenLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProjectSummary is the aggregate view of one project.
type ProjectSummary struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Budget     float64 `json:"budget"`
	TotalSpent float64 `json:"total_spent"`
	Remaining  float64 `json:"remaining"`
}

// TokenLogin exchanges credentials for a bearer token.
// @Summary Login
// @Description Exchange username and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body TokenLoginRequest true "Credentials"
// @Success 200 {object} Response "Token issued"
// @Failure 400 {object} Response "Malformed request"
// @Failure 401 {object} Response "Invalid credentials"
// @Router /api/v1/auth/login [post]
func (h *APIHandler) TokenLogin(c *gin.Context) {
	var req TokenLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "username and password are required")
		return
	}

	user, err := h.st.GetUserByUsername(req.Username)
	if err != nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		Unauthorized(c, "invalid username or password")
		return
	}

	token, err := h.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		InternalError(c, "could not issue token")
		return
	}

	Success(c, gin.H{
		"token":    token,
		"user_id":  user.ID,
		"username": user.Username,
	})
}

// ListProjects returns all projects.
// @Summary List projects
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "Project list"
// @Failure 401 {object} Response "Unauthorized"
// @Router /api/v1/projects [get]
func (h *APIHandler) ListProjects(c *gin.Context) {
	projects, err := h.st.ListProjects()
	if err != nil {
		InternalError(c, "could not load projects")
		return
	}
	Success(c, projects)
}

// GetProjectSummary returns one project's budget position.
// @Summary Project summary
// @Description Budget, total spend and remaining budget of a project
// @Tags projects
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} Response{data=ProjectSummary} "Summary"
// @Failure 401 {object} Response "Unauthorized"
// @Failure 404 {object} Response "Unknown project"
// @Router /api/v1/projects/{id}/summary [get]
func (h *APIHandler) GetProjectSummary(c *gin.Context) {
	project, err := h.st.GetProject(parseID(c, "id"))
	if err != nil {
		NotFound(c, "no such project")
		return
	}

	totalSpent, err := h.st.TotalSpent(project.ID)
	if err != nil {
		InternalError(c, "could not compute total")
		return
	}

	Success(c, ProjectSummary{
		ID:         project.ID,
		Name:       project.Name,
		Budget:     project.Budget,
		TotalSpent: totalSpent,
		Remaining:  project.Budget - totalSpent,
	})
}

// ListVendors returns all vendors.
// @Summary List vendors
// @Tags vendors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response "Vendor list"
// @Failure 401 {object} Response "Unauthorized"
// @Router /api/v1/vendors [get]
func (h *APIHandler) ListVendors(c *gin.Context) {
	vendors, err := h.st.ListVendors()
	if err != nil {
		InternalError(c, "could not load vendors")
		return
	}
	Success(c, vendors)
}

package api

import (
	"net/http"
	"strconv"

	"sitetrack/config"
	"sitetrack/forms"
	"sitetrack/models"
	"sitetrack/store"

	"github.com/gin-gonic/gin"
)

// ProjectHandler serves the project list, creation form and the
// per-project overview.
type ProjectHandler struct {
	st  *store.Store
	cfg *config.Config
}

// NewProjectHandler creates the project handler.
func NewProjectHandler(st *store.Store, cfg *config.Config) *ProjectHandler {
	return &ProjectHandler{st: st, cfg: cfg}
}

// parseID reads a numeric path parameter. Zero means malformed.
func parseID(c *gin.Context, name string) uint {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

// List renders all projects, newest first.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.st.ListProjects()
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load projects")
		return
	}
	c.HTML(http.StatusOK, "projects.html", pageData(c, h.cfg, true, "Projects", gin.H{
		"Projects": projects,
	}))
}

// CreatePage renders the new-project form.
func (h *ProjectHandler) CreatePage(c *gin.Context) {
	c.HTML(http.StatusOK, "create_project.html", pageData(c, h.cfg, true, "Create Project", gin.H{
		"Form": &forms.ProjectForm{},
	}))
}

// Create validates and stores a new project.
func (h *ProjectHandler) Create(c *gin.Context) {
	var f forms.ProjectForm
	_ = c.ShouldBind(&f)

	if errs := f.Validate(h.st); errs.Any() {
		c.HTML(http.StatusOK, "create_project.html", pageData(c, h.cfg, true, "Create Project", gin.H{
			"Form":   &f,
			"Errors": errs,
		}))
		return
	}

	project := models.Project{
		Name:   f.Name,
		Budget: f.BudgetValue,
	}
	if err := h.st.CreateProject(&project); err != nil {
		c.String(http.StatusInternalServerError, "could not create project")
		return
	}

	setFlash(c, h.cfg, "Project Added")
	c.Redirect(http.StatusFound, "/projects")
}

// Overview renders one project with its transactions, invoices and
// total spend.
func (h *ProjectHandler) Overview(c *gin.Context) {
	id := parseID(c, "id")
	project, err := h.st.GetProject(id)
	if err != nil {
		renderNotFound(c, h.cfg, true, "No such project.")
		return
	}

	transactions, err := h.st.ListProjectTransactions(project.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load transactions")
		return
	}
	invoices, err := h.st.ListProjectInvoices(project.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load invoices")
		return
	}
	totalSpent, err := h.st.TotalSpent(project.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, "could not compute total")
		return
	}

	c.HTML(http.StatusOK, "project_overview.html", pageData(c, h.cfg, true, project.Name, gin.H{
		"Project":      project,
		"Transactions": transactions,
		"Invoices":     invoices,
		"TotalSpent":   totalSpent,
	}))
}

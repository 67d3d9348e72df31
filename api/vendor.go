package api

import (
	"net/http"

	"sitetrack/config"
	"sitetrack/forms"
	"sitetrack/models"
	"sitetrack/store"

	"github.com/gin-gonic/gin"
)

// VendorHandler serves the vendor directory.
type VendorHandler struct {
	st  *store.Store
	cfg *config.Config
}

// NewVendorHandler creates the vendor handler.
func NewVendorHandler(st *store.Store, cfg *config.Config) *VendorHandler {
	return &VendorHandler{st: st, cfg: cfg}
}

// List renders all vendors ordered by name.
func (h *VendorHandler) List(c *gin.Context) {
	vendors, err := h.st.ListVendors()
	if err != nil {
		c.String(http.StatusInternalServerError, "could not load vendors")
		return
	}
	c.HTML(http.StatusOK, "vendors.html", pageData(c, h.cfg, true, "Vendors", gin.H{
		"Vendors": vendors,
	}))
}

// AddPage renders the new-vendor form.
func (h *VendorHandler) AddPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add_vendor.html", pageData(c, h.cfg, true, "Add Vendor", gin.H{
		"Form": &forms.VendorForm{},
	}))
}

// Add validates and stores a new vendor.
func (h *VendorHandler) Add(c *gin.Context) {
	var f forms.VendorForm
	_ = c.ShouldBind(&f)

	if errs := f.Validate(h.st); errs.Any() {
		c.HTML(http.StatusOK, "add_vendor.html", pageData(c, h.cfg, true, "Add Vendor", gin.H{
			"Form":   &f,
			"Errors": errs,
		}))
		return
	}

	vendor := models.Vendor{
		Name:        f.Name,
		PhoneNumber: f.PhoneNumber,
		Email:       f.Email,
	}
	if err := h.st.CreateVendor(&vendor); err != nil {
		c.String(http.StatusInternalServerError, "could not create vendor")
		return
	}

	setFlash(c, h.cfg, "Vendor Added")
	c.Redirect(http.StatusFound, "/vendors")
}

// Detail renders one vendor's contact page.
func (h *VendorHandler) Detail(c *gin.Context) {
	vendor, err := h.st.GetVendor(parseID(c, "id"))
	if err != nil {
		renderNotFound(c, h.cfg, true, "No such vendor.")
		return
	}
	c.HTML(http.StatusOK, "vendor_page.html", pageData(c, h.cfg, true, vendor.Name, gin.H{
		"Vendor": vendor,
	}))
}

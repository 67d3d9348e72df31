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

// LedgerHandler serves the per-project transaction and invoice entry
// forms.
type LedgerHandler struct {
	st  *store.Store
	cfg *config.Config
}

// NewLedgerHandler creates the ledger handler.
func NewLedgerHandler(st *store.Store, cfg *config.Config) *LedgerHandler {
	return &LedgerHandler{st: st, cfg: cfg}
}

// AddTransactionPage renders the transaction form for a project.
func (h *LedgerHandler) AddTransactionPage(c *gin.Context) {
	project, err := h.st.GetProject(parseID(c, "id"))
	if err != nil {
		renderNotFound(c, h.cfg, true, "No such project.")
		return
	}
	c.HTML(http.StatusOK, "add_transaction.html", pageData(c, h.cfg, true, "Add Transaction", gin.H{
		"Project": project,
		"Form":    &forms.TransactionForm{},
	}))
}

// AddTransaction validates the submission, resolves the vendor name
// to its id, and records the transaction against the project.
func (h *LedgerHandler) AddTransaction(c *gin.Context) {
	project, err := h.st.GetProject(parseID(c, "id"))
	if err != nil {
		renderNotFound(c, h.cfg, true, "No such project.")
		return
	}

	var f forms.TransactionForm
	_ = c.ShouldBind(&f)

	if errs := f.Validate(h.st); errs.Any() {
		c.HTML(http.StatusOK, "add_transaction.html", pageData(c, h.cfg, true, "Add Transaction", gin.H{
			"Project": project,
			"Form":    &f,
			"Errors":  errs,
		}))
		return
	}

	tx := models.ProjectTransaction{
		ProjectID:   project.ID,
		VendorID:    f.VendorID,
		Date:        f.DateValue,
		Amount:      f.AmountValue,
		Description: f.Description,
	}
	if err := h.st.CreateTransaction(&tx); err != nil {
		c.String(http.StatusInternalServerError, "could not create transaction")
		return
	}

	setFlash(c, h.cfg, "Transaction Added")
	c.Redirect(http.StatusFound, "/projects/"+strconv.FormatUint(uint64(project.ID), 10))
}

// AddInvoicePage renders the invoice form for a project.
func (h *LedgerHandler) AddInvoicePage(c *gin.Context) {
	project, err := h.st.GetProject(parseID(c, "id"))
	if err != nil {
		renderNotFound(c, h.cfg, true, "No such project.")
		return
	}
	c.HTML(http.StatusOK, "add_invoice.html", pageData(c, h.cfg, true, "Add Invoice", gin.H{
		"Project": project,
		"Form":    &forms.InvoiceForm{},
	}))
}

// AddInvoice validates the submission and records the invoice. An
// empty paid date stores the invoice as outstanding.
func (h *LedgerHandler) AddInvoice(c *gin.Context) {
	project, err := h.st.GetProject(parseID(c, "id"))
	if err != nil {
		renderNotFound(c, h.cfg, true, "No such project.")
		return
	}

	var f forms.InvoiceForm
	_ = c.ShouldBind(&f)

	if errs := f.Validate(h.st); errs.Any() {
		c.HTML(http.StatusOK, "add_invoice.html", pageData(c, h.cfg, true, "Add Invoice", gin.H{
			"Project": project,
			"Form":    &f,
			"Errors":  errs,
		}))
		return
	}

	invoice := models.Invoice{
		ProjectID:   project.ID,
		VendorID:    f.VendorID,
		InvoiceDate: f.InvoiceDateValue,
		PaidDate:    f.PaidDateValue,
		Amount:      f.AmountValue,
		Description: f.Description,
	}
	if err := h.st.CreateInvoice(&invoice); err != nil {
		c.String(http.StatusInternalServerError, "could not create invoice")
		return
	}

	setFlash(c, h.cfg, "Invoice Added")
	c.Redirect(http.StatusFound, "/projects/"+strconv.FormatUint(uint64(project.ID), 10))
}

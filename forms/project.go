package forms

import (
	"sitetrack/store"
)

// ProjectForm is the /create_project submission.
type ProjectForm struct {
	Name   string `form:"name"`
	Budget string `form:"budget"`

	// BudgetValue is filled in by Validate.
	BudgetValue float64 `form:"-"`
}

// Validate checks the project form, including name uniqueness, and
// coerces the budget.
func (f *ProjectForm) Validate(st *store.Store) Errors {
	errs := Errors{}
	checkField(errs, "name", f.Name, st, required("Project Name"), uniqueProjectName)
	checkField(errs, "budget", f.Budget, st, required("Total Budget"), validFloat)
	if errs.Any() {
		return errs
	}
	f.BudgetValue = parseFloat(f.Budget)
	return errs
}

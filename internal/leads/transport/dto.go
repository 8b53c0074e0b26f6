package transport

import "salesdial_backend/internal/leads/repository"

// CreateLeadRequest is a manually-entered lead from the rep portal.
type CreateLeadRequest struct {
	CompanyName   string `json:"companyName" validate:"required,min=1,max=200"`
	ContactName   string `json:"contactName" validate:"omitempty,max=200"`
	ContactTitle  string `json:"contactTitle" validate:"omitempty,max=100"`
	Phone         string `json:"phone" validate:"required,min=7,max=30"`
	Email         string `json:"email" validate:"omitempty,email"`
	Website       string `json:"website" validate:"omitempty,max=300"`
	Industry      string `json:"industry" validate:"omitempty,max=100"`
	SubIndustry   string `json:"subIndustry" validate:"omitempty,max=100"`
	City          string `json:"city" validate:"omitempty,max=100"`
	State         string `json:"state" validate:"omitempty,max=100"`
	Timezone      string `json:"timezone" validate:"omitempty,max=60"`
	EmployeeCount *int   `json:"employeeCount" validate:"omitempty,min=0"`
	RevenueRange  string `json:"revenueRange" validate:"omitempty,max=60"`
	Priority      string `json:"priority" validate:"omitempty,oneof=HOT WARM COLD"`
	Notes         string `json:"notes" validate:"omitempty,max=5000"`
}

// ListLeadsRequest carries the admin list query parameters.
type ListLeadsRequest struct {
	Search   string `form:"search"`
	Status   string `form:"status"`
	Industry string `form:"industry"`
	Rep      string `form:"rep"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

// ListLeadsResponse is a page of the admin lead list.
type ListLeadsResponse struct {
	Leads []repository.Lead `json:"leads"`
	Total int               `json:"total"`
}

// OptedInRow is one row of the email opt-in export, with the phone in
// national display format.
type OptedInRow struct {
	LeadID      string  `json:"leadId"`
	CompanyName string  `json:"companyName"`
	ContactName *string `json:"contactName,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       string  `json:"phone"`
}

// AssignRequest assigns the given leads to one rep.
type AssignRequest struct {
	LeadIDs []string `json:"leadIds" validate:"required,min=1,dive,uuid"`
	RepID   string   `json:"repId" validate:"required,uuid"`
}

// RoundRobinRequest spreads the given leads across the given reps.
type RoundRobinRequest struct {
	LeadIDs []string `json:"leadIds" validate:"required,min=1,dive,uuid"`
	RepIDs  []string `json:"repIds" validate:"required,min=1,dive,uuid"`
}

// DeleteRequest removes the given leads.
type DeleteRequest struct {
	LeadIDs []string `json:"leadIds" validate:"required,min=1,dive,uuid"`
}

// ArchiveListRequest flips a lead list's archived flag.
type ArchiveListRequest struct {
	Archived *bool `json:"archived" validate:"required"`
}

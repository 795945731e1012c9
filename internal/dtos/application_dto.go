package dtos

// ApplicationForm carries the raw, untyped field values of a submitted
// application form. Every field arrives as a string (possibly empty);
// the validation layer owns all coercion and constraint checking, so the
// same rules apply to create and update.
type ApplicationForm struct {
	CompanyName    string `json:"company_name" form:"company_name"`
	PositionTitle  string `json:"position_title" form:"position_title"`
	JobPostingURL  string `json:"job_posting_url" form:"job_posting_url"`
	Location       string `json:"location" form:"location"`
	WorkType       string `json:"work_type" form:"work_type"`
	SalaryRangeMin string `json:"salary_range_min" form:"salary_range_min"`
	SalaryRangeMax string `json:"salary_range_max" form:"salary_range_max"`
	Status         string `json:"status" form:"status"`
	DateApplied    string `json:"date_applied" form:"date_applied"`
	SectionID      string `json:"section_id" form:"section_id"`
}

// StatusForm carries a single-field status update.
type StatusForm struct {
	Status string `json:"status" form:"status"`
}

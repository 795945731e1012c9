// Package validation is the single source of truth for field constraints.
// Every create and update path runs the same parse, so no two surfaces can
// disagree about what a valid record looks like: the input is a raw form
// submission, the output is either a fully-typed normalized record or a
// per-field error map.
package validation

import (
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/justsurfingit/applytrack/internal/dtos"
	"github.com/justsurfingit/applytrack/internal/models"
)

// Field keys, matching the wire names of the form fields.
const (
	FieldCompanyName    = "company_name"
	FieldPositionTitle  = "position_title"
	FieldJobPostingURL  = "job_posting_url"
	FieldLocation       = "location"
	FieldWorkType       = "work_type"
	FieldSalaryRangeMin = "salary_range_min"
	FieldSalaryRangeMax = "salary_range_max"
	FieldStatus         = "status"
	FieldDateApplied    = "date_applied"
	FieldSectionID      = "section_id"
	FieldName           = "name"
	FieldEmail          = "email"
	FieldPassword       = "password"
)

// FieldErrors maps a field name to the first violation found for it.
type FieldErrors map[string]string

// add records a message for a field unless one is already present — only the
// first violation per field is reported.
func (fe FieldErrors) add(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}

// ParseApplication validates and normalizes a raw application form.
//
// On success the returned input has every optional field present as either
// its normalized value or an explicit nil, and status defaulted to applied.
// On failure the returned FieldErrors is non-empty and the input must be
// ignored. The date-not-in-future check is evaluated against now, i.e. at
// validation time, not data-entry time. Create and update share this exact
// function.
func ParseApplication(form dtos.ApplicationForm, now time.Time) (models.ApplicationInput, FieldErrors) {
	errs := FieldErrors{}
	var in models.ApplicationInput

	in.CompanyName = requiredString(errs, FieldCompanyName, form.CompanyName, 200,
		"Company name is required", "Company name must be 200 characters or fewer")
	in.PositionTitle = requiredString(errs, FieldPositionTitle, form.PositionTitle, 200,
		"Position title is required", "Position title must be 200 characters or fewer")

	in.JobPostingURL = parseURLField(errs, form.JobPostingURL)
	in.Location = optionalString(errs, FieldLocation, form.Location, 200,
		"Location must be 200 characters or fewer")

	if wt := strings.TrimSpace(form.WorkType); wt != "" {
		workType := models.WorkType(wt)
		if !workType.Valid() {
			errs.add(FieldWorkType, "Invalid work type")
		} else {
			in.WorkType = &workType
		}
	}

	in.SalaryRangeMin = parseSalary(errs, FieldSalaryRangeMin, form.SalaryRangeMin,
		"Minimum salary must be 0 or greater")
	in.SalaryRangeMax = parseSalary(errs, FieldSalaryRangeMax, form.SalaryRangeMax,
		"Maximum salary must be 0 or greater")

	// Cross-field rule: the violation belongs to the maximum field.
	if in.SalaryRangeMin != nil && in.SalaryRangeMax != nil && *in.SalaryRangeMax < *in.SalaryRangeMin {
		errs.add(FieldSalaryRangeMax, "Maximum must be greater than or equal to minimum")
	}

	in.Status = models.StatusApplied
	if st := strings.TrimSpace(form.Status); st != "" {
		status := models.Status(st)
		if !status.Valid() {
			errs.add(FieldStatus, "Invalid status value.")
		} else {
			in.Status = status
		}
	}

	if raw := strings.TrimSpace(form.DateApplied); raw == "" {
		errs.add(FieldDateApplied, "Date applied must be a valid date (YYYY-MM-DD)")
	} else if d, err := models.ParseDate(raw); err != nil {
		errs.add(FieldDateApplied, "Date applied must be a valid date (YYYY-MM-DD)")
	} else if d.After(models.DateOf(now)) {
		errs.add(FieldDateApplied, "Date applied cannot be in the future")
	} else {
		in.DateApplied = d
	}

	if raw := strings.TrimSpace(form.SectionID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			errs.add(FieldSectionID, "Invalid section")
		} else {
			in.SectionID = &id
		}
	}

	if len(errs) > 0 {
		return models.ApplicationInput{}, errs
	}
	return in, nil
}

// ParseStatus validates a standalone status value for single-field updates.
func ParseStatus(raw string) (models.Status, bool) {
	status := models.Status(strings.TrimSpace(raw))
	return status, status.Valid()
}

func requiredString(errs FieldErrors, field, raw string, maxLen int, requiredMsg, lengthMsg string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		errs.add(field, requiredMsg)
		return ""
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		errs.add(field, lengthMsg)
		return ""
	}
	return trimmed
}

func optionalString(errs FieldErrors, field, raw string, maxLen int, lengthMsg string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		errs.add(field, lengthMsg)
		return nil
	}
	return &trimmed
}

func parseURLField(errs FieldErrors, raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	if utf8.RuneCountInString(trimmed) > 2000 {
		errs.add(FieldJobPostingURL, "URL must be 2000 characters or fewer")
		return nil
	}
	u, err := url.Parse(trimmed)
	if err != nil || !u.IsAbs() || u.Host == "" {
		errs.add(FieldJobPostingURL, "Please enter a valid URL")
		return nil
	}
	return &trimmed
}

// parseSalary normalizes a numeric form field. Absent or unparsable values
// become nil rather than errors; only a parsed negative value is a violation.
func parseSalary(errs FieldErrors, field, raw, negativeMsg string) *int64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return nil
	}
	if n < 0 {
		errs.add(field, negativeMsg)
		return nil
	}
	return &n
}

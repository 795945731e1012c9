package dtos

// SectionForm carries the raw name of a section create or rename form.
type SectionForm struct {
	Name string `json:"name" form:"name"`
}

package models

// Form payloads submitted by the website. Each form has its own typed record
// validated at the boundary; validation tags are enforced by gin's binding
// before anything is forwarded to the mail gateway.

// QuoteRequest asks for pricing on a product or ingredient.
type QuoteRequest struct {
	Name        string `json:"name" binding:"required,min=2"`
	Email       string `json:"email" binding:"required,email"`
	Company     string `json:"company" binding:"required,min=2"`
	Phone       string `json:"phone,omitempty"`
	Country     string `json:"country,omitempty"`
	ProductSlug string `json:"product_slug,omitempty"`
	Quantity    string `json:"quantity,omitempty"`
	Message     string `json:"message" binding:"required,min=10"`
	AcceptTerms bool   `json:"accept_terms" binding:"required"`
}

// SampleRequest asks for a physical sample shipment.
type SampleRequest struct {
	Name         string `json:"name" binding:"required,min=2"`
	Email        string `json:"email" binding:"required,email"`
	Company      string `json:"company" binding:"required,min=2"`
	Phone        string `json:"phone,omitempty"`
	Country      string `json:"country" binding:"required"`
	CategorySlug string `json:"category_slug" binding:"required"`
	ProductSlug  string `json:"product_slug,omitempty"`
	Application  string `json:"application,omitempty"`
	Message      string `json:"message,omitempty"`
	AcceptTerms  bool   `json:"accept_terms" binding:"required"`
}

// CatalogueRequest gates the product catalogue PDF behind contact details.
type CatalogueRequest struct {
	Name        string `json:"name" binding:"required,min=2"`
	Email       string `json:"email" binding:"required,email"`
	Company     string `json:"company,omitempty"`
	AcceptTerms bool   `json:"accept_terms" binding:"required"`
}

// MeetingRequest books a call or trade-show meeting.
type MeetingRequest struct {
	Name          string `json:"name" binding:"required,min=2"`
	Email         string `json:"email" binding:"required,email"`
	Company       string `json:"company" binding:"required,min=2"`
	Phone         string `json:"phone,omitempty"`
	PreferredDate string `json:"preferred_date,omitempty"`
	EventID       string `json:"event_id,omitempty"`
	Message       string `json:"message,omitempty"`
	AcceptTerms   bool   `json:"accept_terms" binding:"required"`
}

// JobApplication applies for a specific opening. The resume file travels as
// a multipart upload alongside this record, not inside it.
type JobApplication struct {
	Name        string `form:"name" binding:"required,min=2"`
	Email       string `form:"email" binding:"required,email"`
	Phone       string `form:"phone,omitempty"`
	JobSlug     string `form:"job_slug" binding:"required"`
	CoverLetter string `form:"cover_letter,omitempty"`
	AcceptTerms bool   `form:"accept_terms" binding:"required"`
}

// GeneralApplication is an open application not tied to a listed opening.
type GeneralApplication struct {
	Name        string `form:"name" binding:"required,min=2"`
	Email       string `form:"email" binding:"required,email"`
	Phone       string `form:"phone,omitempty"`
	Area        string `form:"area,omitempty"`
	CoverLetter string `form:"cover_letter" binding:"required,min=10"`
	AcceptTerms bool   `form:"accept_terms" binding:"required"`
}

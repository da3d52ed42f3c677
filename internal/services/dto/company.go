package dto

type CreateCompanyRequest struct {
	CreatedBy   string  `json:"-"`
	Name        string  `json:"name" validate:"required,min=2,max=200"`
	Description *string `json:"description,omitempty"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,url"`
	Industry    *string `json:"industry,omitempty"`
	Size        *string `json:"size,omitempty"`
	Location    *string `json:"location,omitempty"`
}

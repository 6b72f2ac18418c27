package landing

// Form field types accepted by the lead-capture form builder.
const (
	FieldText     = "text"
	FieldEmail    = "email"
	FieldTel      = "tel"
	FieldSelect   = "select"
	FieldTextarea = "textarea"
	FieldCheckbox = "checkbox"
	FieldRadio    = "radio"
	FieldNumber   = "number"
	FieldDate     = "date"
)

// FormField is one input of the embedded lead-capture form.
type FormField struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Placeholder string   `json:"placeholder,omitempty"`
	Options     []string `json:"options,omitempty"`
	Validation  string   `json:"validation,omitempty"`
	Order       int      `json:"order"`
	Enabled     bool     `json:"enabled"`
}

// FormConfig defines the lead-capture form rendered inside the hero.
type FormConfig struct {
	Fields           []FormField `json:"fields"`
	SubmitButtonText string      `json:"submit_button_text"`
	SuccessMessage   string      `json:"success_message"`
	ErrorMessage     string      `json:"error_message"`
	RedirectURL      string      `json:"redirect_url,omitempty"`
	NotifyByEmail    bool        `json:"notify_by_email"`
	NotifyBySMS      bool        `json:"notify_by_sms"`
}

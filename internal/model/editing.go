package model

// EditingMode tags the state of the admin product form.
type EditingMode string

const (
	// EditingClosed means no product form is open.
	EditingClosed EditingMode = "closed"
	// EditingCreating means the form is open with an empty draft.
	EditingCreating EditingMode = "creating"
	// EditingExisting means the form is open on an existing product.
	EditingExisting EditingMode = "editing"
)

// Editing is the tagged variant for the product form state. Product is set
// only when Mode is EditingExisting.
type Editing struct {
	Mode    EditingMode `json:"mode"`
	Product *Product    `json:"product,omitempty"`
}

// EditingClosedState returns the closed variant.
func EditingClosedState() Editing {
	return Editing{Mode: EditingClosed}
}

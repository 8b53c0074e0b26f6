package transport

// UpdateStatusRequest moves a commission to a reviewed state.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED PAID REJECTED"`
}

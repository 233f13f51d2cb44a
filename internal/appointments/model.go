package appointments

import (
	"strings"
	"time"

	"github.com/otoplaza/showroom-ai/internal/extract"
)

// Appointment is a finalized showroom appointment. Immutable once created
// except through the update/delete endpoints.
type Appointment struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	VehicleType string    `json:"vehicle_type"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`

	// Callback requests reuse the appointment record with the request
	// moment as date/time.
	VehiclePrice      int  `json:"vehicle_price,omitempty"`
	CallbackRequested bool `json:"callback_requested,omitempty"`
}

// CreateRequest carries the fields of an appointment to persist.
type CreateRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	VehicleType string `json:"vehicle_type"`
	Date        string `json:"date"`
	Time        string `json:"time"`

	VehiclePrice      int  `json:"vehicle_price,omitempty"`
	CallbackRequested bool `json:"callback_requested,omitempty"`
}

// Validate checks that every required field is present.
func (r *CreateRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" ||
		strings.TrimSpace(r.Phone) == "" ||
		strings.TrimSpace(r.VehicleType) == "" ||
		strings.TrimSpace(r.Date) == "" ||
		strings.TrimSpace(r.Time) == "" {
		return ErrMissingFields
	}
	return nil
}

// FromInfo builds a create request from a completed extraction record.
func FromInfo(info extract.Info) CreateRequest {
	return CreateRequest{
		Name:        info.Name,
		Phone:       info.Phone,
		VehicleType: info.VehicleType,
		Date:        info.Date,
		Time:        info.Time,
	}
}

// UpdateRequest carries a partial update; nil fields are left untouched.
type UpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	VehicleType *string `json:"vehicle_type,omitempty"`
	Date        *string `json:"date,omitempty"`
	Time        *string `json:"time,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (a *Appointment) apply(req *UpdateRequest) {
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Phone != nil {
		a.Phone = *req.Phone
	}
	if req.VehicleType != nil {
		a.VehicleType = *req.VehicleType
	}
	if req.Date != nil {
		a.Date = *req.Date
	}
	if req.Time != nil {
		a.Time = *req.Time
	}
	if req.Status != nil {
		a.Status = *req.Status
	}
}

package extract

import "strings"

// Vehicle categories the showroom takes appointments for.
const (
	VehicleAutomobile = "otomobil"
	VehicleSUV        = "suv"
	VehicleCamper     = "karavan"
)

var validVehicleTypes = map[string]bool{
	VehicleAutomobile: true,
	VehicleSUV:        true,
	VehicleCamper:     true,
}

// ValidVehicleType reports whether category is one of the known categories.
func ValidVehicleType(category string) bool {
	return validVehicleTypes[category]
}

// Info is a partial appointment record accumulated across dialogue turns.
// An empty string means the field has not been extracted yet.
type Info struct {
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	VehicleType string `json:"vehicle_type,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
}

// Complete reports whether every required field is present and plausible:
// a name of at least 3 characters, a phone of at least 10 digits, a known
// vehicle category, and a resolved date and time.
func (i Info) Complete() bool {
	return len(strings.TrimSpace(i.Name)) >= 3 &&
		len(strings.TrimSpace(i.Phone)) >= 10 &&
		validVehicleTypes[i.VehicleType] &&
		i.Date != "" &&
		i.Time != ""
}

// Merge fills the empty fields of i from other. Fields already present are
// never overwritten; re-extraction can only add, not replace.
func (i Info) Merge(other Info) Info {
	if i.Name == "" {
		i.Name = other.Name
	}
	if i.Phone == "" {
		i.Phone = other.Phone
	}
	if i.VehicleType == "" {
		i.VehicleType = other.VehicleType
	}
	if i.Date == "" {
		i.Date = other.Date
	}
	if i.Time == "" {
		i.Time = other.Time
	}
	return i
}

// Field identifies one slot of the appointment record.
type Field string

const (
	FieldName        Field = "name"
	FieldPhone       Field = "phone"
	FieldVehicleType Field = "vehicle_type"
	FieldDate        Field = "date"
	FieldTime        Field = "time"
	// FieldNone signals that no field is missing and the record is ready
	// to finalize.
	FieldNone Field = ""
)

// NextMissingField returns the next field the dialogue should ask for, in
// fixed priority order: name, vehicle category, date, time. The phone is
// never asked for on the voice channel; it is filled from the caller ID at
// finalization.
func NextMissingField(i Info) Field {
	switch {
	case strings.TrimSpace(i.Name) == "":
		return FieldName
	case i.VehicleType == "":
		return FieldVehicleType
	case i.Date == "":
		return FieldDate
	case i.Time == "":
		return FieldTime
	default:
		return FieldNone
	}
}

package appointments

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Repository defines the interface for appointment storage.
type Repository interface {
	// Append persists a new appointment exactly once and returns it with
	// its assigned sequential identifier and creation timestamp.
	Append(ctx context.Context, req *CreateRequest) (*Appointment, error)
	List(ctx context.Context) ([]*Appointment, error)
	GetByID(ctx context.Context, id int) (*Appointment, error)
	Update(ctx context.Context, id int, req *UpdateRequest) (*Appointment, error)
	Delete(ctx context.Context, id int) error
}

// FileRepository stores appointments in a single JSON file. Every mutation
// rewrites the file through a temp-file rename so a crash can never leave a
// half-written store behind.
type FileRepository struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewFileRepository creates a repository backed by path, creating the file
// (and its directory) when missing.
func NewFileRepository(path string) (*FileRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("appointments: create data dir: %w", err)
	}
	r := &FileRepository{path: path, now: time.Now}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := r.write([]*Appointment{}); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *FileRepository) read() ([]*Appointment, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Appointment{}, nil
		}
		return nil, fmt.Errorf("appointments: read store: %w", err)
	}
	var all []*Appointment
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("appointments: decode store: %w", err)
	}
	return all, nil
}

func (r *FileRepository) write(all []*Appointment) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("appointments: encode store: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("appointments: write store: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("appointments: replace store: %w", err)
	}
	return nil
}

// Append persists a new appointment with the next sequential identifier.
func (r *FileRepository) Append(ctx context.Context, req *CreateRequest) (*Appointment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.read()
	if err != nil {
		return nil, err
	}

	maxID := 0
	for _, a := range all {
		if a.ID > maxID {
			maxID = a.ID
		}
	}

	appointment := &Appointment{
		ID:                maxID + 1,
		Name:              req.Name,
		Phone:             req.Phone,
		VehicleType:       req.VehicleType,
		Date:              req.Date,
		Time:              req.Time,
		Status:            "active",
		CreatedAt:         r.now().UTC(),
		VehiclePrice:      req.VehiclePrice,
		CallbackRequested: req.CallbackRequested,
	}

	all = append(all, appointment)
	if err := r.write(all); err != nil {
		return nil, err
	}
	return appointment, nil
}

// List returns every stored appointment in insertion order.
func (r *FileRepository) List(ctx context.Context) ([]*Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.read()
}

// GetByID retrieves one appointment.
func (r *FileRepository) GetByID(ctx context.Context, id int) (*Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.read()
	if err != nil {
		return nil, err
	}
	for _, a := range all {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

// Update applies a partial update to one appointment.
func (r *FileRepository) Update(ctx context.Context, id int, req *UpdateRequest) (*Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.read()
	if err != nil {
		return nil, err
	}
	for _, a := range all {
		if a.ID == id {
			a.apply(req)
			if err := r.write(all); err != nil {
				return nil, err
			}
			return a, nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes one appointment.
func (r *FileRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.read()
	if err != nil {
		return err
	}
	for i, a := range all {
		if a.ID == id {
			all = append(all[:i], all[i+1:]...)
			return r.write(all)
		}
	}
	return ErrNotFound
}

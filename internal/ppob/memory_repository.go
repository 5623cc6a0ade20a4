package ppob

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryRepository struct {
	mu       sync.RWMutex
	services []ServiceInfo
}

// NewMemoryRepository builds an in-memory catalog pre-seeded with the four
// standard services. Used in tests and dev mode.
func NewMemoryRepository() Repository {
	now := time.Now().UTC()
	seed := []struct {
		serviceType, name, description string
	}{
		{TypeElectricity, "Listrik", "Pembayaran tagihan listrik"},
		{TypeWater, "Air", "Pembayaran tagihan air"},
		{TypeInternet, "Internet", "Pembayaran tagihan internet"},
		{TypeMobile, "Pulsa", "Isi ulang pulsa"},
	}

	repo := &memoryRepository{}
	for _, s := range seed {
		repo.services = append(repo.services, ServiceInfo{
			ID:          uuid.New().String(),
			ServiceType: s.serviceType,
			Name:        s.name,
			Description: s.description,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return repo
}

func (r *memoryRepository) List(_ context.Context) ([]ServiceInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ServiceInfo, len(r.services))
	copy(out, r.services)
	return out, nil
}

func (r *memoryRepository) FindByType(_ context.Context, serviceType string) (ServiceInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, svc := range r.services {
		if svc.ServiceType == serviceType {
			return svc, nil
		}
	}
	return ServiceInfo{}, ErrUnknownService
}

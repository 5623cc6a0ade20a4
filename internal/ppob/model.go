package ppob

import "time"

// Known bill-payment service types.
const (
	TypeElectricity = "electricity"
	TypeWater       = "water"
	TypeInternet    = "internet"
	TypeMobile      = "mobile"
)

// ServiceInfo describes one payable service in the catalog.
type ServiceInfo struct {
	ID          string
	ServiceType string
	Name        string
	Description string
	Icon        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package domain

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleWorker   UserRole = "worker"
	RoleAdmin    UserRole = "admin"
)

func ValidRole(r UserRole) bool {
	switch r {
	case RoleCustomer, RoleWorker, RoleAdmin:
		return true
	}
	return false
}

type ServiceType string

const (
	ServicePlumber     ServiceType = "Plumber"
	ServiceElectrician ServiceType = "Electrician"
	ServiceCarpenter   ServiceType = "Carpenter"
	ServiceCleaner     ServiceType = "Cleaner"
	ServicePainter     ServiceType = "Painter"
	ServiceMechanic    ServiceType = "Mechanic"
)

func ValidServiceType(t ServiceType) bool {
	switch t {
	case ServicePlumber, ServiceElectrician, ServiceCarpenter,
		ServiceCleaner, ServicePainter, ServiceMechanic:
		return true
	}
	return false
}

// User is the common identity envelope shared by customers, workers and the
// admin. Worker-specific attributes live in WorkerProfile, attached only when
// Role == RoleWorker, so a customer can never carry a visiting charge.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" validate:"required,email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Mobile       string    `json:"mobile"`
	Address      string    `json:"address"`
	Pincode      string    `json:"pincode"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Worker *WorkerProfile `json:"worker,omitempty"`
}

type WorkerProfile struct {
	ID             int64       `json:"id"`
	UserID         int64       `json:"userId"`
	ServiceType    ServiceType `json:"workerType"`
	VisitingCharge int         `json:"visitingCharge"`
	IsAvailable    bool        `json:"isAvailable"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

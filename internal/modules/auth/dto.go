package auth

type RegisterRequest struct {
	Username string `json:"username" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"fullName" binding:"required"`
	Mobile   string `json:"mobile" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Pincode  string `json:"pincode" binding:"required"`
	Role     string `json:"role" binding:"required"`

	// Worker-only fields, rejected for other roles.
	WorkerType     string `json:"workerType,omitempty"`
	VisitingCharge *int   `json:"visitingCharge,omitempty"`
	IsAvailable    *bool  `json:"isAvailable,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

package seed

import (
	"context"
	"fmt"
	"log"

	"crewhub/internal/domain"
	"crewhub/internal/pkg/password"
	"crewhub/internal/repository"

	"gorm.io/gorm"
)

// EnsureAdmin creates the default admin account if no users exist yet.
// Demo accounts and a sample appointment come along so a fresh install
// has something to click through.
func EnsureAdmin(ctx context.Context, db *gorm.DB) error {
	users := repository.NewUserRepository(db)

	count, err := users.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("seed: empty database, creating default accounts")
	return Run(ctx, db)
}

// Run inserts the demo dataset. Existing usernames cause an error, so call it
// only against an empty database.
func Run(ctx context.Context, db *gorm.DB) error {
	users := repository.NewUserRepository(db)
	appointments := repository.NewAppointmentRepository(db)

	admin, err := createUser(ctx, users, &domain.User{
		Username: "admin@crewhub.com",
		FullName: "Admin User",
		Mobile:   "9999999999",
		Address:  "Admin HQ",
		Pincode:  "000000",
		Role:     domain.RoleAdmin,
	}, "admin")
	if err != nil {
		return err
	}
	log.Printf("seed: admin ready: %s", admin.Username)

	customer, err := createUser(ctx, users, &domain.User{
		Username: "user@example.com",
		FullName: "John Doe",
		Mobile:   "1234567890",
		Address:  "123 Maple St",
		Pincode:  "10001",
		Role:     domain.RoleCustomer,
	}, "password123")
	if err != nil {
		return err
	}

	electrician, err := createUser(ctx, users, &domain.User{
		Username: "electrician@example.com",
		FullName: "Mike Spark",
		Mobile:   "2223334444",
		Address:  "45 Ohm Ave",
		Pincode:  "10001",
		Role:     domain.RoleWorker,
		Worker: &domain.WorkerProfile{
			ServiceType:    domain.ServiceElectrician,
			VisitingCharge: 50,
			IsAvailable:    true,
		},
	}, "password123")
	if err != nil {
		return err
	}

	if _, err := createUser(ctx, users, &domain.User{
		Username: "plumber@example.com",
		FullName: "Bob Pipes",
		Mobile:   "5556667777",
		Address:  "8 Drain Rd",
		Pincode:  "10002",
		Role:     domain.RoleWorker,
		Worker: &domain.WorkerProfile{
			ServiceType:    domain.ServicePlumber,
			VisitingCharge: 40,
			IsAvailable:    true,
		},
	}, "password123"); err != nil {
		return err
	}

	appt := &domain.Appointment{
		CustomerID:       customer.ID,
		WorkerID:         electrician.ID,
		IssueDescription: "Sparking outlet in kitchen",
		Address:          customer.Address,
		Status:           domain.AppointmentPending,
	}
	if err := appointments.Create(ctx, appt); err != nil {
		return fmt.Errorf("seed: create appointment: %w", err)
	}

	log.Println("seed: demo data created")
	return nil
}

func createUser(ctx context.Context, users *repository.UserRepository, u *domain.User, plain string) (*domain.User, error) {
	hash, err := password.Hash(plain)
	if err != nil {
		return nil, fmt.Errorf("seed: hash password for %s: %w", u.Username, err)
	}
	u.PasswordHash = hash
	if err := users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("seed: create %s: %w", u.Username, err)
	}
	return u, nil
}

package main

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/meselghea/teledoc-app/internal/config"
	"github.com/meselghea/teledoc-app/internal/db"
	"github.com/meselghea/teledoc-app/internal/model"
	"github.com/meselghea/teledoc-app/internal/repository"
)

const demoPassword = "password123"

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Doctor{},
		&model.AppointmentStatus{},
		&model.Appointment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	statusRepo := repository.NewStatusRepository(gormDB)
	if err := statusRepo.EnsureDefaults(ctx); err != nil {
		log.Fatalf("Failed to seed statuses: %v", err)
	}
	log.Println("Status lookup table seeded")

	userRepo := repository.NewUserRepository(gormDB)
	doctorRepo := repository.NewDoctorRepository(gormDB)
	appointmentRepo := repository.NewAppointmentRepository(gormDB)

	patient, err := ensureUser(ctx, userRepo, "Demo Patient", "patient@example.com", model.RolePatient)
	if err != nil {
		log.Fatalf("Failed to seed patient: %v", err)
	}

	doctor, err := ensureUser(ctx, userRepo, "Demo Doctor", "doctor@example.com", model.RoleDoctor)
	if err != nil {
		log.Fatalf("Failed to seed doctor: %v", err)
	}
	if _, err := doctorRepo.FindByUserID(ctx, doctor.ID); err == gorm.ErrRecordNotFound {
		if err := doctorRepo.Create(ctx, &model.Doctor{
			UserID:     doctor.ID,
			Username:   "dr.demo",
			Specialist: "General Practice",
		}); err != nil {
			log.Fatalf("Failed to seed doctor profile: %v", err)
		}
	}

	pending, err := statusRepo.FindByName(ctx, model.StatusPending)
	if err != nil {
		log.Fatalf("Failed to resolve pending status: %v", err)
	}

	existing, err := appointmentRepo.ListByDoctor(ctx, doctor.ID)
	if err != nil {
		log.Fatalf("Failed to list appointments: %v", err)
	}
	if len(existing) == 0 {
		appointment := &model.Appointment{
			Date:      time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour),
			Time:      "09:30",
			Symptoms:  "Persistent cough",
			StatusID:  pending.ID,
			PatientID: patient.ID,
			DoctorID:  doctor.ID,
		}
		if err := appointmentRepo.Create(ctx, appointment); err != nil {
			log.Fatalf("Failed to seed appointment: %v", err)
		}
		log.Printf("Seeded pending appointment %s", appointment.ID)
	}

	log.Println("Seed completed")
}

func ensureUser(ctx context.Context, repo repository.UserRepository, name, email string, role model.Role) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 10)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	log.Printf("Seeded user %s (%s)", email, role)
	return user, nil
}

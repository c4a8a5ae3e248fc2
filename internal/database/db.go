package database

import (
	"log"
	"os"
	"time"

	"thesis-portal/internal/auth"
	"thesis-portal/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init подключается к postgres. Если БД так и не поднялась — процесс падает.
func Init(dsn string) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	// миграции
	err = db.AutoMigrate(
		&models.User{},
		&models.Session{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	seedDefaultUsers(db)
	return db
}

type seedUser struct {
	Username string
	Password string
	FullName string
	Role     models.Role
}

// по одному демо-аккаунту на каждую роль, логины/пароли можно переопределить через env
func defaultSeedUsers() []seedUser {
	return []seedUser{
		{
			Username: envOr("PROFESSOR_USERNAME", "professor@thesis.local"),
			Password: envOr("PROFESSOR_PASSWORD", "Professor123!"),
			FullName: "Διδάσκων",
			Role:     models.RoleProfessor,
		},
		{
			Username: envOr("STUDENT_USERNAME", "student@thesis.local"),
			Password: envOr("STUDENT_PASSWORD", "Student123!"),
			FullName: "Φοιτητής",
			Role:     models.RoleStudent,
		},
		{
			Username: envOr("SECRETARY_USERNAME", "secretary@thesis.local"),
			Password: envOr("SECRETARY_PASSWORD", "Secretary123!"),
			FullName: "Γραμματεία",
			Role:     models.RoleSecretary,
		},
	}
}

func seedDefaultUsers(db *gorm.DB) {
	for _, u := range defaultSeedUsers() {
		var count int64
		if err := db.Model(&models.User{}).
			Where("username = ?", u.Username).
			Count(&count).Error; err != nil {
			log.Printf("failed to check seed user %s: %v", u.Username, err)
			continue
		}
		if count > 0 {
			// уже есть — пропускаем
			continue
		}

		hash, err := auth.HashPassword(u.Password)
		if err != nil {
			log.Printf("failed to hash password for %s: %v", u.Username, err)
			continue
		}

		user := models.User{
			Username:     u.Username,
			FullName:     u.FullName,
			PasswordHash: hash,
			Role:         u.Role,
		}

		if err := db.Create(&user).Error; err != nil {
			log.Printf("failed to create seed user %s: %v", u.Username, err)
			continue
		}

		log.Printf("created seed user: %s (role=%s)", u.Username, u.Role)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package service

import (
	"time"

	"shop-service/internal/model"
	"shop-service/internal/schema"
	"shop-service/pkg/database"
	"shop-service/prometheus"

	"golang.org/x/crypto/bcrypt"
)

// SignUp creates a new user account with a hashed password. The email must
// not already be taken, compared case-insensitively. Returns a confirmation
// message rather than the created entity.
func SignUp(in schema.SignUpIn) (string, error) {
	db := database.GetDB()

	defer prometheus.TrackDBOperation("query")(time.Now())
	var count int64
	if err := db.Model(&model.User{}).Where("LOWER(email) = LOWER(?)", in.Email).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		prometheus.RecordAuthError("email_already_exists")
		return "", invalidRequest("User with this email already exist")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		prometheus.RecordAuthError("password_hash_failed")
		return "", err
	}

	user := model.User{
		Email:    in.Email,
		Password: string(hashedPassword),
		Name:     in.Name,
		IsActive: true,
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	if err := db.Create(&user).Error; err != nil {
		prometheus.RecordAuthError("user_creation_failed")
		return "", err
	}

	return "Account created successfully", nil
}

// Login verifies the given credentials and returns the matching user.
// Unknown email, wrong password and inactive account all yield the same
// error so the response never reveals which part failed.
func Login(in schema.LoginIn) (model.User, error) {
	db := database.GetDB()

	defer prometheus.TrackDBOperation("query")(time.Now())
	var user model.User
	if err := db.Where("email = ?", in.Email).First(&user).Error; err != nil {
		prometheus.RecordAuthError("user_not_found")
		return model.User{}, invalidRequest("Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		prometheus.RecordAuthError("invalid_password")
		return model.User{}, invalidRequest("Invalid email or password")
	}

	if !user.IsActive {
		prometheus.RecordAuthError("inactive_user")
		return model.User{}, invalidRequest("Invalid email or password")
	}

	return user, nil
}

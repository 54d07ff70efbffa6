package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/wimtiaz/user_registration_service/internal/core/domain"
	"github.com/wimtiaz/user_registration_service/internal/core/ports"
)

const registrationAgeFloor = 18

type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger ports.LoggerPort
	cache  ports.CachePort
	now    func() time.Time
}

func NewUserService(
	repo ports.UserRepository,
	hasher ports.PasswordHasher,
	logger ports.LoggerPort,
	cache ports.CachePort,
) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		logger: logger,
		cache:  cache,
		now:    time.Now,
	}
}

// Register runs the registration pipeline: uniqueness first, then the age
// floor, then hashing, then persistence. The uniqueness-before-age order is
// part of the contract; a duplicate underage submission is rejected as a
// duplicate.
func (us *UserService) Register(ctx context.Context, user *domain.User) (*domain.User, error) {
	existing, err := us.repo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		us.logger.Error("Failed to check email uniqueness", map[string]interface{}{
			"error":  err.Error(),
			"method": "Register",
		})
		return nil, err
	}
	if existing != nil {
		us.logger.Info("Registration rejected: duplicate email", map[string]interface{}{
			"email": user.Email,
		})
		return nil, domain.NewBadRequestError(domain.CodeUserAlreadyExists,
			fmt.Sprintf("Email [%s] already exists.", user.Email))
	}

	age := ageInYears(user.DateOfBirth, us.now())
	if age < registrationAgeFloor {
		us.logger.Info("Registration rejected: under age", map[string]interface{}{
			"age": age,
		})
		return nil, domain.NewBadRequestError(domain.CodeUnderAge,
			fmt.Sprintf("Age [%d] is below %d. Only %d and above users can register.",
				age, registrationAgeFloor, registrationAgeFloor))
	}

	hashedPassword, err := us.hasher.Hash(user.Password)
	if err != nil {
		us.logger.Error("Error during hashing", map[string]interface{}{
			"error":  err.Error(),
			"method": "Register",
		})
		return nil, err
	}
	user.Password = hashedPassword

	created, err := us.repo.CreateUser(ctx, user)
	if err != nil {
		us.logger.Error("Failed to create user in database", map[string]interface{}{
			"error":  err.Error(),
			"method": "Register",
		})
		return nil, err
	}
	if created == nil {
		// a create that raised no error but assigned no identifier,
		// kept distinct from an explicit repository error
		us.logger.Error("Registration yielded no record", map[string]interface{}{
			"email": user.Email,
		})
		return nil, domain.NewInternalError(domain.CodeUserRegistrationFailed,
			"User registration failed.")
	}

	us.logger.Info("User registered", map[string]interface{}{
		"id":    created.ID,
		"email": created.Email,
	})
	return created, nil
}

// GetUser looks a user up by id, reading through the cache.
func (us *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	cacheKey := fmt.Sprintf("user:%d", id)
	if cachedData, err := us.cache.Get(cacheKey); err == nil {
		var cachedUser domain.User
		if err := json.Unmarshal(cachedData, &cachedUser); err == nil {
			us.logger.Debug("User found in cache", map[string]interface{}{
				"id": id,
			})
			return &cachedUser, nil
		}
	}

	user, err := us.repo.GetUserByID(ctx, id)
	if err != nil {
		us.logger.Error("Failed to get user", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return nil, err
	}
	if user == nil {
		return nil, domain.NewBadRequestError(domain.CodeUserDoesNotExist,
			fmt.Sprintf("User with id [%d] does not exists", id))
	}

	if userData, err := json.Marshal(user); err != nil {
		us.logger.Warn("Failed to marshal user for cache", map[string]interface{}{
			"error": err.Error(),
			"id":    id,
		})
	} else if err := us.cache.Set(cacheKey, userData, 15*time.Minute); err != nil {
		us.logger.Warn("Failed to cache user", map[string]interface{}{
			"error": err.Error(),
			"id":    id,
		})
	}

	return user, nil
}

// GetUserByEmail is a pass-through lookup. Absence is (nil, nil), matching
// the repository contract.
func (us *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := us.repo.GetUserByEmail(ctx, email)
	if err != nil {
		us.logger.Error("Failed to get user by email", map[string]interface{}{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}
	return user, nil
}

// ageInYears is the calendar-aware whole-year difference between dob and
// now. Decrements when the birthday anniversary has not yet passed, which
// keeps leap-year birthdays correct.
func ageInYears(dateOfBirth, now time.Time) int {
	age := now.Year() - dateOfBirth.Year()
	if now.Before(dateOfBirth.AddDate(age, 0, 0)) {
		age--
	}
	return age
}

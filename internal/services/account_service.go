package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"travelexplorer/internal/booking"
	"travelexplorer/internal/models/db_models"
	"travelexplorer/internal/models/request_models"
	"travelexplorer/internal/models/response_models"
	"travelexplorer/internal/repositories"
	"travelexplorer/pkg/logger"
	mem "travelexplorer/pkg/memcache"
	"travelexplorer/pkg/metrics"
	"travelexplorer/pkg/utils"
)

type AccountServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) (response_models.AuthResponse, error)
	SignIn(ctx context.Context, request request_models.LoginRequest) (response_models.AuthResponse, error)
	SignOut(claims *utils.Claims)
	GetProfile(ctx context.Context, userID string) (response_models.UserResponse, error)
	UpdatePreferences(ctx context.Context, userID string, request request_models.UpdatePreferencesRequest) (response_models.UserResponse, error)
	// ContactFor prefills the contact block of a new booking draft.
	ContactFor(ctx context.Context, userID string) booking.ContactInfo
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	jwt         *utils.JWTManager
	revoked     mem.RevokedTokenStore
	sessions    mem.SessionStore
	metrics     *metrics.Metrics
	log         logger.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	jwt *utils.JWTManager,
	revoked mem.RevokedTokenStore,
	sessions mem.SessionStore,
	m *metrics.Metrics,
	log logger.Logger,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		jwt:         jwt,
		revoked:     revoked,
		sessions:    sessions,
		metrics:     m,
		log:         log,
	}
}

func (a *AccountService) SignUp(ctx context.Context, request request_models.SignUpRequest) (response_models.AuthResponse, error) {
	email := normalizeEmail(request.Email)

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		a.log.Error("Error checking existing account", "error", err)
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}
	if existingAccount != nil {
		return response_models.AuthResponse{}, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return response_models.AuthResponse{}, err
	}

	newAccount := &db_models.Account{
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    strings.TrimSpace(request.FirstName),
		LastName:     strings.TrimSpace(request.LastName),
		Role:         db_models.RoleUser,
		Profile:      &db_models.Profile{},
	}

	if err := a.accountRepo.CreateWithProfile(ctx, newAccount); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return response_models.AuthResponse{}, utils.ErrEmailAlreadyExists
		}
		a.log.Error("Error creating account", "error", err)
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}

	a.log.Info("Account created", "user_id", newAccount.ID.String())
	return a.issue(newAccount, newAccount.Profile)
}

func (a *AccountService) SignIn(ctx context.Context, request request_models.LoginRequest) (response_models.AuthResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		a.log.Error("Error fetching account", "error", err)
		a.metrics.SignIns.WithLabelValues("error").Inc()
		return response_models.AuthResponse{}, utils.ErrDatabaseError
	}

	if account == nil {
		a.metrics.SignIns.WithLabelValues("unknown_email").Inc()
		return response_models.AuthResponse{}, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		a.metrics.SignIns.WithLabelValues("bad_password").Inc()
		return response_models.AuthResponse{}, utils.ErrInvalidCredentials
	}

	// a missing or unreadable profile does not block sign-in
	profile, err := a.accountRepo.FindProfile(ctx, account.ID.String())
	if err != nil {
		a.log.Warn("Error fetching profile, continuing without it", "user_id", account.ID.String(), "error", err)
		profile = nil
	}

	a.metrics.SignIns.WithLabelValues("success").Inc()
	return a.issue(account, profile)
}

func (a *AccountService) issue(account *db_models.Account, profile *db_models.Profile) (response_models.AuthResponse, error) {
	token, claims, err := a.jwt.CreateToken(account.ID, account.Role)
	if err != nil {
		a.log.Error("Error signing token", "error", err)
		return response_models.AuthResponse{}, err
	}

	return response_models.AuthResponse{
		User:      toUserResponse(account, profile),
		Token:     token,
		ExpiresAt: utils.FormatRFC3339(claims.ExpiresAt.Time),
	}, nil
}

// SignOut revokes the token until it expires and drops the user's booking
// draft and saved filters.
func (a *AccountService) SignOut(claims *utils.Claims) {
	if claims == nil {
		return
	}
	if claims.UserID != "" {
		a.sessions.Drop(claims.UserID)
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return
	}
	a.revoked.Revoke(claims.ID, claims.ExpiresAt.Time)
}

func (a *AccountService) GetProfile(ctx context.Context, userID string) (response_models.UserResponse, error) {
	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		a.log.Error("Error fetching account", "user_id", userID, "error", err)
		return response_models.UserResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.UserResponse{}, utils.ErrAccountNotFound
	}

	return toUserResponse(account, account.Profile), nil
}

func (a *AccountService) UpdatePreferences(ctx context.Context, userID string, request request_models.UpdatePreferencesRequest) (response_models.UserResponse, error) {
	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		a.log.Error("Error fetching account", "user_id", userID, "error", err)
		return response_models.UserResponse{}, utils.ErrDatabaseError
	}
	if account == nil {
		return response_models.UserResponse{}, utils.ErrAccountNotFound
	}

	var prefs db_models.Preferences
	if account.Profile != nil {
		prefs = account.Profile.Preferences.Data()
	}
	if request.DietaryRestrictions != nil {
		prefs.DietaryRestrictions = UniqueTags(*request.DietaryRestrictions)
	}
	if request.AccessibilityNeeds != nil {
		prefs.AccessibilityNeeds = UniqueTags(*request.AccessibilityNeeds)
	}
	if request.PreferredActivities != nil {
		prefs.PreferredActivities = UniqueTags(*request.PreferredActivities)
	}

	profile, err := a.accountRepo.UpdatePreferences(ctx, userID, prefs)
	if err != nil {
		a.log.Error("Error updating preferences", "user_id", userID, "error", err)
		return response_models.UserResponse{}, utils.ErrDatabaseError
	}
	if profile == nil {
		return response_models.UserResponse{}, utils.ErrAccountNotFound
	}

	return toUserResponse(account, profile), nil
}

func (a *AccountService) ContactFor(ctx context.Context, userID string) booking.ContactInfo {
	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil || account == nil {
		return booking.ContactInfo{}
	}

	contact := booking.ContactInfo{
		Name:  strings.TrimSpace(account.FirstName + " " + account.LastName),
		Email: account.Email,
	}
	if account.Profile != nil {
		contact.Phone = account.Profile.Phone
	}
	return contact
}

// UniqueTags trims the tags and drops blanks and repeats, keeping the order
// in which each tag first appears.
func UniqueTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(account *db_models.Account, profile *db_models.Profile) response_models.UserResponse {
	user := response_models.UserResponse{
		ID:        account.ID.String(),
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Role:      account.Role,
		Preferences: response_models.Preferences{
			DietaryRestrictions: []string{},
			AccessibilityNeeds:  []string{},
			PreferredActivities: []string{},
		},
		CreatedAt: utils.FormatRFC3339(account.CreatedTime()),
	}

	if profile == nil {
		return user
	}

	user.AvatarURL = profile.AvatarURL
	user.Phone = profile.Phone
	user.Nationality = profile.Nationality
	if profile.DateOfBirth != nil {
		user.DateOfBirth = booking.FormatDate(*profile.DateOfBirth)
	}
	if ec := profile.EmergencyContact.Data(); ec != nil {
		user.EmergencyContact = &response_models.EmergencyContact{
			Name:         ec.Name,
			Phone:        ec.Phone,
			Relationship: ec.Relationship,
		}
	}

	prefs := profile.Preferences.Data()
	if prefs.DietaryRestrictions != nil {
		user.Preferences.DietaryRestrictions = prefs.DietaryRestrictions
	}
	if prefs.AccessibilityNeeds != nil {
		user.Preferences.AccessibilityNeeds = prefs.AccessibilityNeeds
	}
	if prefs.PreferredActivities != nil {
		user.Preferences.PreferredActivities = prefs.PreferredActivities
	}

	return user
}

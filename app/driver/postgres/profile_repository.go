package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"session-manager/app/domain"
	"session-manager/app/port"
)

const profileColumns = "id, email, display_name, avatar_url, currency, theme, notify_email, notify_push, created_at, updated_at"

// ProfileRepository implements port.ProfileRepository for PostgreSQL
type ProfileRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db DatabaseIface, logger *slog.Logger) port.ProfileRepository {
	return &ProfileRepository{
		db:     db,
		logger: logger.With("component", "profile_repository"),
	}
}

// Create inserts a profile row keyed by the identity ID
func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			id, email, display_name, avatar_url, currency, theme,
			notify_email, notify_push, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, now(), now()
		)`

	r.logger.Info("creating profile", "profile_id", profile.ID, "email", profile.Email)

	_, err := r.db.Exec(ctx, query,
		profile.ID,
		profile.Email,
		profile.DisplayName,
		profile.AvatarURL,
		profile.Currency,
		string(profile.Theme),
		profile.Notifications.Email,
		profile.Notifications.Push,
	)
	if err != nil {
		r.logger.Error("failed to create profile", "profile_id", profile.ID, "error", err)
		return fmt.Errorf("failed to create profile: %w", err)
	}

	r.logger.Info("profile created successfully", "profile_id", profile.ID)
	return nil
}

// GetByID fetches a profile row by identity ID
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	r.logger.Debug("fetching profile", "profile_id", id)

	profile, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("profile not found", "profile_id", id)
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error("failed to fetch profile", "profile_id", id, "error", err)
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	return profile, nil
}

// Update applies a partial update to the profile row, stamping updated_at
// server-side. Unset fields are left untouched.
func (r *ProfileRepository) Update(ctx context.Context, id uuid.UUID, update domain.ProfileUpdate) (*domain.Profile, error) {
	assignments := []string{"updated_at = now()"}
	args := []interface{}{id}

	addAssignment := func(column string, value interface{}) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if update.DisplayName != nil {
		addAssignment("display_name", *update.DisplayName)
	}
	if update.AvatarURL != nil {
		addAssignment("avatar_url", *update.AvatarURL)
	}
	if update.Currency != nil {
		addAssignment("currency", *update.Currency)
	}
	if update.Theme != nil {
		addAssignment("theme", string(*update.Theme))
	}
	if update.NotifyEmail != nil {
		addAssignment("notify_email", *update.NotifyEmail)
	}
	if update.NotifyPush != nil {
		addAssignment("notify_push", *update.NotifyPush)
	}

	query := `UPDATE profiles SET ` + strings.Join(assignments, ", ") +
		` WHERE id = $1 RETURNING ` + profileColumns

	r.logger.Info("updating profile",
		"profile_id", id,
		"fields", len(assignments)-1)

	profile, err := scanProfile(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Warn("profile not found for update", "profile_id", id)
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error("failed to update profile", "profile_id", id, "error", err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	r.logger.Info("profile updated successfully", "profile_id", id)
	return profile, nil
}

// scanProfile scans a profile row in column order
func scanProfile(row pgx.Row) (*domain.Profile, error) {
	profile := &domain.Profile{}
	var theme string

	err := row.Scan(
		&profile.ID,
		&profile.Email,
		&profile.DisplayName,
		&profile.AvatarURL,
		&profile.Currency,
		&theme,
		&profile.Notifications.Email,
		&profile.Notifications.Push,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	profile.Theme = domain.Theme(theme)
	return profile, nil
}

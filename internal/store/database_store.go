package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/counselor-profiles/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DatabaseStore справочник консультантов в PostgreSQL (таблицы profiles и counselors)
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(pool *pgxpool.Pool) *DatabaseStore {
	return &DatabaseStore{
		pool: pool,
	}
}

// ListCounselorRefs возвращает консультантов в порядке имени и идентификатора
func (ds *DatabaseStore) ListCounselorRefs(ctx context.Context, limit int) ([]model.CounselorRef, error) {
	query := `
		SELECT profile_id::text, name
		FROM profiles
		WHERE role = 'counselor'
		ORDER BY name, profile_id
		LIMIT $1
	`

	// LIMIT NULL снимает ограничение
	var limitArg any
	if limit > 0 {
		limitArg = limit
	}

	rows, err := ds.pool.Query(ctx, query, limitArg)
	if err != nil {
		return nil, fmt.Errorf("failed to query counselors: %w", err)
	}

	refs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.CounselorRef, error) {
		var (
			id   string
			name string
		)
		if err := row.Scan(&id, &name); err != nil {
			return model.CounselorRef{}, err
		}
		return model.CounselorRef{ID: model.CounselorID(id), Name: name}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan counselors: %w", err)
	}

	return refs, nil
}

// GetCounselorByID возвращает карточку консультанта.
// Профиль без строки в counselors отдается с пустыми полями карточки: он участвует в переборе кандидатов.
func (ds *DatabaseStore) GetCounselorByID(ctx context.Context, id model.CounselorID) (model.Counselor, error) {
	// Колонка profile_id имеет тип UUID, остальные значения заведомо не найдутся
	if _, err := uuid.Parse(string(id)); err != nil {
		return model.Counselor{}, fmt.Errorf("counselor %s: %w", id, model.ErrCounselorNotFound)
	}

	query := `
		SELECT
			p.profile_id::text,
			p.name,
			p.role,
			COALESCE(c.short_introduction, ''),
			COALESCE(c.years_of_experience, 0),
			COALESCE(c.average_rating, 0)::float8,
			COALESCE(c.review_count, 0),
			COALESCE(c.center_name, ''),
			COALESCE(c.center_address, ''),
			COALESCE(c.introduction_greeting, ''),
			COALESCE(c.is_verified, FALSE),
			COALESCE(c.total_counseling_count, 0),
			COALESCE(c.profile_image_url, p.avatar_url, '')
		FROM profiles p
		LEFT JOIN counselors c ON c.counselor_id = p.profile_id
		WHERE p.profile_id = $1 AND p.role = 'counselor'
	`

	var (
		counselor model.Counselor
		profileID string
	)
	err := ds.pool.QueryRow(ctx, query, string(id)).Scan(
		&profileID,
		&counselor.Name,
		&counselor.Role,
		&counselor.ShortIntroduction,
		&counselor.YearsOfExperience,
		&counselor.AverageRating,
		&counselor.ReviewCount,
		&counselor.CenterName,
		&counselor.CenterAddress,
		&counselor.IntroductionGreeting,
		&counselor.IsVerified,
		&counselor.TotalCounselingCount,
		&counselor.ProfileImageURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Counselor{}, fmt.Errorf("counselor %s: %w", id, model.ErrCounselorNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
		return model.Counselor{}, fmt.Errorf("counselor %s: %w", id, model.ErrCounselorNotFound)
	}
	if err != nil {
		return model.Counselor{}, fmt.Errorf("failed to read counselor: %w", err)
	}

	counselor.ID = model.CounselorID(profileID)

	return counselor, nil
}

// InsertCounselors добавляет консультантов одной транзакцией
func (ds *DatabaseStore) InsertCounselors(ctx context.Context, counselors []model.Counselor) error {
	tx, err := ds.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for i, counselor := range counselors {
		counselor, err := normalize(counselor)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if _, err := uuid.Parse(string(counselor.ID)); err != nil {
			return fmt.Errorf("entry %d: %w: profile id is not a UUID", i, ErrInvalidCounselor)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO profiles (profile_id, name, role, avatar_url)
			VALUES ($1, $2, $3, NULLIF($4, ''))
		`, string(counselor.ID), counselor.Name, counselor.Role, counselor.ProfileImageURL)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return fmt.Errorf("counselor %s: %w", counselor.ID, ErrAlreadyExists)
			}
			return fmt.Errorf("failed to insert profile %s: %w", counselor.ID, err)
		}

		if counselor.Role != model.RoleCounselor {
			continue
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO counselors (
				counselor_id, short_introduction, years_of_experience, average_rating,
				review_count, total_counseling_count, center_name, center_address,
				introduction_greeting, profile_image_url, is_verified
			)
			VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''), NULLIF($10, ''), $11)
		`,
			string(counselor.ID),
			counselor.ShortIntroduction,
			counselor.YearsOfExperience,
			counselor.AverageRating,
			counselor.ReviewCount,
			counselor.TotalCounselingCount,
			counselor.CenterName,
			counselor.CenterAddress,
			counselor.IntroductionGreeting,
			counselor.ProfileImageURL,
			counselor.IsVerified,
		)
		if err != nil {
			return fmt.Errorf("failed to insert counselor %s: %w", counselor.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Ping проверяет доступность базы данных
func (ds *DatabaseStore) Ping(ctx context.Context) error {
	return ds.pool.Ping(ctx)
}

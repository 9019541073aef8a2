package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/skillswap-app/skillswap-backend/internal/domain"
	"github.com/skillswap-app/skillswap-backend/internal/repository"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// userRow maps a users row; progression state that would otherwise need a
// handful of join tables is kept as jsonb documents.
type userRow struct {
	ID             int     `db:"id"`
	Name           string  `db:"name"`
	Bio            string  `db:"bio"`
	IsAdmin        bool    `db:"is_admin"`
	SkillsToTeach  []byte  `db:"skills_to_teach"`
	SkillsToLearn  []byte  `db:"skills_to_learn"`
	Matches        []byte  `db:"matches"`
	Level          int     `db:"level"`
	XP             int     `db:"xp"`
	Streak         int     `db:"streak"`
	Badges         []byte  `db:"badges"`
	VerifiedSkills []byte  `db:"verified_skills"`
	TeacherRating  float64 `db:"teacher_rating"`
	TotalRatings   int     `db:"total_ratings"`
}

func (r *userRow) toDomain() (*domain.User, error) {
	u := &domain.User{
		ID:            r.ID,
		Name:          r.Name,
		Bio:           r.Bio,
		IsAdmin:       r.IsAdmin,
		Level:         r.Level,
		XP:            r.XP,
		Streak:        r.Streak,
		TeacherRating: r.TeacherRating,
		TotalRatings:  r.TotalRatings,
	}
	for _, f := range []struct {
		raw []byte
		dst interface{}
	}{
		{r.SkillsToTeach, &u.SkillsToTeach},
		{r.SkillsToLearn, &u.SkillsToLearn},
		{r.Matches, &u.Matches},
		{r.Badges, &u.Badges},
		{r.VerifiedSkills, &u.VerifiedSkills},
	} {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return nil, fmt.Errorf("failed to decode user %d: %w", r.ID, err)
		}
	}
	return u, nil
}

func rowFromDomain(u *domain.User) (*userRow, error) {
	r := &userRow{
		ID:            u.ID,
		Name:          u.Name,
		Bio:           u.Bio,
		IsAdmin:       u.IsAdmin,
		Level:         u.Level,
		XP:            u.XP,
		Streak:        u.Streak,
		TeacherRating: u.TeacherRating,
		TotalRatings:  u.TotalRatings,
	}
	var err error
	if r.SkillsToTeach, err = json.Marshal(u.SkillsToTeach); err != nil {
		return nil, err
	}
	if r.SkillsToLearn, err = json.Marshal(u.SkillsToLearn); err != nil {
		return nil, err
	}
	if r.Matches, err = json.Marshal(u.Matches); err != nil {
		return nil, err
	}
	if r.Badges, err = json.Marshal(u.Badges); err != nil {
		return nil, err
	}
	if r.VerifiedSkills, err = json.Marshal(u.VerifiedSkills); err != nil {
		return nil, err
	}
	return r, nil
}

const userColumns = `id, name, bio, is_admin, skills_to_teach, skills_to_learn,
	matches, level, xp, streak, badges, verified_skills, teacher_rating, total_ratings`

func (r *userRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	var row userRow
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return row.toDomain()
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	var rows []userRow
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, err
	}

	users := make([]*domain.User, 0, len(rows))
	for i := range rows {
		u, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	row, err := rowFromDomain(user)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (name, bio, is_admin, skills_to_teach, skills_to_learn,
			matches, level, xp, streak, badges, verified_skills, teacher_rating, total_ratings)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query,
		row.Name, row.Bio, row.IsAdmin, row.SkillsToTeach, row.SkillsToLearn,
		row.Matches, row.Level, row.XP, row.Streak, row.Badges, row.VerifiedSkills,
		row.TeacherRating, row.TotalRatings,
	).Scan(&user.ID)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	return r.updateTx(ctx, r.db, user)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (r *userRepository) updateTx(ctx context.Context, ex execer, user *domain.User) error {
	row, err := rowFromDomain(user)
	if err != nil {
		return err
	}

	query := `
		UPDATE users SET name = $1, bio = $2, is_admin = $3, skills_to_teach = $4,
			skills_to_learn = $5, matches = $6, level = $7, xp = $8, streak = $9,
			badges = $10, verified_skills = $11, teacher_rating = $12, total_ratings = $13
		WHERE id = $14
	`
	result, err := ex.ExecContext(ctx, query,
		row.Name, row.Bio, row.IsAdmin, row.SkillsToTeach, row.SkillsToLearn,
		row.Matches, row.Level, row.XP, row.Streak, row.Badges, row.VerifiedSkills,
		row.TeacherRating, row.TotalRatings, row.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdatePair locks both rows in ascending id order inside one transaction, so
// the mirrored views change together or not at all.
func (r *userRepository) UpdatePair(ctx context.Context, aID, bID int, transform func(a, b *domain.User) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin pair update: %w", err)
	}
	defer tx.Rollback()

	lockFirst, lockSecond := aID, bID
	if lockFirst > lockSecond {
		lockFirst, lockSecond = lockSecond, lockFirst
	}

	var rows []userRow
	query := `SELECT ` + userColumns + ` FROM users WHERE id IN ($1, $2) ORDER BY id FOR UPDATE`
	if err := tx.SelectContext(ctx, &rows, query, lockFirst, lockSecond); err != nil {
		return err
	}
	if len(rows) != 2 {
		return domain.ErrUserNotFound
	}

	byID := make(map[int]*domain.User, 2)
	for i := range rows {
		u, err := rows[i].toDomain()
		if err != nil {
			return err
		}
		byID[u.ID] = u
	}

	if err := transform(byID[aID], byID[bID]); err != nil {
		return err
	}

	for _, u := range byID {
		if err := r.updateTx(ctx, tx, u); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *userRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin user delete: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	// Prune the deleted id from everyone's match views.
	prune := `
		UPDATE users SET matches = COALESCE(
			(SELECT jsonb_agg(m) FROM jsonb_array_elements(matches) m
			 WHERE (m->>'user_id')::int <> $1),
			'[]'::jsonb)
		WHERE matches @> jsonb_build_array(jsonb_build_object('user_id', $1::int))
	`
	if _, err := tx.ExecContext(ctx, prune, id); err != nil {
		return err
	}
	return tx.Commit()
}

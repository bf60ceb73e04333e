package repository

import (
	"context"
	"time"

	"github.com/artale-crew/boss-scheduler/backend/internal/domain"
)

func (r *Repository) CreatePlayer(player *domain.Player) error {
	query := `
		INSERT INTO players (name, job_class, email)
		VALUES ($1, $2, NULLIF($3, ''))
		RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{player.Name, string(player.JobClass), player.Email}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&player.ID, &player.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetPlayerByID(id int64) (*domain.Player, error) {
	query := `
		SELECT name, job_class, COALESCE(email, ''), created_at
		FROM players WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	player := &domain.Player{
		ID: id,
	}

	dst := []any{&player.Name, &player.JobClass, &player.Email, &player.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return player, nil
}

func (r *Repository) GetPlayerByName(name string) (*domain.Player, error) {
	query := `
		SELECT id, job_class, COALESCE(email, ''), created_at
		FROM players WHERE name = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	player := &domain.Player{
		Name: name,
	}

	dst := []any{&player.ID, &player.JobClass, &player.Email, &player.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, name).Scan(dst...); err != nil {
		return nil, err
	}

	return player, nil
}

func (r *Repository) GetAllPlayers() ([]*domain.Player, error) {
	query := `
		SELECT id, name, job_class, COALESCE(email, ''), created_at
		FROM players ORDER BY name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]*domain.Player, 0)
	for rows.Next() {
		player := &domain.Player{}
		dst := []any{&player.ID, &player.Name, &player.JobClass, &player.Email, &player.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return players, nil
}

func (r *Repository) GetPlayersWithEmail() ([]*domain.Player, error) {
	query := `
		SELECT id, name, job_class, email, created_at
		FROM players WHERE email IS NOT NULL ORDER BY name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]*domain.Player, 0)
	for rows.Next() {
		player := &domain.Player{}
		dst := []any{&player.ID, &player.Name, &player.JobClass, &player.Email, &player.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return players, nil
}

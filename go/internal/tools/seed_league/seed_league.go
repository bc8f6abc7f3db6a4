package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/dbconfig"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/leaguedb"
	"github.com/niiboye001/rvbfc-antigravity-sub000/go/internal/mockdata"
)

func main() {
	opts := mockdata.DefaultOptions()
	flag.Int64Var(&opts.Seed, "seed", opts.Seed, "random seed")
	flag.IntVar(&opts.Teams, "teams", opts.Teams, "number of teams")
	flag.IntVar(&opts.PlayersPerTeam, "players", opts.PlayersPerTeam, "players per team")
	flag.IntVar(&opts.Seasons, "seasons", opts.Seasons, "number of seasons")
	flag.IntVar(&opts.RoundRobin, "legs", opts.RoundRobin, "round-robin legs per pairing")
	flag.Parse()
	opts.Now = time.Now().UTC()

	ctx := context.Background()

	// 1) Generate the league
	data, err := mockdata.Generate(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate league: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	if !cfg.Configured() {
		cfg.Host = "localhost"
	}
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, leaguedb.Schema()); err != nil {
		fmt.Fprintf(os.Stderr, "apply schema: %v\n", err)
		os.Exit(1)
	}

	// 3) Insert everything in one transaction
	tx, err := pool.Begin(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "begin: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	inserted, events, err := seed(ctx, tx, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
	if err := tx.Commit(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "commit: %v\n", err)
		os.Exit(1)
	}

	// 4) Print summary
	fmt.Printf(
		"League seed complete: %d seasons, %d teams, %d players, %d matches, %d events (%d rows inserted)\n",
		len(data.Seasons), len(data.Teams), len(data.Players), len(data.Matches), events, inserted,
	)
}

// seed queues every row in a single batch. Existing ids are skipped, so
// reruns with the same seed are no-ops.
func seed(ctx context.Context, tx pgx.Tx, data *mockdata.Dataset) (int64, int, error) {
	batch := &pgx.Batch{}

	// is_current is seeded false first so the single-current index holds
	// when a previous run left another season current.
	batch.Queue(`UPDATE seasons SET is_current = FALSE WHERE is_current`)
	for _, s := range data.Seasons {
		batch.Queue(`
            INSERT INTO seasons (id, name, year, sequence, is_current, created_at)
            VALUES ($1,$2,$3,$4,FALSE,$5)
            ON CONFLICT (id) DO NOTHING
        `, s.ID, s.Name, s.Year, s.Sequence, s.CreatedAt)
	}
	for _, s := range data.Seasons {
		if s.IsCurrent {
			batch.Queue(`UPDATE seasons SET is_current = TRUE WHERE id = $1`, s.ID)
		}
	}

	for _, t := range data.Teams {
		batch.Queue(`
            INSERT INTO teams (id, season_id, name, initials, color, logo_url, created_at)
            VALUES ($1,$2,$3,$4,$5,$6,$7)
            ON CONFLICT (id) DO NOTHING
        `, t.ID, t.SeasonID, t.Name, t.Initials, t.Color, t.LogoURL, t.CreatedAt)
	}

	for _, p := range data.Players {
		batch.Queue(`
            INSERT INTO players (id, team_id, name, goals, assists, yellow_cards, red_cards, created_at)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
            ON CONFLICT (id) DO NOTHING
        `, p.ID, p.TeamID, p.Name, p.Goals, p.Assists, p.YellowCards, p.RedCards, p.CreatedAt)
	}

	events := 0
	for _, m := range data.Matches {
		batch.Queue(`
            INSERT INTO matches (id, season_id, home_team_id, away_team_id, home_score, away_score, is_finished, played_at, created_at)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
            ON CONFLICT (id) DO NOTHING
        `, m.ID, m.SeasonID, m.HomeTeamID, m.AwayTeamID, m.HomeScore, m.AwayScore, m.IsFinished, m.PlayedAt, m.CreatedAt)

		for i, e := range m.Events {
			batch.Queue(`
                INSERT INTO match_events (id, match_id, position, type, player_id, team_id, assistant_id, minute)
                VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
                ON CONFLICT (id) DO NOTHING
            `, e.ID, m.ID, i, string(e.Type), e.PlayerID, e.TeamID, e.AssistantID, e.Minute)
			events++
		}
	}

	results := tx.SendBatch(ctx, batch)
	var inserted int64
	for i := 0; i < batch.Len(); i++ {
		tag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return 0, 0, fmt.Errorf("batch statement %d: %w", i, err)
		}
		if tag.Insert() {
			inserted += tag.RowsAffected()
		}
	}
	if err := results.Close(); err != nil {
		return 0, 0, err
	}
	return inserted, events, nil
}

package vocabulary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/lexiquiz/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/vocabulary/mock_repository.go -package=mock_vocabulary

// Repository defines operations for managing saved words.
type Repository interface {
	// SampleByPriority returns up to count records drawn at random from the highest
	// priorities, highest priority first.
	SampleByPriority(ctx context.Context, count int) ([]Record, error)
	// SampleExcluding returns up to count random records whose spelling is not in exclude.
	SampleExcluding(ctx context.Context, exclude []string, count int) ([]Record, error)
	GetBySpelling(ctx context.Context, spelling string) (Record, error)
	GetByID(ctx context.Context, id int64) (Record, error)
	FindAll(ctx context.Context) ([]Record, error)
	MarkPracticed(ctx context.Context, id int64) error
	UpdateScore(ctx context.Context, id int64, score int) error
	// AddScore adds delta to the score of a saved word, reporting whether it was saved.
	AddScore(ctx context.Context, spelling string, delta int) (bool, error)
	Insert(ctx context.Context, spelling string, initialScore int) (Record, error)
	// Delete removes a saved word, reporting whether it was saved.
	Delete(ctx context.Context, spelling string) (bool, error)
}

// Shuffler is the randomness SampleExcluding needs. *math/rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

const selectColumns = "SELECT id, spelling, score, last_practiced_at, created_at FROM words"

// DBRepository implements Repository on MySQL, SQLite and PostgreSQL.
type DBRepository struct {
	db       *sqlx.DB
	shuffler Shuffler
	now      func() time.Time
}

func NewDBRepository(db *sqlx.DB, shuffler Shuffler) *DBRepository {
	return &DBRepository{
		db:       db,
		shuffler: shuffler,
		now:      time.Now,
	}
}

// WithClock replaces the clock used for priorities and timestamps.
func (r *DBRepository) WithClock(now func() time.Time) *DBRepository {
	r.now = now
	return r
}

func (r *DBRepository) selectRecords(ctx context.Context, query string, args ...interface{}) ([]Record, error) {
	var rows []wordRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toRecord())
	}
	return records, nil
}

func (r *DBRepository) getRecord(ctx context.Context, query string, args ...interface{}) (Record, error) {
	var row wordRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return row.toRecord(), nil
}

func (r *DBRepository) SampleByPriority(ctx context.Context, count int) ([]Record, error) {
	if count <= 0 {
		return nil, nil
	}
	records, err := r.selectRecords(ctx, selectColumns)
	if err != nil {
		return nil, fmt.Errorf("load words to sample by priority: %w", err)
	}
	now := r.now()
	SortByPriority(records, now)

	// draw count records at random from the top PriorityPoolFactor*count, then order them
	pool := PriorityPoolFactor * count
	if len(records) > pool {
		records = records[:pool]
	}
	r.shuffler.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})
	if len(records) > count {
		records = records[:count]
	}
	SortByPriority(records, now)
	return records, nil
}

func (r *DBRepository) SampleExcluding(ctx context.Context, exclude []string, count int) ([]Record, error) {
	if count <= 0 {
		return nil, nil
	}

	query := selectColumns + " ORDER BY id"
	var args []interface{}
	if len(exclude) > 0 {
		normalized := make([]string, 0, len(exclude))
		for _, spelling := range exclude {
			normalized = append(normalized, NormalizeSpelling(spelling))
		}
		var err error
		query, args, err = sqlx.In(selectColumns+" WHERE spelling NOT IN (?) ORDER BY id", normalized)
		if err != nil {
			return nil, fmt.Errorf("sqlx.In > %w", err)
		}
	}

	records, err := r.selectRecords(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load words to sample: %w", err)
	}
	r.shuffler.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})
	if len(records) > count {
		records = records[:count]
	}
	return records, nil
}

func (r *DBRepository) GetBySpelling(ctx context.Context, spelling string) (Record, error) {
	record, err := r.getRecord(ctx, selectColumns+" WHERE spelling = ?", NormalizeSpelling(spelling))
	if err != nil {
		return Record{}, fmt.Errorf("get word %q: %w", spelling, err)
	}
	return record, nil
}

func (r *DBRepository) GetByID(ctx context.Context, id int64) (Record, error) {
	record, err := r.getRecord(ctx, selectColumns+" WHERE id = ?", id)
	if err != nil {
		return Record{}, fmt.Errorf("get word %d: %w", id, err)
	}
	return record, nil
}

func (r *DBRepository) FindAll(ctx context.Context) ([]Record, error) {
	records, err := r.selectRecords(ctx, selectColumns+" ORDER BY spelling")
	if err != nil {
		return nil, fmt.Errorf("load all words: %w", err)
	}
	return records, nil
}

func (r *DBRepository) exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("result.RowsAffected > %w", err)
	}
	return affected, nil
}

func (r *DBRepository) MarkPracticed(ctx context.Context, id int64) error {
	affected, err := r.exec(ctx, "UPDATE words SET last_practiced_at = ? WHERE id = ?", r.now().Unix(), id)
	if err != nil {
		return fmt.Errorf("mark word %d practiced: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("mark word %d practiced: %w", id, ErrNotFound)
	}
	return nil
}

func (r *DBRepository) UpdateScore(ctx context.Context, id int64, score int) error {
	affected, err := r.exec(ctx, "UPDATE words SET score = ? WHERE id = ?", ClampScore(score), id)
	if err != nil {
		return fmt.Errorf("update score of word %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("update score of word %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *DBRepository) AddScore(ctx context.Context, spelling string, delta int) (bool, error) {
	affected, err := r.exec(ctx,
		"UPDATE words SET score = CASE WHEN score + ? > ? THEN ? ELSE score + ? END WHERE spelling = ?",
		delta, MaxScore, MaxScore, delta, NormalizeSpelling(spelling))
	if err != nil {
		return false, fmt.Errorf("add score to word %q: %w", spelling, err)
	}
	return affected > 0, nil
}

func (r *DBRepository) Insert(ctx context.Context, spelling string, initialScore int) (Record, error) {
	now := r.now().Unix()
	normalized := NormalizeSpelling(spelling)

	var record Record
	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			tx.Rebind("INSERT INTO words (spelling, score, last_practiced_at, created_at) VALUES (?, ?, ?, ?)"),
			normalized, ClampScore(initialScore), now, now); err != nil {
			return err
		}

		var row wordRow
		if err := tx.GetContext(ctx, &row, tx.Rebind(selectColumns+" WHERE spelling = ?"), normalized); err != nil {
			return err
		}
		record = row.toRecord()
		return nil
	})
	if err != nil {
		return Record{}, fmt.Errorf("insert word %q: %w", spelling, err)
	}
	return record, nil
}

func (r *DBRepository) Delete(ctx context.Context, spelling string) (bool, error) {
	affected, err := r.exec(ctx, "DELETE FROM words WHERE spelling = ?", NormalizeSpelling(spelling))
	if err != nil {
		return false, fmt.Errorf("delete word %q: %w", spelling, err)
	}
	return affected > 0, nil
}

package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Transcript represents a saved fingerspelled word.
type Transcript struct {
	ID       string    `json:"id"`
	Word     string    `json:"word"`
	SignedAt time.Time `json:"signed_at"`
}

// TranscriptRepository provides CRUD operations for transcripts.
type TranscriptRepository struct {
	db *sql.DB
}

// Transcripts returns the transcript repository for this store.
func (s *Store) Transcripts() *TranscriptRepository {
	return &TranscriptRepository{db: s.db}
}

// Create saves a new transcript. The ID and SignedAt fields are assigned
// here; the caller only supplies the word.
func (r *TranscriptRepository) Create(word string) (*Transcript, error) {
	t := &Transcript{
		ID:       uuid.New().String(),
		Word:     word,
		SignedAt: time.Now(),
	}

	_, err := r.db.Exec(
		`INSERT INTO transcripts (id, word, signed_at) VALUES (?, ?, ?)`,
		t.ID, t.Word, t.SignedAt,
	)
	if err != nil {
		return nil, err
	}

	return t, nil
}

// GetByID retrieves a transcript by its ID.
func (r *TranscriptRepository) GetByID(id string) (*Transcript, error) {
	t := &Transcript{}

	err := r.db.QueryRow(
		`SELECT id, word, signed_at FROM transcripts WHERE id = ?`,
		id,
	).Scan(&t.ID, &t.Word, &t.SignedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return t, nil
}

// List retrieves all transcripts, most recent first.
func (r *TranscriptRepository) List() ([]*Transcript, error) {
	rows, err := r.db.Query(
		`SELECT id, word, signed_at FROM transcripts ORDER BY signed_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transcripts []*Transcript
	for rows.Next() {
		t := &Transcript{}
		if err := rows.Scan(&t.ID, &t.Word, &t.SignedAt); err != nil {
			return nil, err
		}
		transcripts = append(transcripts, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transcripts, nil
}

// Delete removes a transcript by its ID.
func (r *TranscriptRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM transcripts WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

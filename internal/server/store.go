package server

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spinhub/quizwheel/internal/game"
)

var ErrNotFound = errors.New("not found")

// templateDoc is a question template stored as JSONB.
type templateDoc struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// TemplateStore persists question templates. The pool is read once per
// game creation, so edits apply to the next game, never a running one.
type TemplateStore struct {
	db *sql.DB
}

func NewTemplateStore(db *sql.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

func (s *TemplateStore) Put(ctx context.Context, doc templateDoc) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO question_templates (id, data) VALUES (?, jsonb(?))
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data`,
		doc.ID, string(data),
	)
	return err
}

func (s *TemplateStore) Get(ctx context.Context, id string) (templateDoc, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT json(data) FROM question_templates WHERE id = ?`, id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return templateDoc{}, ErrNotFound
	}
	if err != nil {
		return templateDoc{}, err
	}

	var doc templateDoc
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return templateDoc{}, err
	}
	return doc, nil
}

func (s *TemplateStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM question_templates WHERE id = ?`, id,
	)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// All loads every template document, in insertion order.
func (s *TemplateStore) All(ctx context.Context) ([]templateDoc, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT json(data) FROM question_templates ORDER BY rowid`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []templateDoc
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var doc templateDoc
		if err := json.Unmarshal([]byte(data), &doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Templates converts the stored pool into the engine's template form.
func (s *TemplateStore) Templates(ctx context.Context) ([]game.Template, error) {
	docs, err := s.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading question templates: %w", err)
	}

	templates := make([]game.Template, len(docs))
	for i, doc := range docs {
		templates[i] = game.Template{
			Text:         doc.Text,
			Options:      doc.Options,
			CorrectIndex: doc.CorrectIndex,
		}
	}
	return templates, nil
}

func newID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

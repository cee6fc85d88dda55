package db

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/maya/adcopy-agent/internal/types"
)

// Embedder computes an embedding vector for a query text. The LLM client
// satisfies this.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// FragmentStore performs vector similarity search over a single client's
// knowledge fragments. It satisfies the retrieval Searcher contract.
type FragmentStore struct {
	db       *DB
	embedder Embedder
	clientID string
}

// NewFragmentStore binds a fragment searcher to one client's knowledge base
func (db *DB) NewFragmentStore(embedder Embedder, clientID string) *FragmentStore {
	return &FragmentStore{db: db, embedder: embedder, clientID: clientID}
}

// Search embeds the query text and runs a cosine-distance search against the
// client's fragments. Results come back ordered by similarity descending.
func (s *FragmentStore) Search(ctx context.Context, query string, limit int, minSimilarity float64) ([]types.Fragment, error) {
	embedding, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	rows, err := s.db.pool.Query(ctx,
		`SELECT content, 1 - (embedding <=> $1::vector) AS similarity
		 FROM knowledge_fragments
		 WHERE client_id = $2 AND 1 - (embedding <=> $1::vector) >= $3
		 ORDER BY embedding <=> $1::vector
		 LIMIT $4`,
		VectorLiteral(embedding), s.clientID, minSimilarity, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search fragments: %w", err)
	}
	defer rows.Close()

	var frags []types.Fragment
	for rows.Next() {
		var frag types.Fragment
		if err := rows.Scan(&frag.Content, &frag.Similarity); err != nil {
			return nil, fmt.Errorf("failed to scan fragment: %w", err)
		}
		frag.Position = len(frags)
		frags = append(frags, frag)
	}
	return frags, nil
}

// InsertFragment stores one knowledge fragment with its embedding.
// Used by the scraper ingestion path.
func (db *DB) InsertFragment(ctx context.Context, clientID, content string, embedding []float32) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO knowledge_fragments (client_id, content, embedding)
		 VALUES ($1, $2, $3::vector)
		 ON CONFLICT (client_id, content) DO NOTHING`,
		clientID, content, VectorLiteral(embedding),
	)
	if err != nil {
		return fmt.Errorf("failed to insert fragment: %w", err)
	}
	return nil
}

// VectorLiteral formats an embedding as a pgvector text literal, e.g.
// "[0.1,0.2,0.3]". pgx passes it as text and the ::vector cast parses it.
func VectorLiteral(embedding []float32) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range embedding {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
	}
	sb.WriteByte(']')
	return sb.String()
}

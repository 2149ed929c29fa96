//go:generate mockgen -destination=../mocks/metadata_storage_mock.go -package=mocks . MetadataStorage

package persistence

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/IliaW/partner-evaluator/internal/model"
)

type MetadataStorage interface {
	Save(ctx context.Context, report *model.Report, s3Link string)
}

type MetadataRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewMetadataRepository(db *sql.DB, log *slog.Logger) *MetadataRepository {
	return &MetadataRepository{db: db, log: log}
}

func (mr *MetadataRepository) Save(ctx context.Context, report *model.Report, s3Link string) {
	var probability, reach, relevance sql.NullInt64
	var category sql.NullString
	if e := report.Evaluation; e != nil {
		probability = sql.NullInt64{Int64: int64(e.Probability), Valid: true}
		reach = sql.NullInt64{Int64: int64(e.ReachScore), Valid: true}
		relevance = sql.NullInt64{Int64: int64(e.RelevanceScore), Valid: true}
		category = sql.NullString{String: e.Category, Valid: true}
	}
	_, err := mr.db.ExecContext(ctx, "INSERT INTO evaluation_metadata (id, url, probability, reach_score, relevance_score, category, pages_visited, pages_collected, content_length, fetch_mechanism, time_to_evaluate, evaluator_version, s3_link, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		report.ID,
		report.URL,
		probability,
		reach,
		relevance,
		category,
		report.PagesVisited,
		report.PagesCollected,
		report.ContentLength,
		report.FetchMechanism,
		report.TimeToEvaluate,
		report.EvaluatorVersion,
		s3Link,
		report.CreatedAt)
	if err != nil {
		mr.log.Error("failed to save evaluation metadata to database.", slog.String("err", err.Error()))
		return
	}
	mr.log.Debug("evaluation metadata saved to db.")
}

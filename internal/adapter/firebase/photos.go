package firebase

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

// Photo document field names.
const (
	photoFieldReport  = "id_signalement"
	photoFieldURL     = "url"
	photoFieldAddedAt = "date_ajout"
)

// PhotoStore reads the photos attached to reports. Photos are uploaded by the
// mobile client straight into Firestore; the backend never writes them.
type PhotoStore struct {
	client     *firestore.Client
	collection string
	timeout    time.Duration
	log        *slog.Logger
}

// NewPhotoStore creates a PhotoStore over collection.
func NewPhotoStore(logger *slog.Logger, client *firestore.Client, collection string, timeout time.Duration) *PhotoStore {
	return &PhotoStore{
		client:     client,
		collection: collection,
		timeout:    timeout,
		log:        logger.With("adapter", "firestore", "collection", collection),
	}
}

// ListByReport returns the photos of the report with the given cloud
// document id, oldest first.
func (s *PhotoStore) ListByReport(ctx context.Context, externalID string) ([]domain.Photo, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	snaps, err := s.client.Collection(s.collection).
		Where(photoFieldReport, "==", externalID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, unreachable("ListByReport", err)
	}

	photos := make([]domain.Photo, 0, len(snaps))
	for _, snap := range snaps {
		photos = append(photos, toPhoto(snap.Ref.ID, snap.Data()))
	}
	sortPhotos(photos)

	s.log.DebugContext(ctx, "photos listed", slog.String("external_id", externalID), slog.Int("count", len(photos)))
	return photos, nil
}

// toPhoto maps a photo document. Mistyped fields are left empty.
func toPhoto(id string, data map[string]any) domain.Photo {
	p := domain.Photo{ID: id}
	p.URL, _ = data[photoFieldURL].(string)
	p.ReportExternalID, _ = data[photoFieldReport].(string)
	if ts, ok := data[photoFieldAddedAt].(time.Time); ok {
		p.AddedAt = ts.UTC()
	}
	return p
}

func sortPhotos(photos []domain.Photo) {
	slices.SortStableFunc(photos, func(a, b domain.Photo) int {
		if c := a.AddedAt.Compare(b.AddedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

package firebase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/genproto/googleapis/type/latlng"

	"github.com/heartmarshall/roadworks-backend/internal/domain"
)

// DocumentStore reads and upserts report documents in one Firestore collection.
type DocumentStore struct {
	client     *firestore.Client
	collection string
	timeout    time.Duration
	log        *slog.Logger
}

// NewDocumentStore creates a DocumentStore over collection.
func NewDocumentStore(logger *slog.Logger, client *firestore.Client, collection string, timeout time.Duration) *DocumentStore {
	return &DocumentStore{
		client:     client,
		collection: collection,
		timeout:    timeout,
		log:        logger.With("adapter", "firestore", "collection", collection),
	}
}

// ListDocuments returns every document of the collection with Firestore
// native values converted to plain Go values.
func (s *DocumentStore) ListDocuments(ctx context.Context) ([]domain.CloudDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	snaps, err := s.client.Collection(s.collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, unreachable("ListDocuments", err)
	}

	docs := make([]domain.CloudDocument, 0, len(snaps))
	for _, snap := range snaps {
		docs = append(docs, domain.CloudDocument{
			ID:     snap.Ref.ID,
			Fields: fromFirestore(snap.Data()),
		})
	}

	s.log.DebugContext(ctx, "documents listed", slog.Int("count", len(docs)))
	return docs, nil
}

// UpsertDocument writes doc.Fields into the document doc.ID, creating it if
// needed. Fields not present in doc are left untouched.
func (s *DocumentStore) UpsertDocument(ctx context.Context, doc domain.CloudDocument) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if doc.ID == "" {
		return fmt.Errorf("firebase.UpsertDocument: %w", domain.NewValidationError("id", "required"))
	}

	if _, err := s.client.Collection(s.collection).Doc(doc.ID).Set(ctx, toFirestore(doc.Fields), firestore.MergeAll); err != nil {
		return unreachable("UpsertDocument", err)
	}
	return nil
}

// fromFirestore converts Firestore geo points into domain.GeoPoint. Other
// values are already plain Go types.
func fromFirestore(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		switch val := v.(type) {
		case *latlng.LatLng:
			if val != nil {
				out[k] = domain.GeoPoint{Latitude: val.GetLatitude(), Longitude: val.GetLongitude()}
			}
		default:
			out[k] = v
		}
	}
	return out
}

// toFirestore converts domain.GeoPoint into the Firestore geo type; time.Time
// values are stored by the client as native timestamps.
func toFirestore(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		switch val := v.(type) {
		case domain.GeoPoint:
			out[k] = &latlng.LatLng{Latitude: val.Latitude, Longitude: val.Longitude}
		case time.Time:
			out[k] = val.UTC()
		default:
			out[k] = v
		}
	}
	return out
}

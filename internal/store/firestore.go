package store

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"playShelfAPI/internal/types/friend"
	"playShelfAPI/internal/types/game"
	"playShelfAPI/internal/types/platform"
	"playShelfAPI/internal/types/session"
)

// FirestoreStore keeps each collection as Firestore documents keyed by
// item id. It is the primary backend: the library talks to the managed
// document database directly.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore initializes the Firestore client. Credentials come
// from the FIREBASE_SERVICE_ACCOUNT_JSON environment variable (Base64
// encoded), falling back to a local service account key file.
func NewFirestoreStore(ctx context.Context, localFilePath string) (*FirestoreStore, error) {
	var opt option.ClientOption

	encodedCreds := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if encodedCreds != "" {
		decoded, err := base64.StdEncoding.DecodeString(encodedCreds)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 firebase credentials: %v", err)
		}
		opt = option.WithCredentialsJSON(decoded)
		log.Println("Firestore store: initializing from FIREBASE_SERVICE_ACCOUNT_JSON environment variable.")
	} else {
		if _, err := os.Stat(localFilePath); os.IsNotExist(err) {
			return nil, fmt.Errorf("local firebase file not found: %s, and FIREBASE_SERVICE_ACCOUNT_JSON environment variable is not set", localFilePath)
		}
		opt = option.WithCredentialsFile(localFilePath)
		log.Printf("Firestore store: initializing from local file: %s.", localFilePath)
	}

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %v", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing firestore client: %v", err)
	}

	return &FirestoreStore{client: client}, nil
}

func (s *FirestoreStore) ListGames(ctx context.Context) ([]game.Game, error) {
	var games []game.Game

	it := s.client.Collection("games").Documents(ctx)
	defer it.Stop()
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan games: %w", err)
		}

		var g game.Game
		if err := doc.DataTo(&g); err != nil {
			// One bad document must not block the rest of the scan.
			log.Printf("Skipping undecodable game document %s: %v", doc.Ref.ID, err)
			continue
		}
		if g.ID == "" {
			g.ID = doc.Ref.ID
		}
		games = append(games, g)
	}
	return games, nil
}

func (s *FirestoreStore) ListPlatforms(ctx context.Context) ([]platform.Platform, error) {
	var platforms []platform.Platform

	it := s.client.Collection("platforms").Documents(ctx)
	defer it.Stop()
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan platforms: %w", err)
		}

		var p platform.Platform
		if err := doc.DataTo(&p); err != nil {
			log.Printf("Skipping undecodable platform document %s: %v", doc.Ref.ID, err)
			continue
		}
		if p.ID == "" {
			p.ID = doc.Ref.ID
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}

func (s *FirestoreStore) ListFriends(ctx context.Context) ([]friend.Friend, error) {
	var friends []friend.Friend

	it := s.client.Collection("friends").Documents(ctx)
	defer it.Stop()
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan friends: %w", err)
		}

		var f friend.Friend
		if err := doc.DataTo(&f); err != nil {
			log.Printf("Skipping undecodable friend document %s: %v", doc.Ref.ID, err)
			continue
		}
		if f.ID == "" {
			f.ID = doc.Ref.ID
		}
		friends = append(friends, f)
	}
	return friends, nil
}

func (s *FirestoreStore) ListSessions(ctx context.Context) ([]session.Session, error) {
	var sessions []session.Session

	it := s.client.Collection("sessions").Documents(ctx)
	defer it.Stop()
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan sessions: %w", err)
		}

		var sess session.Session
		if err := doc.DataTo(&sess); err != nil {
			log.Printf("Skipping undecodable session document %s: %v", doc.Ref.ID, err)
			continue
		}
		if sess.ID == "" {
			sess.ID = doc.Ref.ID
		}
		sessions = append(sessions, sess)
	}
	return sessions, nil
}

func (s *FirestoreStore) CreateGame(ctx context.Context, g game.Game) error {
	if _, err := s.client.Collection("games").Doc(g.ID).Set(ctx, g); err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

func (s *FirestoreStore) UpdateGame(ctx context.Context, id string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}

	fields := make([]firestore.Update, 0, len(updates))
	for field, value := range updates {
		fields = append(fields, firestore.Update{Path: field, Value: value})
	}

	_, err := s.client.Collection("games").Doc(id).Update(ctx, fields)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update game %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreStore) DeleteGame(ctx context.Context, id string) error {
	if _, err := s.client.Collection("games").Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete game %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreStore) CreatePlatform(ctx context.Context, p platform.Platform) error {
	if _, err := s.client.Collection("platforms").Doc(p.ID).Set(ctx, p); err != nil {
		return fmt.Errorf("failed to create platform: %w", err)
	}
	return nil
}

func (s *FirestoreStore) CreateFriend(ctx context.Context, f friend.Friend) error {
	if _, err := s.client.Collection("friends").Doc(f.ID).Set(ctx, f); err != nil {
		return fmt.Errorf("failed to create friend: %w", err)
	}
	return nil
}

func (s *FirestoreStore) CreateSession(ctx context.Context, sess session.Session) error {
	if _, err := s.client.Collection("sessions").Doc(sess.ID).Set(ctx, sess); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// DeleteSession checks the stored start time against the addressed one
// before deleting, mirroring the composite (id, start_time) key of the
// document-store schema.
func (s *FirestoreStore) DeleteSession(ctx context.Context, id string, startTime time.Time) error {
	ref := s.client.Collection("sessions").Doc(id)

	doc, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to load session %s: %w", id, err)
	}

	var sess session.Session
	if err := doc.DataTo(&sess); err != nil {
		return fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	if !sess.StartTime.Equal(startTime) {
		return ErrNotFound
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreStore) Ping(ctx context.Context) error {
	// Firestore has no ping; a one-document read serves as the liveness
	// probe for the health endpoint.
	it := s.client.Collection("games").Limit(1).Documents(ctx)
	defer it.Stop()
	if _, err := it.Next(); err != nil && err != iterator.Done {
		return fmt.Errorf("firestore unreachable: %w", err)
	}
	return nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

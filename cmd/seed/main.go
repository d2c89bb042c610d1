package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Younes-Yassine/CSC3916-Assignment4/config"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/domain/entity"
	"github.com/Younes-Yassine/CSC3916-Assignment4/internal/infrastructure/mongodb"
)

// Seeds the read-only movie catalog and ensures the unique username index.
// Safe to run more than once; an already-populated catalog is left alone.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = db.Client().Disconnect(context.Background()) }()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	movies := db.Collection("movies")
	count, err := movies.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("failed to count movies: %v", err)
	}
	if count > 0 {
		fmt.Printf("catalog already seeded (%d movies)\n", count)
		return
	}

	catalog := []interface{}{
		entity.Movie{Title: "The Shawshank Redemption", Director: "Frank Darabont", Genre: "Drama", Year: 1994},
		entity.Movie{Title: "Alien", Director: "Ridley Scott", Genre: "Science Fiction", Year: 1979},
		entity.Movie{Title: "Heat", Director: "Michael Mann", Genre: "Crime", Year: 1995},
		entity.Movie{Title: "Spirited Away", Director: "Hayao Miyazaki", Genre: "Animation", Year: 2001},
		entity.Movie{Title: "No Country for Old Men", Director: "Joel Coen", Genre: "Thriller", Year: 2007},
	}
	res, err := movies.InsertMany(ctx, catalog)
	if err != nil {
		log.Fatalf("failed to seed movies: %v", err)
	}
	fmt.Printf("seeded %d movies\n", len(res.InsertedIDs))
}

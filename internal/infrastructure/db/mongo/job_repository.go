package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campusworks/job-board/internal/core/domain"
)

const collectionJobs = "jobs"

// JobRepository persists job listings. Ownership is enforced at the filter
// level: scoped mutations carry an employer_id clause so a non-owner matches
// zero rows.
type JobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(collectionJobs)}
}

type mongoJob struct {
	ID         string `bson:"_id"`
	Title      string `bson:"title"`
	Date       string `bson:"date"`
	Pay        string `bson:"pay"`
	EmployerID string `bson:"employer_id"`
	CreatedAt  int64  `bson:"created_at"`
}

func (mj mongoJob) toDomain() *domain.Job {
	return &domain.Job{
		ID:         mj.ID,
		Title:      mj.Title,
		Date:       mj.Date,
		Pay:        mj.Pay,
		EmployerID: mj.EmployerID,
		CreatedAt:  unixToTime(mj.CreatedAt),
	}
}

// List returns every job, newest first.
func (r *JobRepository) List(ctx context.Context) ([]domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cur.Close(ctx)

	var jobs []domain.Job
	for cur.Next(ctx) {
		var mj mongoJob
		if err := cur.Decode(&mj); err != nil {
			return nil, fmt.Errorf("decode job: %w", err)
		}
		jobs = append(jobs, *mj.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return jobs, nil
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoJob{
		ID:         job.ID,
		Title:      job.Title,
		Date:       job.Date,
		Pay:        job.Pay,
		EmployerID: job.EmployerID,
		CreatedAt:  job.CreatedAt.Unix(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// Update mutates title/date/pay. When employerID is non-empty, only a row
// owned by that employer matches; zero matches surface as ErrJobNotFound.
func (r *JobRepository) Update(ctx context.Context, job *domain.Job, employerID string) (*domain.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": job.ID}
	if employerID != "" {
		filter["employer_id"] = employerID
	}
	update := bson.M{"$set": bson.M{
		"title": job.Title,
		"date":  job.Date,
		"pay":   job.Pay,
	}}

	var mj mongoJob
	err := r.col.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&mj)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return mj.toDomain(), nil
}

// Delete removes one job. When employerID is non-empty the deletion is scoped
// to that owner; the admin path passes an empty scope.
func (r *JobRepository) Delete(ctx context.Context, id string, employerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id}
	if employerID != "" {
		filter["employer_id"] = employerID
	}

	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

// EnsureIndexes creates the employer lookup index.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "employer_id", Value: 1}},
	})
	return err
}

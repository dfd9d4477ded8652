package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymlog/internal/gymlog/workout"
)

const (
	megabyte                 = 1024 * 1024
	DefaultExerciseCacheSize = 8 * megabyte
	DefaultExerciseCacheTTL  = time.Hour
)

type exerciseStore interface {
	GetExercise(ctx context.Context, id int64) (*workout.Exercise, error)
	UpdateExercise(ctx context.Context, exercise workout.Exercise) error
	DeleteExercise(ctx context.Context, id int64) error
}

// ExerciseCache keeps exercise definitions in memory. Exercises are read
// for every plan entry when a session starts and rarely change.
type ExerciseCache struct {
	store      exerciseStore
	cache      *freecache.Cache
	ttlSeconds int
}

func NewExerciseCache(store exerciseStore, sizeBytes int, ttl time.Duration) *ExerciseCache {
	if sizeBytes <= 0 {
		sizeBytes = DefaultExerciseCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultExerciseCacheTTL
	}
	return &ExerciseCache{
		store:      store,
		cache:      freecache.NewCache(sizeBytes),
		ttlSeconds: int(ttl.Seconds()),
	}
}

func exerciseCacheKey(id int64) []byte {
	return []byte(fmt.Sprintf("exercise::%d", id))
}

func (c *ExerciseCache) GetExercise(ctx context.Context, id int64) (*workout.Exercise, error) {
	key := exerciseCacheKey(id)
	if cached, getErr := c.cache.Get(key); getErr == nil {
		exercise := &workout.Exercise{}
		err := json.Unmarshal(cached, exercise)
		if err == nil {
			return exercise, nil
		}
		log.Errorf("failed to unmarshal cached exercise %d: %s", id, err)
	}

	exercise, err := c.store.GetExercise(ctx, id)
	if err != nil {
		return nil, err
	}

	exerciseBytes, err := json.Marshal(exercise)
	if err != nil {
		log.Errorf("failed to marshal exercise %d for cache: %s", id, err)
		return exercise, nil
	}
	if err := c.cache.Set(key, exerciseBytes, c.ttlSeconds); err != nil {
		log.Errorf("failed to cache exercise %d: %s", id, err)
	}

	return exercise, nil
}

// UpdateExercise and DeleteExercise drop the cached entry once the store
// call returns, whatever its outcome.
func (c *ExerciseCache) UpdateExercise(ctx context.Context, exercise workout.Exercise) error {
	defer c.cache.Del(exerciseCacheKey(exercise.ID))
	return c.store.UpdateExercise(ctx, exercise)
}

func (c *ExerciseCache) DeleteExercise(ctx context.Context, id int64) error {
	defer c.cache.Del(exerciseCacheKey(id))
	return c.store.DeleteExercise(ctx, id)
}

func (c *ExerciseCache) Stats() (entries int64, hitRate float64) {
	return c.cache.EntryCount(), c.cache.HitRate()
}

// CachedRepo is the Postgres repository with exercise reads served from cache.
type CachedRepo struct {
	*Repo
	exercises *ExerciseCache
}

func NewCachedRepo(repo *Repo, cacheSizeBytes int, ttl time.Duration) *CachedRepo {
	return &CachedRepo{
		Repo:      repo,
		exercises: NewExerciseCache(repo, cacheSizeBytes, ttl),
	}
}

func (r *CachedRepo) GetExercise(ctx context.Context, id int64) (*workout.Exercise, error) {
	return r.exercises.GetExercise(ctx, id)
}

func (r *CachedRepo) UpdateExercise(ctx context.Context, exercise workout.Exercise) error {
	return r.exercises.UpdateExercise(ctx, exercise)
}

func (r *CachedRepo) DeleteExercise(ctx context.Context, id int64) error {
	return r.exercises.DeleteExercise(ctx, id)
}

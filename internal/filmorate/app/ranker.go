package app

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"

	"go.uber.org/zap"

	"filmorate/internal/filmorate/domain/entities"
	"filmorate/internal/filmorate/observability"
	"filmorate/internal/filmorate/ports/cache"
	"filmorate/internal/filmorate/ports/repositories"
	"filmorate/pkg/logger"
)

// Ключи кэша рейтинга. Рейтинг хранится под ключом текущего поколения;
// инвалидация увеличивает поколение, и запись, посчитанная до нее, больше не читается.
const (
	PopularCacheKey      = "filmorate:films:popular"
	PopularGenerationKey = "filmorate:films:popular:generation"
)

// PopularEntryKey возвращает ключ рейтинга для поколения gen.
func PopularEntryKey(gen int64) string {
	return PopularCacheKey + ":" + strconv.FormatInt(gen, 10)
}

const (
	methodTopFilms = "TopFilms"

	msgRankingFromCache    = "ranking served from cache"
	msgRankingComputed     = "ranking computed"
	msgCacheReadFailed     = "failed to read ranking cache"
	msgCacheWriteFailed    = "failed to write ranking cache"
	msgCacheInvalidateFail = "failed to invalidate ranking cache"
	msgCacheEntryCorrupted = "ranking cache entry is corrupted"
	msgGenerationCorrupted = "ranking cache generation is corrupted"

	errCtxLoadingFilms  = "loading films"
	errCtxLoadingCounts = "loading like counts"
)

// PopularityRanker строит рейтинг фильмов по числу лайков.
// При равном числе лайков фильмы упорядочены по возрастанию ID.
type PopularityRanker struct {
	filmRepo repositories.FilmRepository
	likeRepo repositories.LikeRepository
	cache    cache.Cache
	ttl      time.Duration
}

// NewPopularityRanker создает ранжировщик. cache может быть nil, тогда рейтинг
// считается на каждый запрос.
func NewPopularityRanker(
	filmRepo repositories.FilmRepository,
	likeRepo repositories.LikeRepository,
	rankingCache cache.Cache,
	ttl time.Duration,
) *PopularityRanker {
	return &PopularityRanker{filmRepo: filmRepo, likeRepo: likeRepo, cache: rankingCache, ttl: ttl}
}

// TopFilms возвращает не более n самых популярных фильмов.
func (r *PopularityRanker) TopFilms(ctx context.Context, n int) ([]*entities.Film, error) {
	if n <= 0 {
		return []*entities.Film{}, nil
	}

	ranking, err := r.ranking(ctx)
	if err != nil {
		return nil, err
	}

	return ranking[:min(n, len(ranking))], nil
}

// Invalidate начинает новое поколение рейтинга. Вызывается после записи изменений в хранилище.
// Ошибка кэша только логируется: запись в кэше ограничена TTL.
func (r *PopularityRanker) Invalidate(ctx context.Context) {
	if r.cache == nil {
		return
	}
	if _, err := r.cache.Incr(ctx, PopularGenerationKey); err != nil {
		logger.Log(ctx).Warn(ctx, msgCacheInvalidateFail, zap.Error(err))
	}
}

func (r *PopularityRanker) ranking(ctx context.Context) ([]*entities.Film, error) {
	log := logger.Log(ctx).With(zap.String("method", methodTopFilms))

	// Поколение читается до хранилища: если рейтинг устареет во время расчета,
	// он будет записан под уже неактуальным ключом.
	key, cacheable := r.entryKey(ctx, log)
	if cacheable {
		if cached, ok := r.fromCache(ctx, log, key); ok {
			log.Debug(ctx, msgRankingFromCache, zap.Int("films", len(cached)))
			return cached, nil
		}
	}

	films, err := r.filmRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingFilms, err)
	}
	counts, err := r.likeRepo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingCounts, err)
	}

	slices.SortStableFunc(films, func(a, b *entities.Film) int {
		if c := cmp.Compare(counts[b.ID], counts[a.ID]); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	log.Debug(ctx, msgRankingComputed, zap.Int("films", len(films)))
	if cacheable {
		r.toCache(ctx, log, key, films)
	}

	return films, nil
}

func (r *PopularityRanker) entryKey(ctx context.Context, log *logger.Logger) (string, bool) {
	if r.cache == nil {
		return "", false
	}

	raw, err := r.cache.Get(ctx, PopularGenerationKey)
	if err != nil {
		observability.PopularCacheLookups.WithLabelValues(observability.CacheError).Inc()
		log.Warn(ctx, msgCacheReadFailed, zap.Error(err))
		return "", false
	}
	if raw == "" {
		return PopularEntryKey(0), true
	}

	gen, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		observability.PopularCacheLookups.WithLabelValues(observability.CacheError).Inc()
		log.Warn(ctx, msgGenerationCorrupted, zap.String("value", raw), zap.Error(err))
		return "", false
	}

	return PopularEntryKey(gen), true
}

func (r *PopularityRanker) fromCache(ctx context.Context, log *logger.Logger, key string) ([]*entities.Film, bool) {
	raw, err := r.cache.Get(ctx, key)
	if err != nil {
		observability.PopularCacheLookups.WithLabelValues(observability.CacheError).Inc()
		log.Warn(ctx, msgCacheReadFailed, zap.Error(err))
		return nil, false
	}
	if raw == "" {
		observability.PopularCacheLookups.WithLabelValues(observability.CacheMiss).Inc()
		return nil, false
	}

	var films []*entities.Film
	if err := json.Unmarshal([]byte(raw), &films); err != nil {
		observability.PopularCacheLookups.WithLabelValues(observability.CacheError).Inc()
		log.Warn(ctx, msgCacheEntryCorrupted, zap.Error(err))
		return nil, false
	}

	observability.PopularCacheLookups.WithLabelValues(observability.CacheHit).Inc()
	return films, true
}

func (r *PopularityRanker) toCache(ctx context.Context, log *logger.Logger, key string, films []*entities.Film) {
	payload, err := json.Marshal(films)
	if err != nil {
		log.Warn(ctx, msgCacheWriteFailed, zap.Error(err))
		return
	}
	if err := r.cache.Set(ctx, key, string(payload), r.ttl); err != nil {
		log.Warn(ctx, msgCacheWriteFailed, zap.Error(err))
	}
}

package app_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"filmorate/internal/filmorate/adapters/memory"
	"filmorate/internal/filmorate/app"
	"filmorate/internal/filmorate/domain/entities"
	"filmorate/pkg/logger"
)

var testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func newMemoryServices(t *testing.T, opts app.Options) *app.Services {
	t.Helper()
	if opts.Now == nil {
		opts.Now = func() time.Time { return testNow }
	}
	return app.NewServices(memory.NewRepositoryFactory(), opts)
}

func fakeFilm(genreIDs ...int64) *entities.Film {
	genres := make([]entities.Genre, 0, len(genreIDs))
	for _, id := range genreIDs {
		genres = append(genres, entities.Genre{ID: id})
	}
	return &entities.Film{
		Name:        gofakeit.Sentence(3),
		Description: gofakeit.Sentence(10),
		ReleaseDate: gofakeit.DateRange(
			time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC),
		),
		Duration: gofakeit.Number(60, 200),
		Mpa:      entities.Mpa{ID: int64(gofakeit.Number(1, 5))},
		Genres:   genres,
	}
}

func fakeUser() *entities.User {
	return &entities.User{
		Email: gofakeit.Email(),
		Login: strings.Join(strings.Fields(gofakeit.Username()), ""),
		Name:  gofakeit.Name(),
		Birthday: gofakeit.DateRange(
			time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2005, time.December, 31, 0, 0, 0, 0, time.UTC),
		),
	}
}

func mustAddFilm(t *testing.T, ctx context.Context, svc *app.Services, film *entities.Film) *entities.Film {
	t.Helper()
	created, err := svc.Films.AddFilm(ctx, film)
	require.NoError(t, err)
	return created
}

func mustCreateUser(t *testing.T, ctx context.Context, svc *app.Services) *entities.User {
	t.Helper()
	created, err := svc.Users.CreateUser(ctx, fakeUser())
	require.NoError(t, err)
	return created
}

func filmIDs(films []*entities.Film) []int64 {
	ids := make([]int64, 0, len(films))
	for _, f := range films {
		ids = append(ids, f.ID)
	}
	return ids
}

func userIDs(users []*entities.User) []int64 {
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

type mockFilmRepository struct {
	mock.Mock
}

func (m *mockFilmRepository) Create(ctx context.Context, film *entities.Film) (*entities.Film, error) {
	args := m.Called(ctx, film)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Film), args.Error(1)
}

func (m *mockFilmRepository) Update(ctx context.Context, film *entities.Film) (*entities.Film, error) {
	args := m.Called(ctx, film)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Film), args.Error(1)
}

func (m *mockFilmRepository) FindByID(ctx context.Context, id int64) (*entities.Film, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Film), args.Error(1)
}

func (m *mockFilmRepository) FindAll(ctx context.Context) ([]*entities.Film, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Film), args.Error(1)
}

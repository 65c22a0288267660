package repositories

import "context"

// LikeRepository хранит пары (фильм, пользователь) с семантикой множества.
// Существование фильма и пользователя проверяет вызывающая сторона.
type LikeRepository interface {
	Add(ctx context.Context, filmID, userID int64) error
	Remove(ctx context.Context, filmID, userID int64) error
	Count(ctx context.Context, filmID int64) (int, error)
	// Counts возвращает число лайков по фильмам; фильмов без лайков в ответе нет.
	Counts(ctx context.Context) (map[int64]int, error)
}

// FriendRepository хранит симметричное отношение дружбы.
// Add и Remove атомарно изменяют оба направления.
type FriendRepository interface {
	Add(ctx context.Context, userID, friendID int64) error
	Remove(ctx context.Context, userID, friendID int64) error
	// FriendIDs возвращает друзей пользователя по возрастанию идентификатора.
	FriendIDs(ctx context.Context, userID int64) ([]int64, error)
}

// Factory предоставляет набор хранилищ одного бэкенда.
type Factory interface {
	FilmRepository() FilmRepository
	UserRepository() UserRepository
	GenreRepository() GenreRepository
	MpaRepository() MpaRepository
	LikeRepository() LikeRepository
	FriendRepository() FriendRepository
}

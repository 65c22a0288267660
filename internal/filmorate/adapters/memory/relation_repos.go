package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/samber/lo"

	"filmorate/internal/filmorate/ports/repositories"
)

type idSet map[int64]struct{}

// LikeRepository хранит лайки как множество пользователей на фильм.
type LikeRepository struct {
	mu    sync.RWMutex
	likes map[int64]idSet
}

// NewLikeRepository создает пустое хранилище лайков.
func NewLikeRepository() repositories.LikeRepository {
	return &LikeRepository{likes: make(map[int64]idSet)}
}

func (r *LikeRepository) Add(_ context.Context, filmID, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, ok := r.likes[filmID]
	if !ok {
		users = make(idSet)
		r.likes[filmID] = users
	}
	users[userID] = struct{}{}
	return nil
}

func (r *LikeRepository) Remove(_ context.Context, filmID, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, ok := r.likes[filmID]
	if !ok {
		return nil
	}
	delete(users, userID)
	if len(users) == 0 {
		delete(r.likes, filmID)
	}
	return nil
}

func (r *LikeRepository) Count(_ context.Context, filmID int64) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.likes[filmID]), nil
}

func (r *LikeRepository) Counts(_ context.Context) (map[int64]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.MapValues(r.likes, func(users idSet, _ int64) int {
		return len(users)
	}), nil
}

// FriendRepository хранит дружбу как списки смежности.
// Оба направления ребра меняются под одной блокировкой.
type FriendRepository struct {
	mu      sync.RWMutex
	friends map[int64]idSet
}

// NewFriendRepository создает пустой граф дружбы.
func NewFriendRepository() repositories.FriendRepository {
	return &FriendRepository{friends: make(map[int64]idSet)}
}

func (r *FriendRepository) Add(_ context.Context, userID, friendID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.link(userID, friendID)
	r.link(friendID, userID)
	return nil
}

func (r *FriendRepository) Remove(_ context.Context, userID, friendID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.unlink(userID, friendID)
	r.unlink(friendID, userID)
	return nil
}

func (r *FriendRepository) FriendIDs(_ context.Context, userID int64) ([]int64, error) {
	r.mu.RLock()
	ids := lo.Keys(r.friends[userID])
	r.mu.RUnlock()

	slices.Sort(ids)
	return ids, nil
}

func (r *FriendRepository) link(from, to int64) {
	set, ok := r.friends[from]
	if !ok {
		set = make(idSet)
		r.friends[from] = set
	}
	set[to] = struct{}{}
}

func (r *FriendRepository) unlink(from, to int64) {
	set, ok := r.friends[from]
	if !ok {
		return
	}
	delete(set, to)
	if len(set) == 0 {
		delete(r.friends, from)
	}
}

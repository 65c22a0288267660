package app

import (
	"context"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"filmorate/internal/filmorate/domain/entities"
	"filmorate/internal/filmorate/observability"
	"filmorate/internal/filmorate/ports/repositories"
	"filmorate/pkg/logger"
)

const (
	methodAddFriend     = "AddFriend"
	methodRemoveFriend  = "RemoveFriend"
	methodFriendsOf     = "FriendsOf"
	methodCommonFriends = "CommonFriends"

	msgFriendAdded   = "friendship added"
	msgFriendRemoved = "friendship removed"
	msgSelfFriend    = "user tried to befriend themselves"

	errCtxCheckingFriend   = "checking friend"
	errCtxAddingFriend     = "adding friendship"
	errCtxRemovingFriend   = "removing friendship"
	errCtxLoadingFriendIDs = "loading friend ids"
	errCtxHydratingFriend  = "loading friend"
)

// FriendshipGraph ведет симметричное отношение дружбы между пользователями.
type FriendshipGraph struct {
	userRepo   repositories.UserRepository
	friendRepo repositories.FriendRepository
}

// NewFriendshipGraph создает FriendshipGraph.
func NewFriendshipGraph(userRepo repositories.UserRepository, friendRepo repositories.FriendRepository) *FriendshipGraph {
	return &FriendshipGraph{userRepo: userRepo, friendRepo: friendRepo}
}

// AddFriend связывает пользователей в обоих направлениях.
func (g *FriendshipGraph) AddFriend(ctx context.Context, userID, friendID int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodAddFriend),
		zap.Int64("user_id", userID), zap.Int64("friend_id", friendID))

	if err := g.checkUsers(ctx, userID, friendID); err != nil {
		return err
	}
	if userID == friendID {
		log.Debug(ctx, msgSelfFriend)
		return entities.NewValidationError("friendId", "user cannot befriend themselves")
	}

	if err := g.friendRepo.Add(ctx, userID, friendID); err != nil {
		return fmt.Errorf("%s: %w", errCtxAddingFriend, err)
	}

	observability.RelationMutations.WithLabelValues(observability.OperationFriendAdd).Inc()
	log.Info(ctx, msgFriendAdded)
	return nil
}

// RemoveFriend удаляет связь в обоих направлениях, если она есть.
func (g *FriendshipGraph) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodRemoveFriend),
		zap.Int64("user_id", userID), zap.Int64("friend_id", friendID))

	if err := g.checkUsers(ctx, userID, friendID); err != nil {
		return err
	}

	if err := g.friendRepo.Remove(ctx, userID, friendID); err != nil {
		return fmt.Errorf("%s: %w", errCtxRemovingFriend, err)
	}

	observability.RelationMutations.WithLabelValues(observability.OperationFriendRemove).Inc()
	log.Info(ctx, msgFriendRemoved)
	return nil
}

// FriendsOf возвращает друзей пользователя по возрастанию ID.
func (g *FriendshipGraph) FriendsOf(ctx context.Context, userID int64) ([]*entities.User, error) {
	logger.Log(ctx).Debug(ctx, methodFriendsOf, zap.Int64("user_id", userID))

	if err := g.checkUsers(ctx, userID); err != nil {
		return nil, err
	}

	ids, err := g.friendRepo.FriendIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingFriendIDs, err)
	}
	return g.hydrate(ctx, ids)
}

// CommonFriends возвращает общих друзей двух пользователей, исключая их самих.
func (g *FriendshipGraph) CommonFriends(ctx context.Context, userID, otherID int64) ([]*entities.User, error) {
	logger.Log(ctx).Debug(ctx, methodCommonFriends, zap.Int64("user_id", userID), zap.Int64("other_id", otherID))

	if err := g.checkUsers(ctx, userID, otherID); err != nil {
		return nil, err
	}

	left, err := g.friendRepo.FriendIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingFriendIDs, err)
	}
	right, err := g.friendRepo.FriendIDs(ctx, otherID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxLoadingFriendIDs, err)
	}

	common := lo.Without(lo.Intersect(left, right), userID, otherID)
	return g.hydrate(ctx, common)
}

func (g *FriendshipGraph) checkUsers(ctx context.Context, ids ...int64) error {
	for _, id := range ids {
		if _, err := g.userRepo.FindByID(ctx, id); err != nil {
			return fmt.Errorf("%s: %w", errCtxCheckingFriend, err)
		}
	}
	return nil
}

func (g *FriendshipGraph) hydrate(ctx context.Context, ids []int64) ([]*entities.User, error) {
	ids = slices.Clone(ids)
	slices.Sort(ids)

	users := make([]*entities.User, 0, len(ids))
	for _, id := range ids {
		user, err := g.userRepo.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtxHydratingFriend, err)
		}
		users = append(users, user)
	}
	return users, nil
}

package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-player-stats/internal/logger"
	"github.com/sbilibin2017/gw-player-stats/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string) (*models.UserDB, error)
	DeleteByID(ctx context.Context, id int64) error
}

// StatsReader defines read-only operations for stats.
type StatsReader interface {
	GetByID(ctx context.Context, id int64) ([]models.StatsDB, error)
	ListByUserIDs(ctx context.Context, userIDs []int64) ([]models.StatsDB, error)
}

// UserCache caches serialized users. A nil cache disables caching.
type UserCache interface {
	Get(ctx context.Context, id int64) (*models.UserResponse, error)
	Set(ctx context.Context, user models.UserResponse) error
	Invalidate(ctx context.Context, ids ...int64) error
}

// UserService handles registration, verification and user lookups.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	statsReader StatsReader
	cache       UserCache
	kafkaWriter KafkaWriter
	cost        int
}

// NewUserService creates a new UserService instance. cache and kafkaWriter may be nil.
func NewUserService(
	reader UserReader,
	writer UserWriter,
	statsReader StatsReader,
	cache UserCache,
	kafkaWriter KafkaWriter,
	bcryptCost int,
) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		statsReader: statsReader,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		cost:        bcryptCost,
	}
}

// Create registers a new user and returns it with an empty stats list.
func (svc *UserService) Create(ctx context.Context, username, password string) (*models.UserResponse, error) {
	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Warnw("user already exists", "username", username)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), svc.cost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, string(hashedPassword))
	if errors.Is(err, models.ErrUniqueViolation) {
		logger.Log.Warnw("user already exists", "username", username)
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	publishEvent(ctx, svc.kafkaWriter, newEvent(models.EntityUser, models.OperationCreate, user.ID, user.ID))

	resp := models.NewUserResponse(*user, nil)
	return &resp, nil
}

// Verify checks the credentials and returns the user with its stats.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (svc *UserService) Verify(ctx context.Context, username, password string) (*models.UserResponse, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("user does not exist", "username", username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	return svc.withStats(ctx, *user)
}

// List returns every user with nested stats.
func (svc *UserService) List(ctx context.Context) ([]models.UserResponse, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	stats, err := svc.statsReader.ListByUserIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to list stats", "err", err)
		return nil, err
	}

	return models.NewUserResponses(users, stats), nil
}

// Get returns the user with nested stats, or nil if it does not exist.
func (svc *UserService) Get(ctx context.Context, id int64) (*models.UserResponse, error) {
	if svc.cache != nil {
		cached, err := svc.cache.Get(ctx, id)
		if err != nil {
			logger.Log.Errorw("failed to read user cache", "id", id, "err", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	resp, err := svc.withStats(ctx, *user)
	if err != nil {
		return nil, err
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, *resp); err != nil {
			logger.Log.Errorw("failed to cache user", "id", id, "err", err)
		}
	}
	return resp, nil
}

// Delete removes the user and the stats it owns.
func (svc *UserService) Delete(ctx context.Context, id int64) error {
	err := svc.writer.DeleteByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}

	invalidate(ctx, svc.cache, id)
	publishEvent(ctx, svc.kafkaWriter, newEvent(models.EntityUser, models.OperationDelete, id, id))
	return nil
}

func (svc *UserService) withStats(ctx context.Context, user models.UserDB) (*models.UserResponse, error) {
	stats, err := svc.statsReader.ListByUserIDs(ctx, []int64{user.ID})
	if err != nil {
		logger.Log.Errorw("failed to list stats", "userID", user.ID, "err", err)
		return nil, err
	}

	resp := models.NewUserResponse(user, stats)
	return &resp, nil
}

// invalidate drops cached users, logging failures.
func invalidate(ctx context.Context, cache UserCache, ids ...int64) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, ids...); err != nil {
		logger.Log.Errorw("failed to invalidate user cache", "ids", ids, "err", err)
	}
}
